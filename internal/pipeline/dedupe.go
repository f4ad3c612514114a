package pipeline

import (
	"strings"

	"github.com/leadwerk/outreach-cli/internal/model"
)

// identityKey is the tuple used to spot the same business arriving from
// multiple provider queries.
type identityKey struct {
	name   string
	postal string
	phone  string
}

// IdentityKey computes the deduplication key for a lead: lowercased trimmed
// name, trimmed postal code, normalized phone.
func IdentityKey(lead model.LeadRecord) (string, string, string) {
	return strings.ToLower(strings.TrimSpace(lead.Name)),
		strings.TrimSpace(lead.PostalCode),
		NormalizePhone(lead.Phone)
}

// Dedupe drops later arrivals sharing an identity key with an earlier lead.
// Order-preserving and idempotent: the first occurrence always wins.
func Dedupe(leads []model.LeadRecord) []model.LeadRecord {
	seen := make(map[identityKey]bool, len(leads))
	out := make([]model.LeadRecord, 0, len(leads))
	for _, l := range leads {
		name, postal, phone := IdentityKey(l)
		key := identityKey{name: name, postal: postal, phone: phone}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, l)
	}
	return out
}
