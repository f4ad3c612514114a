package pipeline

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/publicsuffix"
)

var phoneStripRe = regexp.MustCompile(`[^0-9+]`)

// NormalizePhone strips everything except digits and a leading plus sign.
// Idempotent; empty input yields empty output.
func NormalizePhone(s string) string {
	cleaned := phoneStripRe.ReplaceAllString(s, "")
	if cleaned == "" {
		return ""
	}
	head := ""
	if cleaned[0] == '+' {
		head = "+"
	}
	return head + strings.ReplaceAll(cleaned, "+", "")
}

// DomainFromURL extracts the lowercase registrable domain (eTLD+1) from a
// URL. Unparseable input falls back to the lowercased raw string; this
// function never fails.
func DomainFromURL(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		// Scheme-less input ("example.com/page") parses with an empty host.
		u, err = url.Parse("https://" + rawURL)
		if err != nil || u.Host == "" {
			return strings.ToLower(rawURL)
		}
	}

	host := strings.ToLower(u.Host)
	if idx := strings.Index(host, ":"); idx > 0 {
		host = host[:idx]
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return strings.ToLower(rawURL)
	}
	return domain
}
