package pipeline

import (
	"strings"

	"github.com/rotisserie/eris"
)

// websiteColumnCandidates are tried first, in order, case-insensitively.
var websiteColumnCandidates = []string{"website", "webseite", "url"}

// companyColumnCandidates for locating the company-name column.
var companyColumnCandidates = []string{"company", "firma", "unternehmen", "name", "company name"}

// FindWebsiteColumn locates the column holding website URLs: exact candidate
// match first, then any header containing "web" or "site". No plausible
// column is a batch-fatal error rather than a guess.
func FindWebsiteColumn(headers []string) (string, error) {
	for _, cand := range websiteColumnCandidates {
		for _, h := range headers {
			if strings.EqualFold(strings.TrimSpace(h), cand) {
				return h, nil
			}
		}
	}
	for _, h := range headers {
		lower := strings.ToLower(h)
		if strings.Contains(lower, "web") || strings.Contains(lower, "site") {
			return h, nil
		}
	}
	return "", eris.New("pipeline: could not determine website column, rename one column to 'Website'")
}

// GuessCompanyColumn picks the company-name column, defaulting to the first
// column when no candidate matches.
func GuessCompanyColumn(headers []string) string {
	for _, cand := range companyColumnCandidates {
		for _, h := range headers {
			if strings.EqualFold(strings.TrimSpace(h), cand) {
				return h
			}
		}
	}
	if len(headers) > 0 {
		return headers[0]
	}
	return ""
}

// NeedsOutreach is the retain condition for collateral generation: an empty
// website field or a facebook page standing in for a real site. This is
// intentionally narrower than Classify, which also knows builder and other
// aggregator domains; the two definitions are kept distinct on purpose
// (scoring vs. filtering) — see DESIGN.md before unifying them.
func NeedsOutreach(website string) bool {
	w := strings.TrimSpace(website)
	return w == "" || strings.Contains(strings.ToLower(w), "facebook")
}
