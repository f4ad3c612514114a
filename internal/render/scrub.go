// Package render fills template sources (rich documents, markdown, HTML)
// from a placeholder map and scrubs unresolved tokens from the output.
package render

import (
	"regexp"
	"sort"
	"strings"

	"github.com/leadwerk/outreach-cli/internal/placeholder"
)

// leftoverTokenRe matches any placeholder-shaped token in the three bracket
// styles with non-empty contents.
var leftoverTokenRe = regexp.MustCompile(`\{\{[^}]+\}\}|\{[^}]+\}|\[[^\]]+\]`)

// Scrub removes placeholder-shaped tokens that survived substitution, so
// unresolved tokens never leak into delivered collateral.
func Scrub(s string) string {
	return leftoverTokenRe.ReplaceAllString(s, "")
}

// ReplaceInText substitutes every mapped token in text, then scrubs
// leftovers. Longer tokens are replaced first: the map carries every token
// in both double- and single-brace forms, and replacing {Token} before
// {{Token}} would chew the inner braces out of the double-brace form.
func ReplaceInText(text string, m placeholder.Map) string {
	tokens := make([]string, 0, len(m))
	for tok := range m {
		tokens = append(tokens, tok)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if len(tokens[i]) != len(tokens[j]) {
			return len(tokens[i]) > len(tokens[j])
		}
		return tokens[i] < tokens[j]
	})

	for _, tok := range tokens {
		if strings.Contains(text, tok) {
			text = strings.ReplaceAll(text, tok, m[tok])
		}
	}
	return Scrub(text)
}
