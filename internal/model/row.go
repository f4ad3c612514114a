package model

import (
	"strings"

	"github.com/leadwerk/outreach-cli/internal/translit"
)

// Cell is one header/value pair of a raw provider row.
type Cell struct {
	Header string `json:"header"`
	Value  string `json:"value"`
}

// Row is an ordered mapping of arbitrary column names to string values,
// preserving the source sheet's column order. Absent and null source values
// are represented as empty strings, never as missing cells.
type Row []Cell

// Get returns the value of the first candidate header that matches a cell
// header case-insensitively (exact match, candidates tried in order).
// The second return reports whether any candidate matched.
func (r Row) Get(candidates ...string) (string, bool) {
	for _, cand := range candidates {
		for _, c := range r {
			if strings.EqualFold(strings.TrimSpace(c.Header), strings.TrimSpace(cand)) {
				return c.Value, true
			}
		}
	}
	return "", false
}

// GetKey returns the value of the first candidate whose normalized
// placeholder key matches a cell's normalized header ("Telefon" matches
// candidate "TELEFON", "Ihr Name" matches "IHR_NAME"). Candidates are tried
// in order; the empty string is returned when nothing matches.
func (r Row) GetKey(candidates ...string) string {
	byKey := make(map[string]string, len(r))
	for _, c := range r {
		key := translit.NormalizeKey(c.Header)
		if _, seen := byKey[key]; !seen {
			byKey[key] = c.Value
		}
	}
	for _, cand := range candidates {
		if v, ok := byKey[translit.NormalizeKey(cand)]; ok {
			return v
		}
	}
	return ""
}

// Headers returns the row's column headers in sheet order.
func (r Row) Headers() []string {
	out := make([]string, len(r))
	for i, c := range r {
		out[i] = c.Header
	}
	return out
}
