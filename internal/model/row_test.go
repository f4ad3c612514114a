package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowGet(t *testing.T) {
	row := Row{
		{Header: "Firmenname", Value: "Café Müller"},
		{Header: "Webseite", Value: "https://cafe-mueller.de"},
		{Header: "PLZ", Value: "60311"},
	}

	v, ok := row.Get("webseite")
	assert.True(t, ok)
	assert.Equal(t, "https://cafe-mueller.de", v)

	// Candidates are tried in order; first match wins.
	v, ok = row.Get("Website", "Webseite", "URL")
	assert.True(t, ok)
	assert.Equal(t, "https://cafe-mueller.de", v)

	_, ok = row.Get("Missing")
	assert.False(t, ok)
}

func TestRowGetKey(t *testing.T) {
	row := Row{
		{Header: "Telefon", Value: "+49 171 1234567"},
		{Header: "Ihr Name", Value: "Max Mustermann"},
		{Header: "E-Mail", Value: "info@example.de"},
	}

	assert.Equal(t, "+49 171 1234567", row.GetKey("PHONE", "TELEFON", "TEL"))
	assert.Equal(t, "Max Mustermann", row.GetKey("IHR_NAME"))
	assert.Equal(t, "info@example.de", row.GetKey("EMAIL", "E_MAIL", "MAIL"))
	assert.Equal(t, "", row.GetKey("WEBSITE"))
}

func TestRowHeaders(t *testing.T) {
	row := Row{{Header: "A", Value: "1"}, {Header: "B", Value: "2"}}
	assert.Equal(t, []string{"A", "B"}, row.Headers())
}
