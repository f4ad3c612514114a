package render

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadwerk/outreach-cli/internal/model"
	"github.com/leadwerk/outreach-cli/internal/placeholder"
)

var htmlNow = time.Date(2025, 9, 12, 14, 30, 0, 0, time.UTC)

const testHTMLTemplate = `<html><body>
<h1>{{BusinessName}}</h1>
{{PHONE_BLOCK}}
{{EMAIL_BLOCK}}
{{WEBSITE_BLOCK}}
{{DETAILS_LIST}}
{{EMAIL_MD_BLOCK}}
{{PHONE_MD_BLOCK}}
<footer>{{GENERATED_AT}}</footer>
</body></html>`

func htmlFixture(t *testing.T) (dir, tpl string) {
	t.Helper()
	dir = t.TempDir()
	tpl = filepath.Join(t.TempDir(), "lead_summary_template.html")
	writeFile(t, tpl, testHTMLTemplate)
	return dir, tpl
}

func TestHTMLSummary(t *testing.T) {
	dir, tpl := htmlFixture(t)
	row := model.Row{
		{Header: "Telefon", Value: "+49 171 1234567"},
		{Header: "E-Mail", Value: "info@cafe-mueller.de"},
		{Header: "Webseite", Value: "cafe-mueller.de"},
		{Header: "Stadt", Value: "Frankfurt"},
	}

	out, err := HTMLSummary(dir, row, "Café Müller", placeholder.Map{}, tpl, false, htmlNow)
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	s := string(got)

	assert.Contains(t, s, "<h1>Café Müller</h1>")
	assert.Contains(t, s, `href="tel:+491711234567"`)
	assert.Contains(t, s, `href="mailto:info@cafe-mueller.de"`)
	assert.Contains(t, s, `href="http://cafe-mueller.de"`)
	assert.Contains(t, s, "City:</span> Frankfurt")
	assert.Contains(t, s, "12.09.2025 14:30")
	assert.NotContains(t, s, "{{")
}

func TestHTMLSummaryEscapesHumanText(t *testing.T) {
	dir, tpl := htmlFixture(t)
	row := model.Row{{Header: "Ansprechpartner", Value: `<script>alert("x")</script>`}}

	out, err := HTMLSummary(dir, row, `Müller & <Söhne>`, placeholder.Map{}, tpl, false, htmlNow)
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	s := string(got)

	assert.Contains(t, s, "Müller &amp; &lt;Söhne&gt;")
	assert.NotContains(t, s, "<script>alert")
}

func TestHTMLSummaryOmitsEmptyContactBlocks(t *testing.T) {
	dir, tpl := htmlFixture(t)

	out, err := HTMLSummary(dir, model.Row{}, "X", placeholder.Map{}, tpl, false, htmlNow)
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	s := string(got)

	assert.NotContains(t, s, "tel:")
	assert.NotContains(t, s, "mailto:")
	assert.NotContains(t, s, "Website:")
	assert.NotContains(t, s, "<ul")
	assert.NotContains(t, s, "<details")
}

func TestHTMLSummaryEmbedsGeneratedScripts(t *testing.T) {
	dir, tpl := htmlFixture(t)
	writeFile(t, filepath.Join(dir, "cold_email.md"), "# Email draft <b>bold</b>")

	out, err := HTMLSummary(dir, model.Row{}, "X", placeholder.Map{}, tpl, false, htmlNow)
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	s := string(got)

	assert.Contains(t, s, "Cold email (click to expand)")
	assert.Contains(t, s, "# Email draft &lt;b&gt;bold&lt;/b&gt;")
	// No phone script on disk, so no second drawer.
	assert.NotContains(t, s, "Cold phone script")
}

func TestHTMLSummarySkipsExistingWithoutOverwrite(t *testing.T) {
	dir, tpl := htmlFixture(t)
	existing := filepath.Join(dir, "lead_summary.html")
	writeFile(t, existing, "original bytes")

	out, err := HTMLSummary(dir, model.Row{}, "X", placeholder.Map{}, tpl, false, htmlNow)
	require.NoError(t, err)
	assert.Equal(t, existing, out)

	got, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "original bytes", string(got))
}

func TestHTMLSummaryMissingTemplateIsError(t *testing.T) {
	dir := t.TempDir()
	_, err := HTMLSummary(dir, model.Row{}, "X", placeholder.Map{}, filepath.Join(dir, "missing.html"), false, htmlNow)
	assert.Error(t, err)
}

func TestEnsureHTTP(t *testing.T) {
	assert.Equal(t, "http://example.com", ensureHTTP("example.com"))
	assert.Equal(t, "https://example.com", ensureHTTP("https://example.com"))
	assert.Equal(t, "HTTP://example.com", ensureHTTP("HTTP://example.com"))
	assert.Equal(t, "", ensureHTTP("  "))
}
