package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadwerk/outreach-cli/internal/placeholder"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRenderText(t *testing.T) {
	dir := t.TempDir()
	tpl := filepath.Join(dir, "tpl.md")
	out := filepath.Join(dir, "out.md")
	writeFile(t, tpl, "Hi {{FirstName}}, greetings from {{Company}}. {{UNKNOWN}}")

	m := placeholder.Map{"{{FirstName}}": "Maria", "{{Company}}": "Weber Digital"}
	require.NoError(t, RenderText(tpl, out, m, false))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Hi Maria, greetings from Weber Digital. ", string(got))
}

func TestRenderTextSkipsExistingWithoutOverwrite(t *testing.T) {
	dir := t.TempDir()
	tpl := filepath.Join(dir, "tpl.md")
	out := filepath.Join(dir, "out.md")
	writeFile(t, tpl, "new content {{X}}")
	writeFile(t, out, "original bytes")

	require.NoError(t, RenderText(tpl, out, placeholder.Map{"{{X}}": "y"}, false))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "original bytes", string(got), "existing file must stay untouched")
}

func TestRenderTextOverwrite(t *testing.T) {
	dir := t.TempDir()
	tpl := filepath.Join(dir, "tpl.md")
	out := filepath.Join(dir, "out.md")
	writeFile(t, tpl, "value: {{X}}")
	writeFile(t, out, "stale")

	require.NoError(t, RenderText(tpl, out, placeholder.Map{"{{X}}": "fresh"}, true))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "value: fresh", string(got))
}

func TestMarkdownScriptsRendersBoth(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "en", "cold_email_template.md"), "email for {{BusinessName}}")
	writeFile(t, filepath.Join(root, "en", "cold_phone_call_template.md"), "call {{BusinessName}}")

	outDir := t.TempDir()
	m := placeholder.Map{"{{BusinessName}}": "Café Müller"}
	tpls := ResolveTextTemplates(root, "en")

	require.NoError(t, MarkdownScripts(outDir, tpls, m, false))

	email, err := os.ReadFile(filepath.Join(outDir, "cold_email.md"))
	require.NoError(t, err)
	assert.Equal(t, "email for Café Müller", string(email))

	phone, err := os.ReadFile(filepath.Join(outDir, "cold_phone_call.md"))
	require.NoError(t, err)
	assert.Equal(t, "call Café Müller", string(phone))
}

func TestMarkdownScriptsContinuesPastMissingTemplate(t *testing.T) {
	root := t.TempDir()
	// Only the phone template exists.
	writeFile(t, filepath.Join(root, "en", "cold_phone_call_template.md"), "call {{BusinessName}}")

	outDir := t.TempDir()
	tpls := ResolveTextTemplates(root, "en")

	err := MarkdownScripts(outDir, tpls, placeholder.Map{"{{BusinessName}}": "X"}, false)
	assert.Error(t, err, "missing default template must surface")

	// The other script still rendered.
	_, statErr := os.Stat(filepath.Join(outDir, "cold_phone_call.md"))
	assert.NoError(t, statErr)
}

func TestResolveTextTemplatesLanguageFallback(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "en", "cold_email_template.md"), "en email")
	writeFile(t, filepath.Join(root, "en", "cold_phone_call_template.md"), "en phone")
	writeFile(t, filepath.Join(root, "de", "cold_email_template.md"), "de email")

	tpls := ResolveTextTemplates(root, "de")

	// German email exists; phone falls back to English.
	assert.Equal(t, filepath.Join(root, "de", "cold_email_template.md"), tpls.Email)
	assert.Equal(t, filepath.Join(root, "en", "cold_phone_call_template.md"), tpls.Phone)

	// Empty language means the default.
	tpls = ResolveTextTemplates(root, "")
	assert.Equal(t, filepath.Join(root, "en", "cold_email_template.md"), tpls.Email)
}
