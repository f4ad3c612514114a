package render

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// DefaultLang is the language the text templates fall back to when the
// requested language variant is absent.
const DefaultLang = "en"

const (
	emailTemplateName = "cold_email_template.md"
	phoneTemplateName = "cold_phone_call_template.md"
)

// TextTemplates holds resolved paths to the outreach script templates.
type TextTemplates struct {
	Email string
	Phone string
}

// ResolveTextTemplates locates the email and phone script templates for
// lang under root, falling back per file to the default language. The
// returned paths may still not exist (when the default is absent too);
// rendering surfaces that as a per-lead error.
func ResolveTextTemplates(root, lang string) TextTemplates {
	if lang == "" {
		lang = DefaultLang
	}
	return TextTemplates{
		Email: resolveTemplate(root, lang, emailTemplateName),
		Phone: resolveTemplate(root, lang, phoneTemplateName),
	}
}

func resolveTemplate(root, lang, name string) string {
	path := filepath.Join(root, lang, name)
	if lang == DefaultLang {
		return path
	}
	if _, err := os.Stat(path); err != nil {
		fallback := filepath.Join(root, DefaultLang, name)
		zap.L().Debug("render: language template missing, falling back",
			zap.String("requested", path),
			zap.String("fallback", fallback),
		)
		return fallback
	}
	return path
}

// HTMLTemplatePath returns the lead summary template location under root.
func HTMLTemplatePath(root string) string {
	return filepath.Join(root, "html", "lead_summary_template.html")
}
