package render

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/leadwerk/outreach-cli/internal/model"
	"github.com/leadwerk/outreach-cli/internal/pipeline"
	"github.com/leadwerk/outreach-cli/internal/placeholder"
)

const summaryFileName = "lead_summary.html"

const linkClass = `class="text-blue-600 dark:text-blue-400 hover:underline"`

var httpSchemeRe = regexp.MustCompile(`(?i)^https?://`)

// ensureHTTP prefixes scheme-less URLs so hrefs stay clickable.
func ensureHTTP(rawURL string) string {
	u := strings.TrimSpace(rawURL)
	if u == "" {
		return ""
	}
	if !httpSchemeRe.MatchString(u) {
		return "http://" + u
	}
	return u
}

// HTMLSummary renders the lead summary page from the external template at
// tplPath into dir. Contact values become clickable links only when
// non-empty; previously generated markdown scripts are embedded as
// collapsible sections when present on disk. All human-entered text is
// escaped before insertion. Returns the output path.
func HTMLSummary(dir string, row model.Row, companyName string, m placeholder.Map, tplPath string, overwrite bool, now time.Time) (string, error) {
	outPath := filepath.Join(dir, summaryFileName)
	if _, err := os.Stat(outPath); err == nil && !overwrite {
		zap.L().Info("render: skipping existing HTML summary",
			zap.String("path", outPath),
		)
		return outPath, nil
	}

	raw, err := os.ReadFile(tplPath)
	if err != nil {
		return outPath, eris.Wrapf(err, "render: read html template %s", tplPath)
	}

	phone := row.GetKey("PHONE", "TELEFON", "TEL", "MOBILE", "HANDY", "PHONE_NUMBER")
	email := row.GetKey("EMAIL", "E_MAIL", "MAIL", "EMAIL_ADDRESS")
	website := row.GetKey("WEBSITE", "WEBSEITE", "URL")
	city := row.GetKey("CITY", "STADT", "ORT")
	industry := row.GetKey("INDUSTRY", "BRANCHE", "BUSINESS_TYPE")
	contact := row.GetKey("ANSPRECHPARTNER", "CONTACT", "CONTACT_NAME", "IHR_NAME", "OWNER", "MANAGER", "NAME")

	compEsc := html.EscapeString(companyName)

	phoneBlock := contactBlock("Phone", html.EscapeString(phone), "tel:"+pipeline.NormalizePhone(phone), pipeline.NormalizePhone(phone) != "", false)
	emailBlock := contactBlock("Email", html.EscapeString(email), "mailto:"+strings.TrimSpace(email), strings.TrimSpace(email) != "", false)
	websiteBlock := contactBlock("Website", html.EscapeString(website), ensureHTTP(website), ensureHTTP(website) != "", true)

	detailsList := buildDetailsList(
		detail{"Contact", html.EscapeString(contact)},
		detail{"City", html.EscapeString(city)},
		detail{"Industry", html.EscapeString(industry)},
	)

	emailMD := readScriptIfPresent(filepath.Join(dir, "cold_email.md"))
	phoneMD := readScriptIfPresent(filepath.Join(dir, "cold_phone_call.md"))

	merged := make(placeholder.Map, len(m)+16)
	for k, v := range m {
		merged[k] = v
	}
	for k, v := range map[string]string{
		"BusinessName":   compEsc,
		"COMPANY_NAME":   compEsc,
		"PHONE_BLOCK":    phoneBlock,
		"EMAIL_BLOCK":    emailBlock,
		"WEBSITE_BLOCK":  websiteBlock,
		"DETAILS_LIST":   detailsList,
		"EMAIL_MD_BLOCK": drawerBlock("Cold email (click to expand)", emailMD),
		"PHONE_MD_BLOCK": drawerBlock("Cold phone script (click to expand)", phoneMD),
		"GENERATED_AT":   html.EscapeString(now.Format("02.01.2006 15:04")),
	} {
		merged["{{"+k+"}}"] = v
		merged["{"+k+"}"] = v
	}

	filled := ReplaceInText(string(raw), merged)

	if err := os.WriteFile(outPath, []byte(filled), 0o644); err != nil {
		return outPath, eris.Wrapf(err, "render: write html summary %s", outPath)
	}
	return outPath, nil
}

// contactBlock renders one labeled contact line, as an anchor only when the
// href target resolved to something usable.
func contactBlock(label, escaped, href string, linkable, external bool) string {
	if escaped == "" && !linkable {
		return ""
	}
	inner := escaped
	if linkable {
		target := ""
		if external {
			target = ` target="_blank" rel="noopener noreferrer"`
		}
		inner = fmt.Sprintf(`<a %s%s href="%s">%s</a>`, linkClass, target, href, escaped)
	}
	return fmt.Sprintf(`<div><span class="text-sm text-gray-500 dark:text-gray-400">%s:</span> %s</div>`, label, inner)
}

type detail struct {
	label string
	value string
}

func buildDetailsList(details ...detail) string {
	var items []string
	for _, d := range details {
		if d.value == "" {
			continue
		}
		items = append(items, fmt.Sprintf(`<li><span class="font-medium">%s:</span> %s</li>`, d.label, d.value))
	}
	if len(items) == 0 {
		return ""
	}
	return `<ul class="mt-6 space-y-1 text-sm text-gray-700 dark:text-gray-200">` + strings.Join(items, "") + `</ul>`
}

// drawerBlock wraps already-escaped script content into a collapsible
// details section; empty content renders nothing.
func drawerBlock(summary, escapedContent string) string {
	if escapedContent == "" {
		return ""
	}
	return `<details class="bg-gray-50 dark:bg-gray-900 border border-gray-100 dark:border-gray-800 rounded-lg p-4">` + "\n" +
		`  <summary class="cursor-pointer font-medium text-gray-900 dark:text-gray-100">` + summary + `</summary>` + "\n" +
		`  <pre class="mt-3 whitespace-pre-wrap bg-white dark:bg-gray-800 p-3 rounded text-sm text-gray-800 dark:text-gray-100 font-mono overflow-x-auto">` + escapedContent + `</pre>` + "\n" +
		`</details>`
}

// readScriptIfPresent returns the escaped file content, or "" when the
// script was not generated. Read failures are non-fatal.
func readScriptIfPresent(path string) string {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return html.EscapeString(string(raw))
}
