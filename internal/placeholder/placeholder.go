// Package placeholder builds the token→value mapping one lead's templates
// are rendered against. A template author may spell a field in any of three
// bracket styles ({{X}}, {X}, [X]) and several casings; Build registers
// every plausible spelling so templates resolve without knowledge of the
// internal column names.
//
// Registration is last-write-wins: row columns are expanded first, semantic
// aliases second, so an alias can shadow a literal column whose name
// collides with a reserved token (e.g. a "Name" column vs the {Name}
// contact alias). Template authors relying on such literal columns should
// rename them.
package placeholder

import (
	"strings"
	"time"

	"github.com/leadwerk/outreach-cli/internal/model"
	"github.com/leadwerk/outreach-cli/internal/translit"
)

// Map maps every registered placeholder token spelling to its resolved
// value for one lead. Values are always defined strings, never null.
type Map map[string]string

// dateTokens receive the generation date unless a row column or alias
// already claimed the spelling.
var dateTokens = []string{"{{DATE}}", "{DATE}", "[DATE]", "{{Date}}", "{Date}", "[Date]"}

const dateLayout = "02.01.2006"

// Build produces the placeholder map for one lead row. companyName is the
// resolved business name (used for the BusinessName aliases), sender
// supplies the signature and offer defaults, now stamps the date tokens.
func Build(row model.Row, companyName string, sender Sender, now time.Time) Map {
	m := make(Map)

	for _, cell := range row {
		registerColumn(m, cell.Header, cell.Value)
	}

	registerAliases(m, row, companyName, sender)

	date := now.Format(dateLayout)
	for _, tok := range dateTokens {
		if _, ok := m[tok]; !ok {
			m[tok] = date
		}
	}

	return m
}

// registerColumn writes a column's value under every generated variant:
// the normalized key, the original header and its diacritic-free form in
// four casings, and the space/underscore forms, each wrapped in the three
// bracket styles.
func registerColumn(m Map, header, value string) {
	key := translit.NormalizeKey(header)

	variants := make(map[string]struct{})
	add := func(tok string) { variants[tok] = struct{}{} }

	add("{{" + key + "}}")
	add("{" + key + "}")
	add("[" + key + "]")

	headerTrim := strings.TrimSpace(header)
	for _, base := range uniq(headerTrim, translit.StripDiacritics(headerTrim)) {
		add("[" + base + "]")
		add("[" + strings.ToLower(base) + "]")
		add("[" + strings.ToUpper(base) + "]")
		add("[" + translit.Title(base) + "]")
		add("{" + base + "}")
		add("{{" + base + "}}")
	}

	spaceKey := strings.ReplaceAll(key, "_", " ")
	for _, base := range uniq(key, spaceKey) {
		add("[" + base + "]")
		add("{" + base + "}")
		add("{{" + base + "}}")
		add("[" + strings.ToLower(base) + "]")
		add("[" + strings.ToUpper(base) + "]")
		add("[" + translit.Title(base) + "]")
	}

	for tok := range variants {
		m[tok] = value
	}
}

// alias is one semantic token with its resolved value.
type alias struct {
	key   string
	value string
}

// registerAliases resolves the fixed alias set (lead fields row-first with
// sender fallback, sender signature, offer defaults) and registers each
// under its declared casing in the three bracket styles.
func registerAliases(m Map, row model.Row, companyName string, sender Sender) {
	city := firstNonEmpty(row.GetKey("CITY", "STADT", "ORT"), sender.City)
	rowWebsite := row.GetKey("WEBSITE", "WEBSEITE", "URL")
	website := firstNonEmpty(rowWebsite, sender.Website)
	phone := firstNonEmpty(row.GetKey("PHONE", "TELEFON", "TEL", "MOBILE", "HANDY", "PHONE_NUMBER"), sender.Phone)
	email := firstNonEmpty(row.GetKey("EMAIL", "E_MAIL", "MAIL", "EMAIL_ADDRESS"), sender.Email)
	industry := firstNonEmpty(row.GetKey("INDUSTRY", "BRANCHE", "BUSINESS_TYPE"), sender.Industry)
	contact := row.GetKey("ANSPRECHPARTNER", "CONTACT", "CONTACT_NAME", "IHR_NAME", "OWNER", "MANAGER", "NAME")

	firstName := ""
	if fields := strings.Fields(contact); len(fields) > 0 {
		firstName = fields[0]
	}

	role := sender.Role
	if role == "" {
		role = "Owner"
	}

	aliases := []alias{
		// The lead being contacted.
		{"BusinessName", companyName},
		{"Business Name", companyName},
		{"LeadCompany", companyName},
		{"City", city},
		{"FirstName", firstName},
		{"Industry", industry},
		{"Phone", phone},
		{"Email", email},
		{"Website", website},
		{"URL", rowWebsite},
		// Offer defaults.
		{"Price", sender.Price},
		{"Pages", sender.Pages},
		{"Timeline", sender.Timeline},
		{"SupportPeriod", sender.SupportPeriod},
		// Social proof and links.
		{"ProjectLink", sender.ProjectLink},
		{"ShortOutcome", sender.ShortOutcome},
		{"CalendarLink", sender.CalendarLink},
		{"Link", sender.CalendarLink},
		{"Short URL", sender.CalendarLink},
		// Sender signature. {{Company}} denotes the sender's company in the
		// email templates, not the lead.
		{"YourName", sender.Name},
		{"Your Title", sender.Title},
		{"YourTitle", sender.Title},
		{"Your Company", sender.Company},
		{"Company", sender.Company},
		// Phone script extras.
		{"Owner/Manager Name", contact},
		{"Name", contact},
		{"Role", role},
	}

	for _, a := range aliases {
		registerVariants(m, a.key, a.value)
	}
}

// registerVariants writes value under the three bracket styles of key in
// its declared casing only (no case expansion for aliases).
func registerVariants(m Map, key, value string) {
	for _, k := range uniq(key, strings.TrimSpace(key)) {
		m["{{"+k+"}}"] = value
		m["{"+k+"}"] = value
		m["["+k+"]"] = value
	}
}

func uniq(a, b string) []string {
	if a == b {
		return []string{a}
	}
	return []string{a, b}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
