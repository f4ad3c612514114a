// Package pipeline enriches raw provider rows into scored lead records:
// presence classification, normalization, deduplication, and scoring.
package pipeline

import (
	"time"

	"go.uber.org/zap"

	"github.com/leadwerk/outreach-cli/internal/model"
	"github.com/leadwerk/outreach-cli/internal/translit"
)

// LeadFromRow maps a raw row onto a LeadRecord using candidate header
// spellings for each field (German and English). Unknown columns stay
// available through the retained Row.
func LeadFromRow(row model.Row, source string) model.LeadRecord {
	return model.LeadRecord{
		Name:          row.GetKey("FIRMENNAME", "COMPANY", "FIRMA", "UNTERNEHMEN", "COMPANY_NAME", "NAME"),
		Category:      row.GetKey("KATEGORIE", "CATEGORY", "BRANCHE", "INDUSTRY"),
		Street:        row.GetKey("STRASSE", "STREET"),
		City:          row.GetKey("STADT", "CITY", "ORT"),
		PostalCode:    row.GetKey("PLZ", "POSTAL_CODE", "ZIP", "POSTCODE"),
		Country:       row.GetKey("LAND", "COUNTRY"),
		Phone:         row.GetKey("TELEFON", "PHONE", "TEL", "MOBILE", "HANDY", "PHONE_NUMBER"),
		Email:         row.GetKey("E_MAIL", "EMAIL", "MAIL", "EMAIL_ADDRESS"),
		ContactPerson: row.GetKey("ANSPRECHPARTNER", "CONTACT", "CONTACT_NAME", "OWNER", "MANAGER"),
		Website:       row.GetKey("WEBSEITE", "WEBSITE", "URL"),
		MapsURL:       row.GetKey("GOOGLEMAPSURL", "MAPS_URL", "GOOGLE_MAPS_URL"),
		ReviewsCount:  row.GetKey("BEWERTUNGENANZAHL", "REVIEWS_COUNT", "REVIEWSCOUNT", "REVIEWS"),
		Notes:         row.GetKey("NOTIZEN", "NOTES"),
		Source:        source,
		Row:           row,
	}
}

// Enrich runs the in-memory enrichment over freshly collected leads:
// classify web presence, dedupe by identity key, score, and stamp status.
// Row order is preserved; the returned slice is the deduplicated set.
func Enrich(leads []model.LeadRecord, now time.Time) []model.LeadRecord {
	for i := range leads {
		leads[i].Presence = Classify(leads[i].Website)
	}

	before := len(leads)
	leads = Dedupe(leads)
	if dropped := before - len(leads); dropped > 0 {
		zap.L().Info("pipeline: dropped duplicate leads",
			zap.Int("dropped", dropped),
			zap.Int("kept", len(leads)),
		)
	}

	for i := range leads {
		leads[i].Slug = translit.Slugify(leads[i].Name)
		leads[i].Score = Score(leads[i])
		leads[i].Status = model.LeadStatusFound
		leads[i].CheckedAt = now
	}
	return leads
}
