package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadwerk/outreach-cli/internal/model"
)

func TestLeadFromRow(t *testing.T) {
	row := model.Row{
		{Header: "Firmenname", Value: "Café Müller"},
		{Header: "Kategorie", Value: "Bäckerei"},
		{Header: "PLZ", Value: "60311"},
		{Header: "Telefon", Value: "+49 171 1234567"},
		{Header: "Webseite", Value: ""},
		{Header: "BewertungenAnzahl", Value: "5"},
	}

	lead := LeadFromRow(row, "places")

	assert.Equal(t, "Café Müller", lead.Name)
	assert.Equal(t, "Bäckerei", lead.Category)
	assert.Equal(t, "60311", lead.PostalCode)
	assert.Equal(t, "+49 171 1234567", lead.Phone)
	assert.Equal(t, "", lead.Website)
	assert.Equal(t, "5", lead.ReviewsCount)
	assert.Equal(t, "places", lead.Source)
	assert.Equal(t, row, lead.Row)
}

func TestEnrichEndToEnd(t *testing.T) {
	now := time.Date(2025, 9, 12, 10, 0, 0, 0, time.UTC)
	leads := []model.LeadRecord{
		{Name: "Café Müller", PostalCode: "60311", Phone: "+49 171 1234567", Website: "", ReviewsCount: "5"},
		{Name: "café müller", PostalCode: "60311", Phone: "+49-171-1234567", Website: "", ReviewsCount: "5"},
		{Name: "Web Pros GmbH", PostalCode: "60313", Website: "https://webpros.de", ReviewsCount: "300", MapsURL: "https://maps.google.com/?cid=2"},
	}

	out := Enrich(leads, now)

	require.Len(t, out, 2)

	first := out[0]
	assert.Equal(t, "Café Müller", first.Name) // identical identity key, first row retained
	assert.Equal(t, model.PresenceNone, first.Presence)
	assert.GreaterOrEqual(t, first.Score, 70) // 40 no site + 20 few reviews + 10 no maps URL
	assert.Equal(t, model.LeadStatusFound, first.Status)
	assert.Equal(t, now, first.CheckedAt)

	second := out[1]
	assert.Equal(t, model.PresenceGenuine, second.Presence)
	assert.Equal(t, 0, second.Score)
}
