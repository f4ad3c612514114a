package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leadwerk/outreach-cli/internal/model"
)

func TestDedupeDropsLaterDuplicates(t *testing.T) {
	leads := []model.LeadRecord{
		{Name: "Café Müller", PostalCode: "60311", Phone: "+49 171 1234567", Source: "places"},
		{Name: "CAFÉ MÜLLER", PostalCode: "60311", Phone: "+49-171-1234567", Source: "overpass"},
		{Name: "Friseur Klein", PostalCode: "60311", Phone: ""},
	}

	out := Dedupe(leads)

	assert.Len(t, out, 2)
	// First-seen wins.
	assert.Equal(t, "places", out[0].Source)
	assert.Equal(t, "Friseur Klein", out[1].Name)
}

func TestDedupePreservesOrder(t *testing.T) {
	leads := []model.LeadRecord{
		{Name: "C", PostalCode: "3"},
		{Name: "A", PostalCode: "1"},
		{Name: "B", PostalCode: "2"},
	}
	out := Dedupe(leads)
	assert.Equal(t, []string{"C", "A", "B"}, []string{out[0].Name, out[1].Name, out[2].Name})
}

func TestDedupeIdempotent(t *testing.T) {
	leads := []model.LeadRecord{
		{Name: "A", PostalCode: "1", Phone: "069 1"},
		{Name: "a", PostalCode: "1", Phone: "0691"},
		{Name: "B", PostalCode: "2"},
	}
	once := Dedupe(leads)
	twice := Dedupe(once)
	assert.Equal(t, once, twice)
}

func TestDedupeDistinguishesByPostalCode(t *testing.T) {
	leads := []model.LeadRecord{
		{Name: "Bäckerei Schmidt", PostalCode: "60311"},
		{Name: "Bäckerei Schmidt", PostalCode: "60313"},
	}
	assert.Len(t, Dedupe(leads), 2)
}
