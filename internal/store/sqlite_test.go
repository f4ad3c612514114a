package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadwerk/outreach-cli/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := NewSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func testStoreLead(slug, name string, score int) model.LeadRecord {
	return model.LeadRecord{
		Slug:     slug,
		Name:     name,
		City:     "Frankfurt",
		Phone:    "+4969123456",
		Presence: model.PresenceNone,
		Score:    score,
		Status:   model.LeadStatusFound,
		Source:   "maps-export.xlsx",
		Row: model.Row{
			{Header: "Name", Value: name},
			{Header: "Stadt", Value: "Frankfurt"},
		},
	}
}

func TestSQLite_UpsertAndGet(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	saved, err := st.UpsertLead(ctx, testStoreLead("cafe-muller", "Café Müller", 70))
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, model.LeadStatusFound, saved.Status)

	got, err := st.GetLead(ctx, "cafe-muller")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "Café Müller", got.Name)
	assert.Equal(t, 70, got.Score)
	assert.Equal(t, model.PresenceNone, got.Presence)

	// The raw row survives the round trip.
	city, ok := got.Row.Get("Stadt")
	assert.True(t, ok)
	assert.Equal(t, "Frankfurt", city)
}

func TestSQLite_GetMissing(t *testing.T) {
	st := newTestSQLiteStore(t)

	_, err := st.GetLead(context.Background(), "nope")
	assert.Error(t, err)
}

func TestSQLite_UpsertRefreshesEnrichment(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	first, err := st.UpsertLead(ctx, testStoreLead("cafe-muller", "Café Müller", 40))
	require.NoError(t, err)

	updated := testStoreLead("cafe-muller", "Café Müller GmbH", 70)
	second, err := st.UpsertLead(ctx, updated)
	require.NoError(t, err)

	// Same identity, refreshed data.
	assert.Equal(t, first.ID, second.ID)

	got, err := st.GetLead(ctx, "cafe-muller")
	require.NoError(t, err)
	assert.Equal(t, "Café Müller GmbH", got.Name)
	assert.Equal(t, 70, got.Score)

	all, err := st.ListLeads(ctx, LeadFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSQLite_UpsertPreservesFunnelProgress(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	_, err := st.UpsertLead(ctx, testStoreLead("cafe-muller", "Café Müller", 70))
	require.NoError(t, err)
	require.NoError(t, st.SetStatus(ctx, "cafe-muller", model.LeadStatusContacted))
	require.NoError(t, st.SetInterested(ctx, "cafe-muller", true))

	// A later re-import must not reset status or interested.
	reimported, err := st.UpsertLead(ctx, testStoreLead("cafe-muller", "Café Müller", 50))
	require.NoError(t, err)
	assert.Equal(t, model.LeadStatusContacted, reimported.Status)
	assert.True(t, reimported.Interested)

	got, err := st.GetLead(ctx, "cafe-muller")
	require.NoError(t, err)
	assert.Equal(t, model.LeadStatusContacted, got.Status)
	assert.True(t, got.Interested)
	assert.Equal(t, 50, got.Score) // enrichment columns still refresh
}

func TestSQLite_UpsertRequiresSlug(t *testing.T) {
	st := newTestSQLiteStore(t)

	_, err := st.UpsertLead(context.Background(), model.LeadRecord{Name: "No Slug"})
	assert.Error(t, err)
}

func TestSQLite_ListLeadsFilters(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	high := testStoreLead("cafe-muller", "Café Müller", 70)
	mid := testStoreLead("baeckerei-schmidt", "Bäckerei Schmidt", 40)
	mid.Presence = model.PresenceWeak
	low := testStoreLead("friseur-klein", "Friseur Klein", 10)
	low.Presence = model.PresenceGenuine

	for _, lead := range []model.LeadRecord{mid, low, high} {
		_, err := st.UpsertLead(ctx, lead)
		require.NoError(t, err)
	}
	require.NoError(t, st.SetStatus(ctx, "friseur-klein", model.LeadStatusGenerated))

	all, err := st.ListLeads(ctx, LeadFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Ordered by score, highest first.
	assert.Equal(t, "Café Müller", all[0].Name)
	assert.Equal(t, "Friseur Klein", all[2].Name)

	scored, err := st.ListLeads(ctx, LeadFilter{MinScore: 40})
	require.NoError(t, err)
	assert.Len(t, scored, 2)

	weak, err := st.ListLeads(ctx, LeadFilter{Presence: model.PresenceWeak})
	require.NoError(t, err)
	require.Len(t, weak, 1)
	assert.Equal(t, "Bäckerei Schmidt", weak[0].Name)

	generated, err := st.ListLeads(ctx, LeadFilter{Status: model.LeadStatusGenerated})
	require.NoError(t, err)
	require.Len(t, generated, 1)
	assert.Equal(t, "Friseur Klein", generated[0].Name)

	limited, err := st.ListLeads(ctx, LeadFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "Bäckerei Schmidt", limited[0].Name)
}

func TestSQLite_SetArtifacts(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	_, err := st.UpsertLead(ctx, testStoreLead("cafe-muller", "Café Müller", 70))
	require.NoError(t, err)

	require.NoError(t, st.SetArtifacts(ctx, "cafe-muller",
		"offer-sheets/cafe-muller",
		"offer-sheets/cafe-muller/Angebot-Webseitenservice-cafe-muller.docx"))

	got, err := st.GetLead(ctx, "cafe-muller")
	require.NoError(t, err)
	assert.Equal(t, "offer-sheets/cafe-muller", got.OfferDir)
	assert.Contains(t, got.DocxPath, "cafe-muller.docx")

	assert.Error(t, st.SetArtifacts(ctx, "nope", "d", "p"))
}

func TestSQLite_SettersOnMissingLead(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	assert.Error(t, st.SetStatus(ctx, "nope", model.LeadStatusContacted))
	assert.Error(t, st.SetInterested(ctx, "nope", true))
}
