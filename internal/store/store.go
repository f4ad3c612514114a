// Package store persists enriched leads so imports, rescoring, and offer
// generation can run as separate invocations over the same funnel.
package store

import (
	"context"

	"github.com/leadwerk/outreach-cli/internal/model"
)

// LeadFilter specifies criteria for listing leads.
type LeadFilter struct {
	Status   model.LeadStatus `json:"status,omitempty"`
	Presence model.Presence   `json:"presence,omitempty"`
	MinScore int              `json:"min_score,omitempty"`
	Source   string           `json:"source,omitempty"`
	Limit    int              `json:"limit,omitempty"`
	Offset   int              `json:"offset,omitempty"`
}

// Store defines the persistence interface for the outreach funnel.
type Store interface {
	// Leads
	UpsertLead(ctx context.Context, lead model.LeadRecord) (*model.LeadRecord, error)
	GetLead(ctx context.Context, slug string) (*model.LeadRecord, error)
	ListLeads(ctx context.Context, filter LeadFilter) ([]model.LeadRecord, error)
	SetStatus(ctx context.Context, slug string, status model.LeadStatus) error
	SetInterested(ctx context.Context, slug string, interested bool) error
	SetArtifacts(ctx context.Context, slug, offerDir, docxPath string) error

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
