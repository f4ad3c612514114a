package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/leadwerk/outreach-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS leads (
	id         TEXT PRIMARY KEY,
	slug       TEXT NOT NULL UNIQUE,
	name       TEXT NOT NULL,
	record     TEXT NOT NULL,
	presence   TEXT,
	score      INTEGER NOT NULL DEFAULT 0,
	status     TEXT NOT NULL DEFAULT 'found',
	interested INTEGER NOT NULL DEFAULT 0,
	offer_dir  TEXT NOT NULL DEFAULT '',
	docx_path  TEXT NOT NULL DEFAULT '',
	source     TEXT,
	created_at DATETIME NOT NULL DEFAULT (datetime('now')),
	updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_leads_status ON leads(status);
CREATE INDEX IF NOT EXISTS idx_leads_score ON leads(score);
CREATE INDEX IF NOT EXISTS idx_leads_presence ON leads(presence);
CREATE INDEX IF NOT EXISTS idx_leads_source ON leads(source);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// UpsertLead inserts or refreshes a lead keyed by slug. A re-import
// refreshes the enrichment columns but never resets funnel progress: the
// stored status and the interested flag survive the conflict.
func (s *SQLiteStore) UpsertLead(ctx context.Context, lead model.LeadRecord) (*model.LeadRecord, error) {
	if lead.Slug == "" {
		return nil, eris.New("sqlite: lead has no slug")
	}
	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	if lead.Status == "" {
		lead.Status = model.LeadStatusFound
	}

	recordJSON, err := json.Marshal(lead)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal lead")
	}

	now := time.Now().UTC()
	row := s.db.QueryRowContext(ctx,
		`INSERT INTO leads (id, slug, name, record, presence, score, status, interested, source, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(slug) DO UPDATE SET
			name = excluded.name,
			record = excluded.record,
			presence = excluded.presence,
			score = excluded.score,
			source = excluded.source,
			updated_at = excluded.updated_at
		 RETURNING id, status, interested`,
		lead.ID, lead.Slug, lead.Name, string(recordJSON), string(lead.Presence),
		lead.Score, string(lead.Status), lead.Interested, lead.Source, now, now,
	)

	var status string
	if err := row.Scan(&lead.ID, &status, &lead.Interested); err != nil {
		return nil, eris.Wrapf(err, "sqlite: upsert lead %s", lead.Slug)
	}
	lead.Status = model.LeadStatus(status)
	return &lead, nil
}

func (s *SQLiteStore) GetLead(ctx context.Context, slug string) (*model.LeadRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, record, score, status, interested, offer_dir, docx_path FROM leads WHERE slug = ?`,
		slug,
	)
	return scanLead(row)
}

func (s *SQLiteStore) ListLeads(ctx context.Context, filter LeadFilter) ([]model.LeadRecord, error) {
	query := `SELECT id, record, score, status, interested, offer_dir, docx_path FROM leads WHERE 1=1`
	var args []any

	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, string(filter.Status))
	}
	if filter.Presence != "" {
		query += ` AND presence = ?`
		args = append(args, string(filter.Presence))
	}
	if filter.MinScore > 0 {
		query += ` AND score >= ?`
		args = append(args, filter.MinScore)
	}
	if filter.Source != "" {
		query += ` AND source = ?`
		args = append(args, filter.Source)
	}
	query += ` ORDER BY score DESC, name ASC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list leads")
	}
	defer rows.Close()

	var leads []model.LeadRecord
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, *lead)
	}
	return leads, eris.Wrap(rows.Err(), "sqlite: list leads iterate")
}

func (s *SQLiteStore) SetStatus(ctx context.Context, slug string, status model.LeadStatus) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE leads SET status = ?, updated_at = ? WHERE slug = ?`,
		string(status), time.Now().UTC(), slug,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: set status %s", slug)
	}
	return checkRowsAffected(res, "lead", slug)
}

// SetArtifacts records where a generated bundle landed for a lead.
func (s *SQLiteStore) SetArtifacts(ctx context.Context, slug, offerDir, docxPath string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE leads SET offer_dir = ?, docx_path = ?, updated_at = ? WHERE slug = ?`,
		offerDir, docxPath, time.Now().UTC(), slug,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: set artifacts %s", slug)
	}
	return checkRowsAffected(res, "lead", slug)
}

func (s *SQLiteStore) SetInterested(ctx context.Context, slug string, interested bool) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE leads SET interested = ?, updated_at = ? WHERE slug = ?`,
		interested, time.Now().UTC(), slug,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: set interested %s", slug)
	}
	return checkRowsAffected(res, "lead", slug)
}

// helpers

func checkRowsAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "rows affected")
	}
	if n == 0 {
		return eris.Errorf("%s not found: %s", entity, id)
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

// scanLead rebuilds a LeadRecord from its JSON snapshot, then overlays the
// mutable columns so funnel updates made after the import win.
func scanLead(row scannable) (*model.LeadRecord, error) {
	var (
		id, recordJSON, status string
		offerDir, docxPath     string
		score                  int
		interested             bool
	)
	err := row.Scan(&id, &recordJSON, &score, &status, &interested, &offerDir, &docxPath)
	if err == sql.ErrNoRows {
		return nil, eris.New("lead not found")
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan lead")
	}

	var lead model.LeadRecord
	if err := json.Unmarshal([]byte(recordJSON), &lead); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal lead")
	}
	lead.ID = id
	lead.Score = score
	lead.Status = model.LeadStatus(status)
	lead.Interested = interested
	lead.OfferDir = offerDir
	lead.DocxPath = docxPath
	return &lead, nil
}
