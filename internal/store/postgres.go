package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/leadwerk/outreach-cli/internal/model"
)

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// preparedStatements lists queries to prepare on each new connection for
// faster execution of the most frequently used store operations.
var preparedStatements = map[string]string{
	"upsert_lead": `INSERT INTO leads (id, slug, name, record, presence, score, status, interested, source, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (slug) DO UPDATE SET
			name = excluded.name,
			record = excluded.record,
			presence = excluded.presence,
			score = excluded.score,
			source = excluded.source,
			updated_at = excluded.updated_at
		RETURNING id, status, interested`,
	"get_lead":       `SELECT id, record, score, status, interested, offer_dir, docx_path FROM leads WHERE slug = $1`,
	"set_status":     `UPDATE leads SET status = $1, updated_at = $2 WHERE slug = $3`,
	"set_interested": `UPDATE leads SET interested = $1, updated_at = $2 WHERE slug = $3`,
	"set_artifacts":  `UPDATE leads SET offer_dir = $1, docx_path = $2, updated_at = $3 WHERE slug = $4`,
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pgxCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		for name, sql := range preparedStatements {
			if _, err := conn.Prepare(ctx, name, sql); err != nil {
				return eris.Wrapf(err, "postgres: prepare %s", name)
			}
		}
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS leads (
	id         TEXT PRIMARY KEY,
	slug       TEXT NOT NULL UNIQUE,
	name       TEXT NOT NULL,
	record     JSONB NOT NULL,
	presence   TEXT,
	score      INTEGER NOT NULL DEFAULT 0,
	status     TEXT NOT NULL DEFAULT 'found',
	interested BOOLEAN NOT NULL DEFAULT FALSE,
	offer_dir  TEXT NOT NULL DEFAULT '',
	docx_path  TEXT NOT NULL DEFAULT '',
	source     TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_leads_status ON leads(status);
CREATE INDEX IF NOT EXISTS idx_leads_score ON leads(score);
CREATE INDEX IF NOT EXISTS idx_leads_presence ON leads(presence);
CREATE INDEX IF NOT EXISTS idx_leads_source ON leads(source);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// UpsertLead inserts or refreshes a lead keyed by slug, preserving funnel
// progress (status, interested) on conflict.
func (s *PostgresStore) UpsertLead(ctx context.Context, lead model.LeadRecord) (*model.LeadRecord, error) {
	if lead.Slug == "" {
		return nil, eris.New("postgres: lead has no slug")
	}
	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	if lead.Status == "" {
		lead.Status = model.LeadStatusFound
	}

	recordJSON, err := json.Marshal(lead)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: marshal lead")
	}

	now := time.Now().UTC()
	row := s.pool.QueryRow(ctx, preparedStatements["upsert_lead"],
		lead.ID, lead.Slug, lead.Name, recordJSON, string(lead.Presence),
		lead.Score, string(lead.Status), lead.Interested, lead.Source, now, now,
	)

	var status string
	if err := row.Scan(&lead.ID, &status, &lead.Interested); err != nil {
		return nil, eris.Wrapf(err, "postgres: upsert lead %s", lead.Slug)
	}
	lead.Status = model.LeadStatus(status)
	return &lead, nil
}

func (s *PostgresStore) GetLead(ctx context.Context, slug string) (*model.LeadRecord, error) {
	row := s.pool.QueryRow(ctx, preparedStatements["get_lead"], slug)
	lead, err := scanPgLead(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, eris.Errorf("lead not found: %s", slug)
	}
	return lead, err
}

// buildPgListQuery assembles the filtered lead listing query with
// positional placeholders.
func buildPgListQuery(filter LeadFilter) (string, []any) {
	query := `SELECT id, record, score, status, interested, offer_dir, docx_path FROM leads WHERE 1=1`
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Status != "" {
		query += ` AND status = ` + arg(string(filter.Status))
	}
	if filter.Presence != "" {
		query += ` AND presence = ` + arg(string(filter.Presence))
	}
	if filter.MinScore > 0 {
		query += ` AND score >= ` + arg(filter.MinScore)
	}
	if filter.Source != "" {
		query += ` AND source = ` + arg(filter.Source)
	}
	query += ` ORDER BY score DESC, name ASC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ` + arg(limit)
	if filter.Offset > 0 {
		query += ` OFFSET ` + arg(filter.Offset)
	}
	return query, args
}

func (s *PostgresStore) ListLeads(ctx context.Context, filter LeadFilter) ([]model.LeadRecord, error) {
	query, args := buildPgListQuery(filter)
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list leads")
	}
	defer rows.Close()

	var leads []model.LeadRecord
	for rows.Next() {
		lead, err := scanPgLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, *lead)
	}
	return leads, eris.Wrap(rows.Err(), "postgres: list leads iterate")
}

func (s *PostgresStore) SetStatus(ctx context.Context, slug string, status model.LeadStatus) error {
	tag, err := s.pool.Exec(ctx, preparedStatements["set_status"], string(status), time.Now().UTC(), slug)
	if err != nil {
		return eris.Wrapf(err, "postgres: set status %s", slug)
	}
	if tag.RowsAffected() == 0 {
		return eris.Errorf("lead not found: %s", slug)
	}
	return nil
}

// SetArtifacts records where a generated bundle landed for a lead.
func (s *PostgresStore) SetArtifacts(ctx context.Context, slug, offerDir, docxPath string) error {
	tag, err := s.pool.Exec(ctx, preparedStatements["set_artifacts"], offerDir, docxPath, time.Now().UTC(), slug)
	if err != nil {
		return eris.Wrapf(err, "postgres: set artifacts %s", slug)
	}
	if tag.RowsAffected() == 0 {
		return eris.Errorf("lead not found: %s", slug)
	}
	return nil
}

func (s *PostgresStore) SetInterested(ctx context.Context, slug string, interested bool) error {
	tag, err := s.pool.Exec(ctx, preparedStatements["set_interested"], interested, time.Now().UTC(), slug)
	if err != nil {
		return eris.Wrapf(err, "postgres: set interested %s", slug)
	}
	if tag.RowsAffected() == 0 {
		return eris.Errorf("lead not found: %s", slug)
	}
	return nil
}

func scanPgLead(row pgx.Row) (*model.LeadRecord, error) {
	var (
		id, status         string
		offerDir, docxPath string
		recordJSON         []byte
		score              int
		interested         bool
	)
	if err := row.Scan(&id, &recordJSON, &score, &status, &interested, &offerDir, &docxPath); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, eris.Wrap(err, "postgres: scan lead")
	}

	var lead model.LeadRecord
	if err := json.Unmarshal(recordJSON, &lead); err != nil {
		return nil, eris.Wrap(err, "postgres: unmarshal lead")
	}
	lead.ID = id
	lead.Score = score
	lead.Status = model.LeadStatus(status)
	lead.Interested = interested
	lead.OfferDir = offerDir
	lead.DocxPath = docxPath
	return &lead, nil
}
