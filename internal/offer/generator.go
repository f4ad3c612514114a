// Package offer orchestrates per-lead generation of the outreach bundle:
// a filled rich document, the cold email and phone call scripts, an HTML
// summary, and a metadata sidecar, all placed in a per-company directory.
package offer

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/leadwerk/outreach-cli/internal/model"
	"github.com/leadwerk/outreach-cli/internal/placeholder"
	"github.com/leadwerk/outreach-cli/internal/render"
	"github.com/leadwerk/outreach-cli/internal/translit"
)

const (
	docxArtifactPrefix = "Angebot-Webseitenservice-"
	metadataFileName   = "metadata.json"

	// fallback company name when the source row carries none
	unknownCompany = "Unknown Company"
)

// Generator renders the full offer bundle for leads.
type Generator struct {
	TemplateRoot string
	DocxTemplate string
	OutputRoot   string
	Lang         string
	Sender       placeholder.Sender
	Overwrite    bool
}

// Result describes one generated (or partially generated) bundle.
type Result struct {
	Company  string `json:"company"`
	Slug     string `json:"slug"`
	Dir      string `json:"dir"`
	DocxPath string `json:"docx_path"`
	Complete bool   `json:"complete"`
}

type metadata struct {
	Company      string          `json:"company"`
	CompanySlug  string          `json:"company_slug"`
	GeneratedAt  time.Time       `json:"generated_at"`
	Placeholders placeholder.Map `json:"placeholders"`
}

// Generate produces the offer bundle for one lead. The four artifact
// stages (document, metadata, markdown scripts, HTML summary) run in
// order and are isolated from each other: a failed stage is logged and
// the remaining stages still run. The returned error is the last stage
// failure, nil when the whole bundle rendered.
func (g *Generator) Generate(lead model.LeadRecord) (Result, error) {
	company := strings.TrimSpace(lead.Name)
	if company == "" {
		company = unknownCompany
	}
	slug := translit.Slugify(company)
	dir := filepath.Join(g.OutputRoot, slug)

	res := Result{Company: company, Slug: slug, Dir: dir}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return res, eris.Wrapf(err, "offer: create output dir %s", dir)
	}

	now := time.Now()
	m := placeholder.Build(lead.Row, company, g.Sender, now)
	log := zap.L().With(zap.String("company", company), zap.String("dir", dir))

	var lastErr error

	docxPath := filepath.Join(dir, docxArtifactPrefix+slug+".docx")
	if err := render.FillDocx(g.DocxTemplate, docxPath, m, g.Overwrite); err != nil {
		log.Warn("offer: document stage failed", zap.Error(err))
		lastErr = err
	} else {
		res.DocxPath = docxPath
	}

	if err := g.writeMetadata(dir, company, slug, m, now); err != nil {
		log.Warn("offer: metadata stage failed", zap.Error(err))
		lastErr = err
	}

	tpls := render.ResolveTextTemplates(g.TemplateRoot, g.Lang)
	if err := render.MarkdownScripts(dir, tpls, m, g.Overwrite); err != nil {
		lastErr = err // already logged per file
	}

	htmlTpl := render.HTMLTemplatePath(g.TemplateRoot)
	if _, err := render.HTMLSummary(dir, lead.Row, company, m, htmlTpl, g.Overwrite, now); err != nil {
		log.Warn("offer: summary stage failed", zap.Error(err))
		lastErr = err
	}

	res.Complete = lastErr == nil
	if res.Complete {
		log.Info("offer: bundle generated")
	}
	return res, lastErr
}

// writeMetadata records what was rendered and from which placeholder
// values. The sidecar is written on first generation and refreshed only
// with overwrite, so it always describes the artifacts next to it.
func (g *Generator) writeMetadata(dir, company, slug string, m placeholder.Map, now time.Time) error {
	path := filepath.Join(dir, metadataFileName)
	if _, err := os.Stat(path); err == nil && !g.Overwrite {
		return nil
	}

	data, err := json.MarshalIndent(metadata{
		Company:      company,
		CompanySlug:  slug,
		GeneratedAt:  now,
		Placeholders: m,
	}, "", "  ")
	if err != nil {
		return eris.Wrap(err, "offer: marshal metadata")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "offer: write %s", path)
	}
	return nil
}

// GenerateAll renders bundles for all leads with bounded concurrency.
// Per-lead failures are counted, not fatal; only context cancellation
// aborts the batch. Returns the results in input order.
func (g *Generator) GenerateAll(ctx context.Context, leads []model.LeadRecord, concurrency int) ([]Result, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	var (
		mu        sync.Mutex
		generated int
		failed    int
	)
	results := make([]Result, len(leads))

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrency)

	for i, lead := range leads {
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := g.Generate(lead)

			mu.Lock()
			defer mu.Unlock()
			results[i] = res
			if err != nil {
				failed++
				return nil // don't fail the group
			}
			generated++
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return results, eris.Wrap(err, "offer: generate batch")
	}

	zap.L().Info("offer: batch finished",
		zap.Int("generated", generated),
		zap.Int("failed", failed),
		zap.Int("total", len(leads)),
	)
	return results, nil
}
