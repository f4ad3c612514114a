package main

import (
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leadwerk/outreach-cli/internal/fetcher"
	"github.com/leadwerk/outreach-cli/internal/model"
	"github.com/leadwerk/outreach-cli/internal/offer"
	"github.com/leadwerk/outreach-cli/internal/pipeline"
	"github.com/leadwerk/outreach-cli/internal/store"
)

var (
	generateFilePath  string
	generateSheet     string
	generateMinScore  int
	generateOverwrite bool
	generateLang      string
	generateOutDir    string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate offer bundles for leads without a usable website",
	Long: `Generates a per-lead offer bundle (docx offer, cold email and phone
scripts, HTML summary). Reads leads either directly from a lead list file
(--file) or from the store, where imported leads are filtered by score.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		gen := &offer.Generator{
			TemplateRoot: cfg.Templates.Root,
			DocxTemplate: cfg.Templates.Docx,
			OutputRoot:   cfg.Output.Root,
			Lang:         cfg.Templates.Lang,
			Sender:       cfg.Sender,
			Overwrite:    generateOverwrite || cfg.Generate.Overwrite,
		}
		if generateLang != "" {
			gen.Lang = generateLang
		}
		if generateOutDir != "" {
			gen.OutputRoot = generateOutDir
		}
		minScore := cfg.Generate.MinScore
		if generateMinScore > 0 {
			minScore = generateMinScore
		}

		var leads []model.LeadRecord
		if generateFilePath != "" {
			var err error
			leads, err = leadsFromFile(generateFilePath, generateSheet)
			if err != nil {
				return err
			}
			if minScore > 0 {
				leads = filterByScore(leads, minScore)
			}
		} else {
			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			leads, err = st.ListLeads(ctx, store.LeadFilter{
				Status:   model.LeadStatusFound,
				MinScore: minScore,
				Limit:    10000,
			})
			if err != nil {
				return eris.Wrap(err, "list leads")
			}
			leads = filterNeedsOutreach(leads)

			results, err := gen.GenerateAll(ctx, leads, cfg.Generate.Concurrency)
			if err != nil {
				return err
			}
			for _, res := range results {
				if !res.Complete {
					continue
				}
				if err := st.SetArtifacts(ctx, res.Slug, res.Dir, res.DocxPath); err != nil {
					zap.L().Warn("record lead artifacts failed",
						zap.String("slug", res.Slug),
						zap.Error(err),
					)
				}
				if err := st.SetStatus(ctx, res.Slug, model.LeadStatusGenerated); err != nil {
					zap.L().Warn("mark lead generated failed",
						zap.String("slug", res.Slug),
						zap.Error(err),
					)
				}
			}
			return nil
		}

		_, err := gen.GenerateAll(ctx, leads, cfg.Generate.Concurrency)
		return err
	},
}

// leadsFromFile reads a lead list and keeps only the rows that need
// outreach. A list without a recognizable website column is refused whole:
// without it every row would look like a no-website lead.
func leadsFromFile(path, sheet string) ([]model.LeadRecord, error) {
	headers, rows, err := fetcher.ReadLeads(path, fetcher.Options{
		XLSX: fetcher.XLSXOptions{SheetName: sheet},
		CSV:  fetcher.CSVOptions{TrimSpace: true},
	})
	if err != nil {
		return nil, eris.Wrap(err, "read lead list")
	}
	if len(rows) == 0 {
		zap.L().Warn("lead list has no rows, nothing to generate", zap.String("file", path))
		return nil, nil
	}

	websiteCol, err := pipeline.FindWebsiteColumn(headers)
	if err != nil {
		return nil, err
	}

	source := filepath.Base(path)
	var records []model.LeadRecord
	for _, row := range rows {
		website, _ := row.Get(websiteCol)
		if !pipeline.NeedsOutreach(website) {
			continue
		}
		records = append(records, pipeline.LeadFromRow(row, source))
	}

	records = pipeline.Enrich(records, time.Now())
	zap.L().Info("lead list filtered for outreach",
		zap.String("file", path),
		zap.String("website_column", websiteCol),
		zap.Int("rows", len(rows)),
		zap.Int("kept", len(records)),
	)
	return records, nil
}

// filterNeedsOutreach drops leads with a usable website. Imported leads
// keep their website field, so the store path applies the same retain
// condition as the file path.
func filterNeedsOutreach(leads []model.LeadRecord) []model.LeadRecord {
	kept := leads[:0]
	for _, lead := range leads {
		if pipeline.NeedsOutreach(lead.Website) {
			kept = append(kept, lead)
		}
	}
	return kept
}

func filterByScore(leads []model.LeadRecord, minScore int) []model.LeadRecord {
	kept := leads[:0]
	for _, lead := range leads {
		if lead.Score >= minScore {
			kept = append(kept, lead)
		}
	}
	return kept
}

func init() {
	generateCmd.Flags().StringVar(&generateFilePath, "file", "", "generate directly from a lead list file instead of the store")
	generateCmd.Flags().StringVar(&generateSheet, "sheet", "", "XLSX sheet name (default: first sheet)")
	generateCmd.Flags().IntVar(&generateMinScore, "min-score", 0, "only generate for leads with at least this score")
	generateCmd.Flags().BoolVar(&generateOverwrite, "overwrite", false, "re-render artifacts that already exist")
	generateCmd.Flags().StringVar(&generateLang, "lang", "", "script template language (default from config)")
	generateCmd.Flags().StringVar(&generateOutDir, "out", "", "output root directory (default from config)")
	rootCmd.AddCommand(generateCmd)
}
