package main

import (
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leadwerk/outreach-cli/internal/fetcher"
	"github.com/leadwerk/outreach-cli/internal/model"
	"github.com/leadwerk/outreach-cli/internal/pipeline"
)

var (
	importFilePath string
	importSheet    string
	importSource   string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a scraped lead list (XLSX or CSV) into the store",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		headers, rows, err := fetcher.ReadLeads(importFilePath, fetcher.Options{
			XLSX: fetcher.XLSXOptions{SheetName: importSheet},
			CSV:  fetcher.CSVOptions{TrimSpace: true},
		})
		if err != nil {
			return eris.Wrap(err, "read lead list")
		}
		zap.L().Info("lead list read",
			zap.String("file", importFilePath),
			zap.Strings("headers", headers),
			zap.Int("rows", len(rows)),
		)

		source := importSource
		if source == "" {
			source = filepath.Base(importFilePath)
		}

		records := make([]model.LeadRecord, 0, len(rows))
		for _, row := range rows {
			records = append(records, pipeline.LeadFromRow(row, source))
		}
		records = pipeline.Enrich(records, time.Now())

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		saved := 0
		for _, rec := range records {
			if _, err := st.UpsertLead(ctx, rec); err != nil {
				return eris.Wrapf(err, "upsert lead %s", rec.Slug)
			}
			saved++
		}

		zap.L().Info("import complete",
			zap.Int("imported", saved),
			zap.Int("rows", len(rows)),
			zap.String("file", importFilePath),
		)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importFilePath, "file", "", "path to XLSX or CSV lead list (required)")
	importCmd.Flags().StringVar(&importSheet, "sheet", "", "XLSX sheet name (default: first sheet)")
	importCmd.Flags().StringVar(&importSource, "source", "", "source label stored with each lead (default: file name)")
	_ = importCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(importCmd)
}
