package main

import (
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leadwerk/outreach-cli/internal/pipeline"
	"github.com/leadwerk/outreach-cli/internal/store"
)

var rescoreCmd = &cobra.Command{
	Use:   "rescore",
	Short: "Re-run presence classification and scoring over stored leads",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		leads, err := st.ListLeads(ctx, store.LeadFilter{Limit: 10000})
		if err != nil {
			return eris.Wrap(err, "list leads")
		}

		now := time.Now()
		changed := 0
		for _, lead := range leads {
			oldScore := lead.Score
			lead.Presence = pipeline.Classify(lead.Website)
			lead.Score = pipeline.Score(lead)
			lead.CheckedAt = now

			if _, err := st.UpsertLead(ctx, lead); err != nil {
				return eris.Wrapf(err, "upsert lead %s", lead.Slug)
			}
			if lead.Score != oldScore {
				changed++
			}
		}

		zap.L().Info("rescore complete",
			zap.Int("leads", len(leads)),
			zap.Int("changed", changed),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rescoreCmd)
}
