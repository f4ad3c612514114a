package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/leadwerk/outreach-cli/internal/model"
	"github.com/leadwerk/outreach-cli/internal/store"
)

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Inspect and update stored leads",
	Long:  "Commands for listing leads, viewing one lead, and flagging interest.",
}

// -- leads list --

var leadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored leads",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		status, _ := cmd.Flags().GetString("status")
		presence, _ := cmd.Flags().GetString("presence")
		minScore, _ := cmd.Flags().GetInt("min-score")
		limit, _ := cmd.Flags().GetInt("limit")

		leads, err := st.ListLeads(ctx, store.LeadFilter{
			Status:   model.LeadStatus(status),
			Presence: model.Presence(presence),
			MinScore: minScore,
			Limit:    limit,
		})
		if err != nil {
			return eris.Wrap(err, "leads list")
		}

		if len(leads) == 0 {
			fmt.Fprintln(os.Stderr, "No leads found.")
			return nil
		}

		formatLeadsList(os.Stdout, leads)
		return nil
	},
}

// -- leads show --

var leadsShowCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Show full details of a lead",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		lead, err := st.GetLead(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "leads show")
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(lead)
	},
}

// -- leads interested --

var leadsNotInterested bool

var leadsInterestedCmd = &cobra.Command{
	Use:   "interested <slug>",
	Short: "Flag a lead as interested (or --no to clear)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		if err := st.SetInterested(ctx, args[0], !leadsNotInterested); err != nil {
			return eris.Wrap(err, "leads interested")
		}
		return nil
	},
}

// -- leads contacted --

var leadsContactedCmd = &cobra.Command{
	Use:   "contacted <slug>",
	Short: "Mark a lead as contacted",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		if err := st.SetStatus(ctx, args[0], model.LeadStatusContacted); err != nil {
			return eris.Wrap(err, "leads contacted")
		}
		return nil
	},
}

// formatLeadsList writes a tabular list of leads to w.
func formatLeadsList(out io.Writer, leads []model.LeadRecord) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "SLUG\tNAME\tCITY\tWEB\tSCORE\tSTATUS\tINTERESTED")
	_, _ = fmt.Fprintln(w, "----\t----\t----\t---\t-----\t------\t----------")

	for _, l := range leads {
		interested := ""
		if l.Interested {
			interested = "yes"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			l.Slug, l.Name, l.City, string(l.Presence), l.Score, string(l.Status), interested)
	}
	_ = w.Flush()
}

func init() {
	leadsListCmd.Flags().String("status", "", "filter by status (found|generated|contacted)")
	leadsListCmd.Flags().String("presence", "", "filter by web presence (N|L|Y)")
	leadsListCmd.Flags().Int("min-score", 0, "minimum score")
	leadsListCmd.Flags().Int("limit", 100, "maximum number of leads")
	leadsInterestedCmd.Flags().BoolVar(&leadsNotInterested, "no", false, "clear the interested flag")

	leadsCmd.AddCommand(leadsListCmd, leadsShowCmd, leadsInterestedCmd, leadsContactedCmd)
	rootCmd.AddCommand(leadsCmd)
}
