package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/solidbots/internal/infra/journalnetwork"
)

func journalCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "journal",
		Short: "Show broadcasts recorded by the journal network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := opts.app.cfg.Journal.Path
			recs, err := journalnetwork.Load(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(recs) == 0 {
				fmt.Fprintln(out, "(no broadcasts recorded)")
				return nil
			}

			fmt.Fprintf(out, "Journal: %s\n\n", path)
			for _, r := range recs {
				fmt.Fprintf(out, "%s  %s  %s\n", r.SentAt.Format(time.RFC3339), r.ID, r.Message)
			}
			return nil
		},
	}
}
