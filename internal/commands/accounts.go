package commands

import (
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/render"
	"github.com/tally-dev/tally/internal/report"
)

func newAccountsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List declared accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := opts.loadLedger()
			if err != nil {
				return err
			}
			render.Accounts(cmd.OutOrStdout(), report.Accounts(l))
			return nil
		},
	}
}
