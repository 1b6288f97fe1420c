package commands

import (
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/render"
	"github.com/tally-dev/tally/internal/report"
)

func newJournalCommand(opts *options) *cobra.Command {
	var (
		from        string
		to          string
		accountType string
		account     string
		payee       string
	)

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Print the transaction journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fromDate, err := parseDateFlag("from", from)
			if err != nil {
				return err
			}
			toDate, err := parseDateFlag("to", to)
			if err != nil {
				return err
			}

			l, err := opts.loadLedger()
			if err != nil {
				return err
			}
			entries, err := report.Journal(l, report.JournalOptions{
				From:    fromDate,
				To:      toDate,
				Type:    accountType,
				Account: account,
				Payee:   payee,
			})
			if err != nil {
				return err
			}
			render.Journal(cmd.OutOrStdout(), entries)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&accountType, "type", "t", "", "filter accounts by account type")
	cmd.Flags().StringVarP(&account, "account", "a", "", "filter accounts by name")
	cmd.Flags().StringVarP(&payee, "payee", "p", "", "filter transactions by payee")

	return cmd
}
