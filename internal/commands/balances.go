package commands

import (
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/render"
	"github.com/tally-dev/tally/internal/report"
)

func newBalancesCommand(opts *options) *cobra.Command {
	var (
		types   []string
		from    string
		to      string
		priceIn string
		group   string
	)

	cmd := &cobra.Command{
		Use:   "balances",
		Short: "Print the account balance report",
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
			if priceIn == "" {
				priceIn = opts.cfg.Reports.Currency
			}
			if group == "" {
				group = opts.cfg.Reports.Group
			}

			l, err := opts.loadLedger()
			if err != nil {
				return err
			}
			table, err := report.Balances(l, report.BalanceOptions{
				From:    fromDate,
				To:      toDate,
				Types:   types,
				PriceIn: priceIn,
				Group:   ledger.ParseUnit(group),
			})
			if err != nil {
				return err
			}
			render.Balances(cmd.OutOrStdout(), table)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&types, "type", "t", nil, "filter accounts by account type (repeatable)")
	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&priceIn, "price", "p", "", "re-price balances in the given currency")
	cmd.Flags().StringVarP(&group, "group", "g", "", "group periods by M, Q, or Y")

	return cmd
}
