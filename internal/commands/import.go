package commands

import (
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/importer"
)

func newImportCommand(opts *options) *cobra.Command {
	var (
		csvPath string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import transactions from a CSV file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := opts.requireLedgerPath()
			if err != nil {
				return err
			}
			if format == "" {
				format = opts.cfg.Import.DateFormat
			}

			count, err := importer.Import(csvPath, path, importer.Options{DateFormat: format}, opts.log)
			if err != nil {
				return err
			}
			opts.log.Info().Int("count", count).Str("csv", csvPath).Msg("import complete")
			return nil
		},
	}

	cmd.Flags().StringVarP(&csvPath, "csv", "c", "", "CSV file with transactions to import (required)")
	_ = cmd.MarkFlagRequired("csv")
	cmd.Flags().StringVarP(&format, "format", "f", "", "CSV date format as Go reference layout (default day/month/year)")

	return cmd
}
