// Package commands wires the ledger operations into the CLI surface.
package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/buildinfo"
	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/ledgerfile"
	"github.com/tally-dev/tally/internal/logger"
)

// ledgerEnvVar overrides the ledger path when the flag is absent.
const ledgerEnvVar = "TALLY_LEDGER"

const flagDateFormat = "2006-01-02"

// options carries the resolved global state into subcommands.
type options struct {
	ledgerPath string
	verbose    bool
	cfg        *config.Config
	log        zerolog.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &options{cfg: &config.Config{}}

	rootCmd := &cobra.Command{
		Use:     "tally",
		Short:   "Plain-text double-entry ledger reports",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadIfPresent()
			if err != nil {
				return err
			}
			opts.cfg = cfg

			if opts.ledgerPath == "" {
				opts.ledgerPath = os.Getenv(ledgerEnvVar)
			}
			if opts.ledgerPath == "" {
				opts.ledgerPath = cfg.Ledger
			}

			opts.log = logger.New(opts.verbose)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.ledgerPath, "ledger", "l", "", "path to ledger file or directory")
	rootCmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(newAccountsCommand(opts))
	rootCmd.AddCommand(newBalancesCommand(opts))
	rootCmd.AddCommand(newJournalCommand(opts))
	rootCmd.AddCommand(newImportCommand(opts))

	return rootCmd
}

// requireLedgerPath returns the resolved ledger path or an instructive error.
func (o *options) requireLedgerPath() (string, error) {
	if o.ledgerPath == "" {
		return "", errors.New("no ledger given: use --ledger, " + ledgerEnvVar + ", or the ledger key in " + config.FileName)
	}
	return o.ledgerPath, nil
}

// loadLedger reads and parses the configured ledger.
func (o *options) loadLedger() (*ledger.Ledger, error) {
	path, err := o.requireLedgerPath()
	if err != nil {
		return nil, err
	}
	doc, err := ledgerfile.Read(path)
	if err != nil {
		return nil, err
	}
	l, err := ledger.Load(doc)
	if err != nil {
		return nil, err
	}
	o.log.Debug().
		Int("accounts", len(l.Accounts())).
		Int("transactions", len(l.Transactions())).
		Int("prices", len(l.Prices())).
		Str("ledger", path).
		Msg("loaded ledger")
	return l, nil
}

// parseDateFlag parses an optional YYYY-MM-DD flag value; empty means an
// open-ended bound.
func parseDateFlag(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(flagDateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s date %q (want %s)", name, value, flagDateFormat)
	}
	return t, nil
}
