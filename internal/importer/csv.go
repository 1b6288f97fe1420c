// Package importer converts bank CSV exports into transaction records and
// appends them to the ledger document. Imported records are not validated;
// they are checked like any other record on the next report.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/ledgerfile"
)

// DefaultDateFormat is the day/month/year layout used when the caller does
// not supply one.
const DefaultDateFormat = "02/01/2006"

const isoDateFormat = "2006-01-02"

// Record is one imported transaction, shaped exactly like a document
// transaction record. Dates are serialized as ISO-8601 strings.
// offset_account is always written, even when the CSV had none: the
// loader requires the field, and an empty name keeps the record loadable
// while staying exempt from the balance check.
type Record struct {
	Date          string `toml:"date"`
	Account       string `toml:"account"`
	Payee         string `toml:"payee,omitempty"`
	Amount        Amount `toml:"amount"`
	OffsetAccount string `toml:"offset_account"`
	OffsetAmount  Amount `toml:"offset_amount"`
}

// Amount serializes a decimal as a bare TOML number, keeping the exact
// digits instead of routing through a float.
type Amount struct {
	decimal.Decimal
}

// MarshalTOML writes the decimal's digits as an unquoted TOML value.
func (a Amount) MarshalTOML() ([]byte, error) {
	return []byte(a.String()), nil
}

// Options controls the import normalization.
type Options struct {
	DateFormat string // Go reference layout; empty = DefaultDateFormat
}

// Import reads a CSV file and appends its rows to the ledger at
// ledgerPath (the import member file for directory ledgers). Returns the
// number of imported records.
func Import(csvPath, ledgerPath string, opts Options, log zerolog.Logger) (int, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return 0, fmt.Errorf("opening csv %s: %w", csvPath, err)
	}
	defer f.Close()

	format := opts.DateFormat
	if format == "" {
		format = DefaultDateFormat
	}

	records, err := Parse(f, format)
	if err != nil {
		return 0, fmt.Errorf("parsing csv %s: %w", csvPath, err)
	}

	target, err := ledgerfile.AppendTarget(ledgerPath)
	if err != nil {
		return 0, err
	}
	if err := Append(target, records); err != nil {
		return 0, err
	}

	for _, r := range records {
		log.Info().
			Str("date", r.Date).
			Str("account", r.Account).
			Str("amount", r.Amount.String()).
			Msg("imported transaction")
	}
	return len(records), nil
}

// Parse reads header-addressed CSV rows with columns date, account,
// payee?, quantity?, amount, offset_account?, offset_amount? and
// normalizes them: amount becomes its absolute value, quantity is
// discarded, and offset_amount is forced to -amount.
func Parse(r io.Reader, dateFormat string) ([]Record, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"date", "account", "amount"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("csv header: missing column %q", required)
		}
	}

	var records []Record
	for row := 1; ; row++ {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		date, err := time.Parse(dateFormat, field(fields, cols, "date"))
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing date %q: %w", row, field(fields, cols, "date"), err)
		}
		amount, err := decimal.NewFromString(field(fields, cols, "amount"))
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing amount %q: %w", row, field(fields, cols, "amount"), err)
		}
		amount = amount.Abs()

		records = append(records, Record{
			Date:          date.Format(isoDateFormat),
			Account:       field(fields, cols, "account"),
			Payee:         field(fields, cols, "payee"),
			Amount:        Amount{amount},
			OffsetAccount: field(fields, cols, "offset_account"),
			OffsetAmount:  Amount{amount.Neg()},
		})
	}
	return records, nil
}

// Append writes records to the end of a ledger document as transaction
// blocks, creating the file when absent.
func Append(path string, records []Record) error {
	if len(records) == 0 {
		return nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening ledger %s: %w", path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f); err != nil {
		return fmt.Errorf("appending to ledger %s: %w", path, err)
	}

	doc := struct {
		Transaction []Record `toml:"transaction"`
	}{Transaction: records}
	if err := toml.NewEncoder(f).Encode(doc); err != nil {
		return fmt.Errorf("appending to ledger %s: %w", path, err)
	}
	return nil
}

func field(fields []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}
