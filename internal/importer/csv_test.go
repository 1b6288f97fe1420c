package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/logger"
)

func TestParse_NormalizesRows(t *testing.T) {
	csvData := strings.Join([]string{
		"date,account,payee,quantity,amount,offset_account,offset_amount",
		`15/10/2023,Dining,Pizza Place,3,-20.50,Wallet,99.0`,
	}, "\n")

	records, err := Parse(strings.NewReader(csvData), DefaultDateFormat)
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "2023-10-15", r.Date)
	assert.Equal(t, "Dining", r.Account)
	assert.Equal(t, "Pizza Place", r.Payee)
	// Amount is normalized to its absolute value and the offset is forced
	// to its exact negation; quantity and offset_amount inputs are discarded.
	assert.True(t, r.Amount.Equal(decimal.RequireFromString("20.50")), "got %s", r.Amount)
	assert.True(t, r.OffsetAmount.Equal(decimal.RequireFromString("-20.50")), "got %s", r.OffsetAmount)
	assert.Equal(t, "Wallet", r.OffsetAccount)
}

func TestParse_CustomDateFormat(t *testing.T) {
	csvData := "date,account,amount\n10/15/2023,Dining,12.00\n"

	records, err := Parse(strings.NewReader(csvData), "01/02/2006")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2023-10-15", records[0].Date)
}

func TestParse_BadDateFails(t *testing.T) {
	csvData := "date,account,amount\n2023-15-99,Dining,12.00\n"

	_, err := Parse(strings.NewReader(csvData), DefaultDateFormat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing date")
}

func TestParse_MissingRequiredColumn(t *testing.T) {
	csvData := "date,payee\n15/10/2023,Pizza Place\n"

	_, err := Parse(strings.NewReader(csvData), DefaultDateFormat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing column "account"`)
}

func TestParse_Empty(t *testing.T) {
	records, err := Parse(strings.NewReader(""), DefaultDateFormat)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAppend_WritesTransactionBlocks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[account]]\nname = \"Dining\"\nopen = 2023-01-01\ntype = \"Expenses\"\ncurrency = \"USD\"\n"), 0o644))

	records := []Record{{
		Date:          "2023-10-15",
		Account:       "Dining",
		Amount:        Amount{decimal.RequireFromString("20.5")},
		OffsetAccount: "Wallet",
		OffsetAmount:  Amount{decimal.RequireFromString("-20.5")},
	}}
	require.NoError(t, Append(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[[transaction]]")
	assert.Contains(t, string(data), `account = "Dining"`)

	// The appended document still loads as a valid ledger.
	l, err := ledger.Load(string(data))
	require.NoError(t, err)
	require.Len(t, l.Transactions(), 1)
	txn := l.Transactions()[0]
	assert.Equal(t, "Dining", txn.Account)
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("20.5")))
	assert.True(t, txn.OffsetAmount.Equal(txn.Amount.Neg()))
}

func TestAppend_AlwaysWritesOffsetAccount(t *testing.T) {
	// A record without an offset account still emits the field; the
	// loader requires it on the next load.
	path := filepath.Join(t.TempDir(), "ledger.toml")

	records := []Record{{
		Date:         "2023-10-15",
		Account:      "Dining",
		Amount:       Amount{decimal.RequireFromString("7.00")},
		OffsetAmount: Amount{decimal.RequireFromString("-7.00")},
	}}
	require.NoError(t, Append(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `offset_account = ""`)

	l, err := ledger.Load(string(data))
	require.NoError(t, err)
	require.Len(t, l.Transactions(), 1)
	assert.Empty(t, l.Transactions()[0].OffsetAccount)
}

func TestImport_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "bank.csv")
	ledgerPath := filepath.Join(dir, "ledger.toml")

	csvData := strings.Join([]string{
		"date,account,payee,amount",
		"10/10/2023,Dining,Pizza Place,-20.00",
		"11/10/2023,Dining,Cafe,-5.25",
	}, "\n")
	require.NoError(t, os.WriteFile(csvPath, []byte(csvData), 0o644))

	log := logger.NewWithWriter(os.Stderr, false)
	count, err := Import(csvPath, ledgerPath, Options{}, log)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	data, err := os.ReadFile(ledgerPath)
	require.NoError(t, err)
	l, err := ledger.Load(string(data))
	require.NoError(t, err)
	require.Len(t, l.Transactions(), 2)
	assert.Equal(t, "Pizza Place", l.Transactions()[0].Payee)
	// Digits survive the round trip exactly.
	assert.True(t, l.Transactions()[1].Amount.Equal(decimal.RequireFromString("5.25")))
	assert.True(t, l.Transactions()[1].OffsetAmount.Equal(decimal.RequireFromString("-5.25")))
}

func TestImport_DirectoryLedgerUsesImportMember(t *testing.T) {
	dir := t.TempDir()
	ledgerDir := filepath.Join(dir, "books")
	require.NoError(t, os.Mkdir(ledgerDir, 0o755))
	csvPath := filepath.Join(dir, "bank.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("date,account,amount\n10/10/2023,Dining,7.00\n"), 0o644))

	log := logger.NewWithWriter(os.Stderr, false)
	count, err := Import(csvPath, ledgerDir, Options{}, log)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = os.Stat(filepath.Join(ledgerDir, "imported.toml"))
	assert.NoError(t, err)
}
