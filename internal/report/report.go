// Package report composes validation, filtering, grouping and aggregation
// into the three ledger report operations. Reports are returned as
// structured rows; rendering is a separate concern.
package report

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/model"
)

// AccountRow is one line of the account listing.
type AccountRow struct {
	Open     time.Time
	Type     model.AccountType
	Name     string
	Currency string
}

// Accounts lists the declared accounts in declaration order.
func Accounts(l *ledger.Ledger) []AccountRow {
	rows := make([]AccountRow, 0, len(l.Accounts()))
	for _, a := range l.Accounts() {
		rows = append(rows, AccountRow{
			Open:     a.Open,
			Type:     a.Type,
			Name:     a.Name,
			Currency: a.Currency,
		})
	}
	return rows
}

// BalanceOptions selects and shapes a balance report.
type BalanceOptions struct {
	From    time.Time // zero = open-ended
	To      time.Time // zero = open-ended
	Types   []string  // union across requested types; empty = all
	PriceIn string    // target currency; empty = native
	Group   ledger.Unit
}

// BalanceTable is a period-major balance report: one column per period
// (most recent first), account rows grouped by account type.
type BalanceTable struct {
	Periods []ledger.Period
	Groups  []BalanceGroup
}

// BalanceGroup holds the rows of one account type.
type BalanceGroup struct {
	Type model.AccountType
	Rows []BalanceRow
}

// BalanceRow is one account's balance per period column. Currency is the
// account's native currency, or the target currency when re-priced.
type BalanceRow struct {
	Account  string
	Currency string
	Cells    []decimal.Decimal
}

// Balances validates the ledger and produces the balance table.
func Balances(l *ledger.Ledger, opts BalanceOptions) (*BalanceTable, error) {
	if err := validate(l); err != nil {
		return nil, err
	}

	transactions := ledger.FilterBetween(l.TransactionsByDate(), opts.From, opts.To)
	balancesByPeriod := l.GroupByPeriod(transactions, opts.Group, opts.PriceIn)

	periods := make([]ledger.Period, 0, len(balancesByPeriod))
	for p := range balancesByPeriod {
		periods = append(periods, p)
	}
	sort.Slice(periods, func(i, j int) bool {
		if periods[i].Year != periods[j].Year {
			return periods[i].Year > periods[j].Year
		}
		return periods[i].Sub > periods[j].Sub
	})

	// Accounts that carry a balance in at least one period.
	withBalance := make(map[string]bool)
	for _, balances := range balancesByPeriod {
		for name := range balances {
			withBalance[name] = true
		}
	}

	table := &BalanceTable{Periods: periods}
	for _, a := range selectAccounts(l, opts.Types) {
		if !withBalance[a.Name] {
			continue
		}
		currency := a.Currency
		if opts.PriceIn != "" {
			currency = opts.PriceIn
		}
		row := BalanceRow{Account: a.Name, Currency: currency}
		for _, p := range periods {
			row.Cells = append(row.Cells, balancesByPeriod[p][a.Name])
		}

		if n := len(table.Groups); n == 0 || table.Groups[n-1].Type != a.Type {
			table.Groups = append(table.Groups, BalanceGroup{Type: a.Type})
		}
		group := &table.Groups[len(table.Groups)-1]
		group.Rows = append(group.Rows, row)
	}
	return table, nil
}

// selectAccounts returns the type-sorted account view for a balance
// report, restricted to the union of the requested types when any.
func selectAccounts(l *ledger.Ledger, types []string) []model.Account {
	accounts := l.AccountsByTypeOrder()
	if len(types) == 0 {
		return accounts
	}
	want := make(map[model.AccountType]bool, len(types))
	for _, t := range types {
		want[model.ParseAccountType(t)] = true
	}
	var out []model.Account
	for _, a := range accounts {
		if want[a.Type] {
			out = append(out, a)
		}
	}
	return out
}

// JournalOptions selects a journal report.
type JournalOptions struct {
	From    time.Time
	To      time.Time
	Type    string // account type filter
	Account string // account name filter
	Payee   string
}

// JournalEntry is one two-legged posting in date order.
type JournalEntry struct {
	Date          time.Time
	Account       string
	Amount        decimal.Decimal
	Payee         string
	OffsetAccount string
	OffsetAmount  decimal.Decimal
	Note          string
}

// Journal validates the ledger and produces the posting sequence, sorted
// by date ascending. A transaction survives the account filters when
// either of its legs names a surviving account.
func Journal(l *ledger.Ledger, opts JournalOptions) ([]JournalEntry, error) {
	if err := validate(l); err != nil {
		return nil, err
	}

	transactions := ledger.FilterBetween(l.TransactionsByDate(), opts.From, opts.To)
	if opts.Payee != "" {
		kept := transactions[:0:0]
		for _, t := range transactions {
			if t.Payee != "" && t.Payee == opts.Payee {
				kept = append(kept, t)
			}
		}
		transactions = kept
	}

	accounts := l.Accounts()
	if opts.Type != "" {
		accountType := model.ParseAccountType(opts.Type)
		accounts = filterByType(accounts, accountType)
	}
	if opts.Account != "" {
		kept := accounts[:0:0]
		for _, a := range accounts {
			if a.Name == opts.Account {
				kept = append(kept, a)
			}
		}
		accounts = kept
	}
	names := make(map[string]bool, len(accounts))
	for _, a := range accounts {
		names[a.Name] = true
	}

	var entries []JournalEntry
	for _, t := range transactions {
		if !names[t.Account] && !names[t.OffsetAccount] {
			continue
		}
		entries = append(entries, JournalEntry{
			Date:          t.Date,
			Account:       t.Account,
			Amount:        t.Amount,
			Payee:         t.Payee,
			OffsetAccount: t.OffsetAccount,
			OffsetAmount:  t.OffsetAmount,
			Note:          t.Note,
		})
	}
	return entries, nil
}

func filterByType(accounts []model.Account, accountType model.AccountType) []model.Account {
	var out []model.Account
	for _, a := range accounts {
		if a.Type == accountType {
			out = append(out, a)
		}
	}
	return out
}

// validate runs the cross-record checks and folds violations into a
// single fatal error. No report rows are produced past a violation.
func validate(l *ledger.Ledger) error {
	errs := l.Validate()
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("validation failed: %w", errors.Join(errs...))
}
