// Package ledger is the aggregation and reporting engine: it loads declared
// accounts, two-legged transactions and commodity prices from a structured
// document, validates double-entry consistency, and computes balances with
// date filtering, period grouping and optional re-pricing.
package ledger

import (
	"sort"
	"time"

	"github.com/tally-dev/tally/internal/model"
)

// MaxDate is the far-future sentinel for open-ended date ranges. The
// lower bound uses the zero time.Time.
var MaxDate = time.Date(2999, time.January, 1, 0, 0, 0, 0, time.UTC)

// Ledger owns the three entity collections, loaded once and read-only
// thereafter. Reporting operates on copied views, never in place.
type Ledger struct {
	accounts     []model.Account
	transactions []model.Transaction
	prices       []model.Price

	byName map[string]model.Account // first declaration wins
}

// New builds a Ledger from already-typed collections.
func New(accounts []model.Account, transactions []model.Transaction, prices []model.Price) *Ledger {
	byName := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		if _, ok := byName[a.Name]; !ok {
			byName[a.Name] = a
		}
	}
	return &Ledger{
		accounts:     accounts,
		transactions: transactions,
		prices:       prices,
		byName:       byName,
	}
}

// Accounts returns the declared accounts in declaration order.
func (l *Ledger) Accounts() []model.Account {
	return l.accounts
}

// Transactions returns the transactions in declaration order.
func (l *Ledger) Transactions() []model.Transaction {
	return l.transactions
}

// Prices returns the declared commodity prices.
func (l *Ledger) Prices() []model.Price {
	return l.prices
}

// Account returns the first-declared account with the given name.
func (l *Ledger) Account(name string) (model.Account, bool) {
	a, ok := l.byName[name]
	return a, ok
}

// TransactionsByDate returns a date-ascending sorted copy of the
// transactions. The owned collection is left untouched.
func (l *Ledger) TransactionsByDate() []model.Transaction {
	sorted := make([]model.Transaction, len(l.transactions))
	copy(sorted, l.transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// AccountsByTypeOrder returns a copy of accounts stably sorted by account
// type, preserving declaration order within each type.
func (l *Ledger) AccountsByTypeOrder() []model.Account {
	sorted := make([]model.Account, len(l.accounts))
	copy(sorted, l.accounts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Type < sorted[j].Type
	})
	return sorted
}
