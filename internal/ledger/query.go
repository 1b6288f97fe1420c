package ledger

import (
	"time"

	"github.com/tally-dev/tally/internal/model"
)

// AccountsByName returns the accounts whose name matches exactly.
func (l *Ledger) AccountsByName(name string) []model.Account {
	return filterAccounts(l.accounts, func(a model.Account) bool {
		return a.Name == name
	})
}

// AccountsByType returns the accounts of the given type. The type string
// is parsed leniently: an unrecognized string matches only Unknown-typed
// accounts, mirroring the loader.
func (l *Ledger) AccountsByType(typeName string) []model.Account {
	accountType := model.ParseAccountType(typeName)
	return filterAccounts(l.accounts, func(a model.Account) bool {
		return a.Type == accountType
	})
}

// AccountsByCurrency returns the accounts denominated in the currency.
func (l *Ledger) AccountsByCurrency(currency string) []model.Account {
	return filterAccounts(l.accounts, func(a model.Account) bool {
		return a.Currency == currency
	})
}

// TransactionsByPayee returns the transactions with an exactly matching
// payee. Transactions without a payee never match.
func (l *Ledger) TransactionsByPayee(payee string) []model.Transaction {
	return filterTransactions(l.transactions, func(t model.Transaction) bool {
		return t.Payee != "" && t.Payee == payee
	})
}

// TransactionsBetween returns the transactions dated within [from, to],
// inclusive. Zero from means MinDate; zero to means MaxDate, so a single
// bound behaves as an open-ended range.
func (l *Ledger) TransactionsBetween(from, to time.Time) []model.Transaction {
	return FilterBetween(l.transactions, from, to)
}

// FilterBetween applies the inclusive [from, to] date filter to an
// already-selected transaction view.
func FilterBetween(transactions []model.Transaction, from, to time.Time) []model.Transaction {
	if to.IsZero() {
		to = MaxDate
	}
	return filterTransactions(transactions, func(t model.Transaction) bool {
		return !t.Date.Before(from) && !t.Date.After(to)
	})
}

func filterAccounts(accounts []model.Account, keep func(model.Account) bool) []model.Account {
	var out []model.Account
	for _, a := range accounts {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

func filterTransactions(transactions []model.Transaction, keep func(model.Transaction) bool) []model.Transaction {
	var out []model.Transaction
	for _, t := range transactions {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
