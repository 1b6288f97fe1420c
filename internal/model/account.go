package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies declared accounts.
type AccountType string

const (
	TypeAssets      AccountType = "Assets"
	TypeIncome      AccountType = "Income"
	TypeLiabilities AccountType = "Liabilities"
	TypeExpenses    AccountType = "Expenses"
	TypeEquity      AccountType = "Equity"
	TypeStocks      AccountType = "Stocks"
	TypeMutualFunds AccountType = "MutualFunds"
	TypeHoldings    AccountType = "Holdings"
	TypeCash        AccountType = "Cash"
	TypeUnknown     AccountType = "Unknown"
)

// ParseAccountType maps a type string to an AccountType. Unrecognized
// strings map to TypeUnknown; this never fails.
func ParseAccountType(s string) AccountType {
	switch s {
	case "Assets":
		return TypeAssets
	case "Income":
		return TypeIncome
	case "Liabilities":
		return TypeLiabilities
	case "Expenses":
		return TypeExpenses
	case "Equity":
		return TypeEquity
	case "Stocks":
		return TypeStocks
	case "MutualFunds":
		return TypeMutualFunds
	case "Holdings":
		return TypeHoldings
	case "Cash":
		return TypeCash
	default:
		return TypeUnknown
	}
}

// Account is a declared account in the ledger document.
type Account struct {
	Name           string
	Open           time.Time
	Currency       string
	Type           AccountType
	OpeningBalance decimal.Decimal
	HasOpening     bool
}

// NewAccount builds an Account with quote-stripped name and currency.
func NewAccount(name string, open time.Time, currency string, accountType AccountType) Account {
	return Account{
		Name:     StripQuotes(name),
		Open:     open,
		Currency: StripQuotes(currency),
		Type:     accountType,
	}
}

// StripQuotes removes double quotes carried over from document values.
// Idempotent: stripping twice equals stripping once.
func StripQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, "")
}
