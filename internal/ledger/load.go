package ledger

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// Record kinds, used in loader error messages.
const (
	kindAccount     = "account"
	kindTransaction = "transaction"
	kindPrice       = "price"
)

// isoDateFormat is the string form of dates inside ledger documents.
const isoDateFormat = "2006-01-02"

// document is the raw shape of a parsed ledger document: three optional
// arrays of key/value records. Field-level validation happens in the
// loader, not in the TOML decoder, so that error kinds stay precise.
type document struct {
	Accounts     []map[string]any `toml:"account"`
	Transactions []map[string]any `toml:"transaction"`
	Prices       []map[string]any `toml:"price"`
}

// Load parses a ledger document and builds the typed entity collections.
// Any missing required field, malformed date, or mistyped value is fatal.
func Load(doc string) (*Ledger, error) {
	var parsed document
	if _, err := toml.Decode(doc, &parsed); err != nil {
		return nil, fmt.Errorf("parsing ledger document: %w", err)
	}

	accounts, err := loadAccounts(parsed.Accounts)
	if err != nil {
		return nil, err
	}
	transactions, err := loadTransactions(parsed.Transactions)
	if err != nil {
		return nil, err
	}
	prices, err := loadPrices(parsed.Prices)
	if err != nil {
		return nil, err
	}

	return New(accounts, transactions, prices), nil
}

func loadAccounts(records []map[string]any) ([]model.Account, error) {
	var accounts []model.Account
	for _, rec := range records {
		name, err := stringField(kindAccount, rec, "name")
		if err != nil {
			return nil, err
		}
		open, err := dateField(kindAccount, rec, "open")
		if err != nil {
			return nil, err
		}
		currency, err := stringField(kindAccount, rec, "currency")
		if err != nil {
			return nil, err
		}
		typeName, err := stringField(kindAccount, rec, "type")
		if err != nil {
			return nil, err
		}

		account := model.NewAccount(name, open, currency, model.ParseAccountType(typeName))
		opening, ok, err := optionalNumber(kindAccount, rec, "opening_balance")
		if err != nil {
			return nil, err
		}
		account.OpeningBalance = opening
		account.HasOpening = ok

		accounts = append(accounts, account)
	}
	return accounts, nil
}

func loadTransactions(records []map[string]any) ([]model.Transaction, error) {
	var transactions []model.Transaction
	for _, rec := range records {
		account, err := stringField(kindTransaction, rec, "account")
		if err != nil {
			return nil, err
		}
		date, err := dateField(kindTransaction, rec, "date")
		if err != nil {
			return nil, err
		}
		amount, err := numberField(kindTransaction, rec, "amount")
		if err != nil {
			return nil, err
		}
		offsetAccount, err := stringField(kindTransaction, rec, "offset_account")
		if err != nil {
			return nil, err
		}
		payee, err := optionalString(kindTransaction, rec, "payee")
		if err != nil {
			return nil, err
		}
		note, err := optionalString(kindTransaction, rec, "note")
		if err != nil {
			return nil, err
		}

		quantity, ok, err := optionalNumber(kindTransaction, rec, "quantity")
		if err != nil {
			return nil, err
		}
		if !ok {
			quantity = decimal.NewFromInt(1)
		}
		offsetAmount, ok, err := optionalNumber(kindTransaction, rec, "offset_amount")
		if err != nil {
			return nil, err
		}
		if !ok {
			offsetAmount = amount.Neg()
		}

		transactions = append(transactions, model.Transaction{
			Date:          date,
			Account:       model.StripQuotes(account),
			Payee:         payee,
			Quantity:      quantity,
			Amount:        amount,
			OffsetAccount: model.StripQuotes(offsetAccount),
			OffsetAmount:  offsetAmount,
			Note:          note,
		})
	}
	return transactions, nil
}

func loadPrices(records []map[string]any) ([]model.Price, error) {
	var prices []model.Price
	for _, rec := range records {
		date, err := dateField(kindPrice, rec, "date")
		if err != nil {
			return nil, err
		}
		commodity, err := stringField(kindPrice, rec, "commodity")
		if err != nil {
			return nil, err
		}
		rate, err := numberField(kindPrice, rec, "price")
		if err != nil {
			return nil, err
		}
		currency, err := stringField(kindPrice, rec, "currency")
		if err != nil {
			return nil, err
		}
		prices = append(prices, model.NewPrice(date, commodity, rate, currency))
	}
	return prices, nil
}

func stringField(kind string, rec map[string]any, key string) (string, error) {
	v, ok := rec[key]
	if !ok {
		return "", &MissingFieldError{Kind: kind, Field: key}
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeMismatchError{Kind: kind, Field: key, Value: v}
	}
	return s, nil
}

func optionalString(kind string, rec map[string]any, key string) (string, error) {
	v, ok := rec[key]
	if !ok {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeMismatchError{Kind: kind, Field: key, Value: v}
	}
	return s, nil
}

func numberField(kind string, rec map[string]any, key string) (decimal.Decimal, error) {
	v, ok := rec[key]
	if !ok {
		return decimal.Zero, &MissingFieldError{Kind: kind, Field: key}
	}
	return coerceNumber(kind, key, v)
}

func optionalNumber(kind string, rec map[string]any, key string) (decimal.Decimal, bool, error) {
	v, ok := rec[key]
	if !ok {
		return decimal.Zero, false, nil
	}
	d, err := coerceNumber(kind, key, v)
	if err != nil {
		return decimal.Zero, false, err
	}
	return d, true, nil
}

// coerceNumber accepts integer or float document values for monetary
// fields. Anything else is a TypeMismatchError.
func coerceNumber(kind, key string, v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case int64:
		return decimal.NewFromInt(n), nil
	case float64:
		return decimal.NewFromFloat(n), nil
	default:
		return decimal.Zero, &TypeMismatchError{Kind: kind, Field: key, Value: v}
	}
}

// dateField accepts a native document date or an ISO-8601 string (the
// import path writes string dates). The result is normalized to midnight
// UTC so date comparisons are location-independent.
func dateField(kind string, rec map[string]any, key string) (time.Time, error) {
	v, ok := rec[key]
	if !ok {
		return time.Time{}, &MissingFieldError{Kind: kind, Field: key}
	}
	switch d := v.(type) {
	case time.Time:
		return midnightUTC(d), nil
	case string:
		t, err := time.Parse(isoDateFormat, d)
		if err != nil {
			return time.Time{}, &InvalidDateError{Kind: kind, Field: key, Value: v}
		}
		return midnightUTC(t), nil
	default:
		return time.Time{}, &InvalidDateError{Kind: kind, Field: key, Value: v}
	}
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
