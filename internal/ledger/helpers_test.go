package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func account(name, currency string, accountType model.AccountType) model.Account {
	return model.NewAccount(name, day(2023, time.January, 1), currency, accountType)
}

func accountWithOpening(name, currency string, accountType model.AccountType, opening string) model.Account {
	a := account(name, currency, accountType)
	a.OpeningBalance = dec(opening)
	a.HasOpening = true
	return a
}

func transaction(date time.Time, from string, amount string, to string) model.Transaction {
	amt := dec(amount)
	return model.Transaction{
		Date:          date,
		Account:       from,
		Quantity:      decimal.NewFromInt(1),
		Amount:        amt,
		OffsetAccount: to,
		OffsetAmount:  amt.Neg(),
	}
}
