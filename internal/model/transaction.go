package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a two-legged posting: a primary leg (Account, Amount
// scaled by Quantity) and an offset leg (OffsetAccount, OffsetAmount).
type Transaction struct {
	Date          time.Time
	Account       string
	Payee         string // empty = none
	Quantity      decimal.Decimal
	Amount        decimal.Decimal
	OffsetAccount string
	OffsetAmount  decimal.Decimal
	Note          string // empty = none
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s * %s - %s\n%s: %s qty: %s\n%s: %s",
		t.Date.Format("2006-01-02"), t.Payee, t.Note,
		t.Account, t.Amount, t.Quantity,
		t.OffsetAccount, t.OffsetAmount)
}
