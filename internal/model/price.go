package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Price is a point-in-time exchange rate for a commodity quoted in a
// currency, usable for re-pricing balances.
type Price struct {
	Date      time.Time
	Commodity string
	Price     decimal.Decimal
	Currency  string
}

// NewPrice builds a Price with quote-stripped commodity and currency codes.
func NewPrice(date time.Time, commodity string, price decimal.Decimal, currency string) Price {
	return Price{
		Date:      date,
		Commodity: StripQuotes(commodity),
		Price:     price,
		Currency:  StripQuotes(currency),
	}
}
