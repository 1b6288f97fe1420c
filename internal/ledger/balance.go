package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// Balances accumulates signed balances per account name over the given
// transaction view.
//
// Every declared account is seeded with its opening balance (zero when
// absent). Each transaction then adds amount*quantity to its primary leg
// and offset_amount to its offset leg; the quantity multiplier applies to
// the primary leg only.
//
// When priceIn is non-empty, each account whose currency has a declared
// price quoted in priceIn is re-priced by the most recent such rate.
// Accounts without a matching price keep their native balance; that is a
// gap, not an error. Zero entries are not pruned here.
func (l *Ledger) Balances(transactions []model.Transaction, priceIn string) map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal)
	for _, a := range l.accounts {
		balances[a.Name] = balances[a.Name].Add(a.OpeningBalance)
	}

	for _, t := range transactions {
		balances[t.Account] = balances[t.Account].Add(t.Amount.Mul(t.Quantity))
		balances[t.OffsetAccount] = balances[t.OffsetAccount].Add(t.OffsetAmount)
	}

	if priceIn != "" {
		rates := l.latestRates(priceIn)
		// Distinct names only: duplicate declarations alias into one
		// balance entry and must be re-priced once, not per declaration.
		for name, a := range l.byName {
			if rate, ok := rates[a.Currency]; ok {
				balances[name] = balances[name].Mul(rate)
			}
		}
	}
	return balances
}

// latestRates returns the most recent rate per commodity among prices
// quoted in the given currency.
func (l *Ledger) latestRates(currency string) map[string]decimal.Decimal {
	var quoted []model.Price
	for _, p := range l.prices {
		if p.Currency == currency {
			quoted = append(quoted, p)
		}
	}
	sort.SliceStable(quoted, func(i, j int) bool {
		return quoted[i].Date.After(quoted[j].Date)
	})

	rates := make(map[string]decimal.Decimal, len(quoted))
	for _, p := range quoted {
		if _, ok := rates[p.Commodity]; !ok {
			rates[p.Commodity] = p.Price
		}
	}
	return rates
}
