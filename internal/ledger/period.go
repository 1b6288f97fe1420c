package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// Unit is a period grouping unit for balance reports.
type Unit int

const (
	UnitNone Unit = iota
	UnitMonth
	UnitQuarter
	UnitYear
)

// ParseUnit maps a grouping string to a Unit. Unrecognized strings map to
// UnitNone, mirroring the loader's leniency for account types.
func ParseUnit(s string) Unit {
	switch strings.ToLower(s) {
	case "m", "month":
		return UnitMonth
	case "q", "quarter":
		return UnitQuarter
	case "y", "year":
		return UnitYear
	default:
		return UnitNone
	}
}

// Period is a (year, sub-period) bucket key. For monthly grouping Sub is
// the month 1-12, for quarterly 1-4, for yearly the year itself, and for
// ungrouped reports the single bucket is (0, 0).
type Period struct {
	Year int
	Sub  int
}

// PeriodOf derives the bucket key for a date under a grouping unit.
func PeriodOf(date time.Time, unit Unit) Period {
	switch unit {
	case UnitMonth:
		return Period{Year: date.Year(), Sub: int(date.Month())}
	case UnitQuarter:
		return Period{Year: date.Year(), Sub: Quarter(date.Month())}
	case UnitYear:
		return Period{Year: date.Year(), Sub: date.Year()}
	default:
		return Period{}
	}
}

// Quarter maps a month to its calendar quarter 1-4.
func Quarter(month time.Month) int {
	return (int(month)-1)/3 + 1
}

// GroupByPeriod buckets the transaction view by period key and runs the
// balance aggregation per bucket. Opening balances are re-seeded into
// every bucket so each period's report stands on its own; entries that
// aggregate to exactly zero are dropped from their bucket.
func (l *Ledger) GroupByPeriod(transactions []model.Transaction, unit Unit, priceIn string) map[Period]map[string]decimal.Decimal {
	buckets := make(map[Period][]model.Transaction)
	for _, t := range transactions {
		key := PeriodOf(t.Date, unit)
		buckets[key] = append(buckets[key], t)
	}

	balancesByPeriod := make(map[Period]map[string]decimal.Decimal, len(buckets))
	for period, bucket := range buckets {
		balances := l.Balances(bucket, priceIn)
		for name, value := range balances {
			if value.IsZero() {
				delete(balances, name)
			}
		}
		balancesByPeriod[period] = balances
	}
	return balancesByPeriod
}
