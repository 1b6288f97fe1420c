// Package render writes report rows to a console sink as aligned plain
// text tables.
package render

import (
	"fmt"
	"io"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/report"
)

const dateFormat = "2006-01-02"

// Amount formats a balance in the display conventions of its currency.
// Codes outside the ISO table (tickers, commodities) fall back to two
// fraction digits with the code as symbol.
func Amount(v decimal.Decimal, code string) string {
	fraction := 2
	if c := money.GetCurrency(code); c != nil {
		fraction = c.Fraction
	}
	minor := v.Shift(int32(fraction)).Round(0).IntPart()
	return money.New(minor, code).Display()
}

// Accounts writes one row per declared account, column-aligned by the
// longest account name.
func Accounts(w io.Writer, rows []report.AccountRow) {
	nameWidth := 0
	for _, r := range rows {
		if len(r.Name) > nameWidth {
			nameWidth = len(r.Name)
		}
	}
	for _, r := range rows {
		fmt.Fprintf(w, "| %s | %-11s | %-*s | %s\n",
			r.Open.Format(dateFormat), r.Type, nameWidth, r.Name, r.Currency)
	}
}

// Balances writes the period-major balance table: a header column per
// period (most recent first) and account rows grouped by type.
func Balances(w io.Writer, table *report.BalanceTable) {
	nameWidth := 15
	for _, g := range table.Groups {
		for _, r := range g.Rows {
			if len(r.Account) > nameWidth {
				nameWidth = len(r.Account)
			}
		}
	}

	fmt.Fprintf(w, "\t%-*s", nameWidth, "Accounts")
	for _, p := range table.Periods {
		fmt.Fprintf(w, "\t%11d-%d", p.Year, p.Sub)
	}
	fmt.Fprintln(w)

	for _, g := range table.Groups {
		fmt.Fprintf(w, "%-11s\n", g.Type)
		for _, r := range g.Rows {
			fmt.Fprintf(w, "\t%-*s", nameWidth, r.Account)
			for _, cell := range r.Cells {
				fmt.Fprintf(w, "\t%15s", Amount(cell, r.Currency))
			}
			fmt.Fprintln(w)
		}
	}
}

// Journal writes each posting as a two-line record: the primary leg, then
// the offset leg.
func Journal(w io.Writer, entries []report.JournalEntry) {
	nameWidth := 0
	for _, e := range entries {
		if len(e.Account) > nameWidth {
			nameWidth = len(e.Account)
		}
		if len(e.OffsetAccount) > nameWidth {
			nameWidth = len(e.OffsetAccount)
		}
	}

	for _, e := range entries {
		trailer := e.Payee
		if e.Note != "" && trailer != "" {
			trailer += " - " + e.Note
		} else if e.Note != "" {
			trailer = e.Note
		}
		fmt.Fprintf(w, "%s | %-*s | %11.2f | %s\n",
			e.Date.Format(dateFormat), nameWidth, e.Account, amountFloat(e.Amount), trailer)
		fmt.Fprintf(w, "%s | %-*s | %11.2f |\n",
			e.Date.Format(dateFormat), nameWidth, e.OffsetAccount, amountFloat(e.OffsetAmount))
	}
}

func amountFloat(v decimal.Decimal) float64 {
	f, _ := v.Float64()
	return f
}
