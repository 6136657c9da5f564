package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// RowKind is the display kind of a ledger row: an entry type or the
// synthetic EXPENSE kind for merged expenses.
type RowKind string

const RowExpense RowKind = "EXPENSE"

// LedgerRow is one line of the chronological, running-balance view.
type LedgerRow struct {
	Date            time.Time
	ID              string
	Kind            RowKind
	Description     string
	RegisterChange  decimal.Decimal
	DepositChange   decimal.Decimal
	RegisterBalance decimal.Decimal
	DepositBalance  decimal.Decimal
	Seq             int64
}

// BuildLedger merges entries and expenses into one timeline ordered by
// (date, seq) and walks it, accumulating running balances from the
// baseline. An empty input yields an empty ledger; callers must not assume
// at least one row.
func BuildLedger(start Balance, entries []*CashEntry, expenses []*Expense) []LedgerRow {
	rows := make([]LedgerRow, 0, len(entries)+len(expenses))

	for _, e := range entries {
		dr, dd := EntryDelta(e)
		rows = append(rows, LedgerRow{
			ID:             e.ID,
			Kind:           RowKind(e.Type),
			Date:           e.Date,
			Seq:            e.Seq,
			Description:    entryDescription(e),
			RegisterChange: dr,
			DepositChange:  dd,
		})
	}

	for _, x := range expenses {
		dr, dd := ExpenseDelta(x)
		rows = append(rows, LedgerRow{
			ID:             x.ID,
			Kind:           RowExpense,
			Date:           x.Date,
			Seq:            x.Seq,
			Description:    x.Description,
			RegisterChange: dr,
			DepositChange:  dd,
		})
	}

	// Seq comes from one shared server sequence, so it totally orders
	// same-date rows across both record kinds.
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.Before(rows[j].Date)
		}

		return rows[i].Seq < rows[j].Seq
	})

	running := start
	for i := range rows {
		running = running.Add(rows[i].RegisterChange, rows[i].DepositChange)
		rows[i].RegisterBalance = running.Register
		rows[i].DepositBalance = running.Deposit
	}

	return rows
}

func entryDescription(e *CashEntry) string {
	desc := e.Category

	if e.CustomerName != "" {
		if desc != "" {
			desc += " - "
		}

		desc += e.CustomerName
	}

	if desc == "" {
		desc = string(e.Type)
	}

	return desc
}
