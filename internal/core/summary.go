package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary holds the derived monthly figures for a set of expenses against a
// budget. It is computed fresh on every read and never persisted.
type Summary struct {
	ByCategory     map[string]decimal.Decimal
	Total          decimal.Decimal
	Remaining      decimal.Decimal
	DailyAllowance decimal.Decimal
}

// Summarize aggregates expenses against the budget as of now. The clock is a
// parameter so callers can pin it in tests; only the year, month and day of
// now are consulted.
//
// The daily allowance spreads the remaining budget over the days left in the
// current month. On the last day of the month (or past it) there is nothing
// to divide by and the whole remainder is the allowance.
func Summarize(expenses []Expense, budget decimal.Decimal, now time.Time) Summary {
	byCategory := make(map[string]decimal.Decimal)
	total := decimal.Zero
	for _, e := range expenses {
		byCategory[e.Category] = byCategory[e.Category].Add(e.Amount)
		total = total.Add(e.Amount)
	}

	remaining := budget.Sub(total)

	remainingDays := daysInMonth(now) - now.Day()
	daily := remaining
	if remainingDays > 0 {
		daily = remaining.Div(decimal.NewFromInt(int64(remainingDays)))
	}

	return Summary{
		ByCategory:     byCategory,
		Total:          total,
		Remaining:      remaining,
		DailyAllowance: daily,
	}
}

func daysInMonth(t time.Time) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
