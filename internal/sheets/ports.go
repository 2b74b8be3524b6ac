// Package sheets defines the outbound port for mirroring ledger records to a
// spreadsheet.
package sheets

import (
	"context"

	"pocketledger/internal/core"
)

// ExpenseAppender appends one expense as a new spreadsheet row and returns a
// reference to where it landed.
type ExpenseAppender interface {
	AppendExpense(ctx context.Context, e core.Expense) (rowRef string, err error)
}
