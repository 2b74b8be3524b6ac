// Package store defines the persistence ports the ledger service composes.
// Implementations live in the file and sqlite subpackages.
package store

import (
	"context"

	"github.com/shopspring/decimal"

	"pocketledger/internal/core"
)

type (
	// ExpenseStore is the durable ordered collection of expense records.
	// Records have positional identity: an index is only meaningful against
	// the store's current contents.
	ExpenseStore interface {
		// ListAll returns every readable record in insertion order. A store
		// that has never been written to yields an empty list, not an error.
		ListAll(ctx context.Context) ([]core.Expense, error)

		// Append adds a record at the end. This is the only growth operation.
		Append(ctx context.Context, e core.Expense) error

		// DeleteAt removes the record at the given zero-based position.
		// An out-of-range index returns (false, nil) and leaves the store
		// untouched.
		DeleteAt(ctx context.Context, index int) (bool, error)
	}

	// BudgetStore holds the single monthly budget value.
	BudgetStore interface {
		// Read returns the stored budget, or core.DefaultBudget when no
		// usable value exists. It never fails: a missing or corrupt value
		// and a healthy default are indistinguishable to callers.
		Read(ctx context.Context) decimal.Decimal

		// Write replaces the stored budget wholesale.
		Write(ctx context.Context, amount decimal.Decimal) error
	}
)
