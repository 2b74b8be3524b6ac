package core

import (
	"github.com/shopspring/decimal"
)

// Expense is a single ledger entry. Records carry no identifier: a record is
// identified by its zero-based position in the ledger at read time.
type Expense struct {
	Name     string
	Amount   decimal.Decimal
	Category string
}

// Defaults substituted for invalid or missing user input. Input never fails
// outright; it degrades to these values.
const (
	DefaultName     = "Unnamed"
	DefaultCategory = "✨ Misc"
)

// DefaultBudget is used whenever no budget has been stored or the stored
// value cannot be parsed.
var DefaultBudget = decimal.NewFromInt(2000)

// Categories is the suggested label set offered by the UI. The ledger never
// validates against it; any free-form category is accepted.
var Categories = []string{"🍔 Food", "🏠 Home", "💼 Work", "🎉 Fun", "✨ Misc"}
