// Package services composes the stores, the summarizer and the optional
// event stream into the operations the HTTP boundary calls.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"pocketledger/internal/amqp"
	"pocketledger/internal/core"
	"pocketledger/internal/store"
)

// LedgerService owns input normalization: malformed user input is mapped to
// defaults rather than rejected, so its operations rarely fail outwardly.
// Ledger write failures are the exception; losing a financial record
// silently is worse than showing an error, so Append errors propagate.
type LedgerService struct {
	expenses store.ExpenseStore
	budgets  store.BudgetStore
	events   *amqp.Client // nil when no broker is configured
	now      func() time.Time
}

// Overview is everything the overview page renders.
type Overview struct {
	Expenses []core.Expense
	Budget   decimal.Decimal
	Summary  core.Summary
}

func NewLedgerService(expenses store.ExpenseStore, budgets store.BudgetStore, events *amqp.Client) *LedgerService {
	return &LedgerService{
		expenses: expenses,
		budgets:  budgets,
		events:   events,
		now:      time.Now,
	}
}

// Overview reads the budget and all records and derives the monthly summary.
func (s *LedgerService) Overview(ctx context.Context) (Overview, error) {
	budget := s.budgets.Read(ctx)
	expenses, err := s.expenses.ListAll(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("list expenses: %w", err)
	}
	return Overview{
		Expenses: expenses,
		Budget:   budget,
		Summary:  core.Summarize(expenses, budget, s.now()),
	}, nil
}

// AddExpense normalizes the raw form values and appends the resulting record.
// It returns the record as stored, so callers can see which defaults applied.
func (s *LedgerService) AddExpense(ctx context.Context, rawName, rawAmount, rawCategory string) (core.Expense, error) {
	e := core.Expense{
		Name:     normalizeName(rawName),
		Amount:   parseAmount(rawAmount),
		Category: normalizeCategory(rawCategory),
	}
	if err := s.expenses.Append(ctx, e); err != nil {
		return core.Expense{}, fmt.Errorf("append expense: %w", err)
	}
	s.publish(ctx, amqp.NewExpenseAddedEvent(e))
	return e, nil
}

// DeleteExpense removes the record at the given position. An out-of-range
// index is a no-op: the record the user aimed at is already gone, which is
// the outcome they asked for.
func (s *LedgerService) DeleteExpense(ctx context.Context, index int) error {
	var expenses []core.Expense
	if s.events != nil {
		// Snapshot the doomed record so the removal event can carry it.
		var err error
		expenses, err = s.expenses.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("list expenses: %w", err)
		}
	}

	removed, err := s.expenses.DeleteAt(ctx, index)
	if err != nil {
		return fmt.Errorf("delete expense at %d: %w", index, err)
	}
	if !removed {
		slog.WarnContext(ctx, "Delete index out of range, ignoring", "index", index)
		return nil
	}
	if index >= 0 && index < len(expenses) {
		s.publish(ctx, amqp.NewExpenseRemovedEvent(index, expenses[index]))
	}
	return nil
}

// SetBudget parses the raw value and writes it, substituting the default for
// unparsable or negative input. The applied value is returned; persistence
// is best-effort and never surfaces an error to the user.
func (s *LedgerService) SetBudget(ctx context.Context, rawValue string) decimal.Decimal {
	amount := parseBudget(rawValue)
	if err := s.budgets.Write(ctx, amount); err != nil {
		slog.ErrorContext(ctx, "Budget write failed", "error", err, "amount", amount.StringFixed(2))
	}
	s.publish(ctx, amqp.NewBudgetSetEvent(amount.StringFixed(2)))
	return amount
}

func (s *LedgerService) publish(ctx context.Context, ev *amqp.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, ev); err != nil {
		slog.ErrorContext(ctx, "Failed to publish ledger event", "kind", ev.Kind, "error", err)
		// The local write already succeeded; the stream is advisory.
	}
}

// normalizeName maps blank names to the placeholder.
func normalizeName(raw string) string {
	if name := strings.TrimSpace(raw); name != "" {
		return name
	}
	return core.DefaultName
}

// parseAmount maps anything unparsable to zero. The user's entry still lands
// in the ledger, just without a value.
func parseAmount(raw string) decimal.Decimal {
	v, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return v
}

// normalizeCategory maps blank categories to the default label.
func normalizeCategory(raw string) string {
	if c := strings.TrimSpace(raw); c != "" {
		return c
	}
	return core.DefaultCategory
}

// parseBudget maps unparsable or negative input to the default budget.
func parseBudget(raw string) decimal.Decimal {
	v, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || v.IsNegative() {
		return core.DefaultBudget
	}
	return v
}
