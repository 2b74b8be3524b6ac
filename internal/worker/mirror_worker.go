// Package worker mirrors the ledger event stream into a spreadsheet.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"pocketledger/internal/amqp"
	"pocketledger/internal/core"
	"pocketledger/internal/sheets"

	"github.com/shopspring/decimal"
)

// MirrorWorker consumes ledger events and appends added expenses to a sheet.
// Removals cannot be mirrored: the sheet keeps its own row order and the
// event's index only ever described the ledger file, so removed and budget
// events are acknowledged and skipped.
type MirrorWorker struct {
	appender sheets.ExpenseAppender
}

func NewMirrorWorker(appender sheets.ExpenseAppender) *MirrorWorker {
	return &MirrorWorker{appender: appender}
}

// HandleEvent processes a single ledger event. Returning an error requeues
// the event, so only transient failures (the append call) may error.
func (w *MirrorWorker) HandleEvent(ctx context.Context, ev *amqp.Event) error {
	switch ev.Kind {
	case amqp.KindExpenseAdded:
		return w.mirrorAdded(ctx, ev)
	case amqp.KindExpenseRemoved:
		slog.InfoContext(ctx, "Skipping removal event, sheet is append-only",
			"index", ev.Index, "name", ev.Name)
		return nil
	case amqp.KindBudgetSet:
		slog.InfoContext(ctx, "Skipping budget event", "amount", ev.Amount)
		return nil
	default:
		slog.WarnContext(ctx, "Unknown ledger event kind", "kind", ev.Kind)
		return nil
	}
}

func (w *MirrorWorker) mirrorAdded(ctx context.Context, ev *amqp.Event) error {
	amount, err := decimal.NewFromString(ev.Amount)
	if err != nil {
		// A malformed event will never get better; drop it.
		slog.ErrorContext(ctx, "Event amount unparsable, dropping",
			"amount", ev.Amount, "name", ev.Name)
		return nil
	}

	e := core.Expense{Name: ev.Name, Amount: amount, Category: ev.Category}
	ref, err := w.appender.AppendExpense(ctx, e)
	if err != nil {
		return fmt.Errorf("mirror expense to sheet: %w", err)
	}

	slog.InfoContext(ctx, "Expense mirrored to sheet",
		"name", e.Name,
		"amount", e.Amount.StringFixed(2),
		"row", ref)
	return nil
}
