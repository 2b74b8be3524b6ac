package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"pocketledger/internal/core"
	"pocketledger/internal/store/file"
)

func tempService(t *testing.T) *LedgerService {
	t.Helper()
	dir := t.TempDir()
	svc := NewLedgerService(
		file.NewLedger(filepath.Join(dir, "expenses.csv")),
		file.NewBudget(filepath.Join(dir, "budget.txt")),
		nil,
	)
	svc.now = func() time.Time {
		return time.Date(2025, time.April, 20, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestAddExpenseWithDefaults(t *testing.T) {
	svc := tempService(t)

	got, err := svc.AddExpense(context.Background(), "", "notanumber", "")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if got.Name != core.DefaultName {
		t.Fatalf("name %q, want %q", got.Name, core.DefaultName)
	}
	if !got.Amount.IsZero() {
		t.Fatalf("amount %s, want 0", got.Amount)
	}
	if got.Category != core.DefaultCategory {
		t.Fatalf("category %q, want %q", got.Category, core.DefaultCategory)
	}

	ov, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if len(ov.Expenses) != 1 {
		t.Fatalf("expected record to be persisted, got %d", len(ov.Expenses))
	}
}

func TestAddExpenseKeepsProvidedValues(t *testing.T) {
	svc := tempService(t)

	got, err := svc.AddExpense(context.Background(), "  coffee ", " 3.50 ", " 🍔 Food ")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if got.Name != "coffee" || got.Category != "🍔 Food" {
		t.Fatalf("unexpected normalization: %+v", got)
	}
	if !got.Amount.Equal(decimal.RequireFromString("3.50")) {
		t.Fatalf("amount %s, want 3.50", got.Amount)
	}
}

func TestOverviewSummarizes(t *testing.T) {
	svc := tempService(t)
	ctx := context.Background()

	if _, err := svc.AddExpense(ctx, "coffee", "3.50", "Food"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.AddExpense(ctx, "snack", "1.50", "Food"); err != nil {
		t.Fatalf("add: %v", err)
	}
	svc.SetBudget(ctx, "100")

	ov, err := svc.Overview(ctx)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if !ov.Budget.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("budget %s, want 100", ov.Budget)
	}
	if !ov.Summary.Total.Equal(decimal.RequireFromString("5.00")) {
		t.Fatalf("total %s, want 5.00", ov.Summary.Total)
	}
	if !ov.Summary.Remaining.Equal(decimal.RequireFromString("95.00")) {
		t.Fatalf("remaining %s, want 95.00", ov.Summary.Remaining)
	}
	// April 20 leaves 10 days in the month.
	if !ov.Summary.DailyAllowance.Equal(decimal.RequireFromString("9.5")) {
		t.Fatalf("daily %s, want 9.5", ov.Summary.DailyAllowance)
	}
}

func TestOverviewEmptyLedgerUsesDefaultBudget(t *testing.T) {
	svc := tempService(t)

	ov, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if len(ov.Expenses) != 0 {
		t.Fatalf("expected empty ledger, got %d records", len(ov.Expenses))
	}
	if !ov.Budget.Equal(core.DefaultBudget) {
		t.Fatalf("budget %s, want default %s", ov.Budget, core.DefaultBudget)
	}
}

func TestDeleteExpense(t *testing.T) {
	svc := tempService(t)
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		if _, err := svc.AddExpense(ctx, name, "1.00", "c"); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}

	if err := svc.DeleteExpense(ctx, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	ov, err := svc.Overview(ctx)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if len(ov.Expenses) != 2 || ov.Expenses[0].Name != "A" || ov.Expenses[1].Name != "C" {
		t.Fatalf("expected [A C], got %+v", ov.Expenses)
	}

	// Out of range is a silent no-op.
	if err := svc.DeleteExpense(ctx, 10); err != nil {
		t.Fatalf("out-of-range delete should not error: %v", err)
	}
}

func TestSetBudget(t *testing.T) {
	svc := tempService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		raw  string
		want decimal.Decimal
	}{
		{"valid", "1500", decimal.NewFromInt(1500)},
		{"valid decimal", "99.9", decimal.RequireFromString("99.9")},
		{"unparsable", "abc", core.DefaultBudget},
		{"negative", "-5", core.DefaultBudget},
		{"empty", "", core.DefaultBudget},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := svc.SetBudget(ctx, tc.raw)
			if !got.Equal(tc.want) {
				t.Fatalf("applied %s, want %s", got, tc.want)
			}
			ov, err := svc.Overview(ctx)
			if err != nil {
				t.Fatalf("overview: %v", err)
			}
			if !ov.Budget.Equal(tc.want) {
				t.Fatalf("stored %s, want %s", ov.Budget, tc.want)
			}
		})
	}
}
