// Package sqlite implements the store ports on an embedded SQLite database.
// It offers the same semantics as the flat-file stores, including positional
// deletes (position maps to the nth row in id order) and tolerant reads.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"pocketledger/internal/core"

	_ "modernc.org/sqlite"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(dbPath string) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ListAll implements store.ExpenseStore. Rows whose amount column does not
// parse are dropped, matching the flat-file codec's tolerance.
func (r *Repository) ListAll(ctx context.Context) ([]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, amount, category FROM expenses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []core.Expense
	for rows.Next() {
		var name, amount, category string
		if err := rows.Scan(&name, &amount, &category); err != nil {
			return nil, fmt.Errorf("scan expense row: %w", err)
		}
		v, err := decimal.NewFromString(amount)
		if err != nil {
			slog.WarnContext(ctx, "Skipping expense row with unparsable amount", "amount", amount)
			continue
		}
		expenses = append(expenses, core.Expense{Name: name, Amount: v, Category: category})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expense rows: %w", err)
	}
	return expenses, nil
}

// Append implements store.ExpenseStore.
func (r *Repository) Append(ctx context.Context, e core.Expense) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (name, amount, category) VALUES (?, ?, ?)`,
		e.Name, e.Amount.StringFixed(2), e.Category)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// DeleteAt implements store.ExpenseStore. The position is resolved to the
// nth row in id order inside a transaction, so the lookup and the delete see
// the same ordering.
func (r *Repository) DeleteAt(ctx context.Context, index int) (bool, error) {
	if index < 0 {
		return false, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin delete transaction: %w", err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM expenses ORDER BY id LIMIT 1 OFFSET ?`, index).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("resolve expense position %d: %w", index, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id); err != nil {
		return false, fmt.Errorf("delete expense %d: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit delete: %w", err)
	}
	return true, nil
}

// Read implements store.BudgetStore with the same fail-open policy as the
// flat-file store: no row or an unparsable value yields the default.
func (r *Repository) Read(ctx context.Context) decimal.Decimal {
	var amount string
	err := r.db.QueryRowContext(ctx, `SELECT amount FROM budget WHERE id = 1`).Scan(&amount)
	if errors.Is(err, sql.ErrNoRows) {
		return core.DefaultBudget
	}
	if err != nil {
		slog.WarnContext(ctx, "Budget query failed, using default", "error", err)
		return core.DefaultBudget
	}
	v, err := decimal.NewFromString(amount)
	if err != nil {
		slog.WarnContext(ctx, "Stored budget unparsable, using default", "amount", amount)
		return core.DefaultBudget
	}
	return v
}

// Write implements store.BudgetStore.
func (r *Repository) Write(ctx context.Context, amount decimal.Decimal) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO budget (id, amount) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET amount = excluded.amount`,
		amount.StringFixed(2))
	if err != nil {
		return fmt.Errorf("upsert budget: %w", err)
	}
	return nil
}
