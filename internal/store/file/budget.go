package file

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"pocketledger/internal/core"
)

// Budget stores the single budget value in its own file. Reads are fail-open:
// a missing file or garbage contents yield core.DefaultBudget so the
// summarizer always has something to work with.
type Budget struct {
	mu   sync.Mutex
	path string
}

func NewBudget(path string) *Budget {
	return &Budget{path: path}
}

func (b *Budget) Read(ctx context.Context) decimal.Decimal {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, err := os.ReadFile(b.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.WarnContext(ctx, "Budget file unreadable, using default", "path", b.path, "error", err)
		}
		return core.DefaultBudget
	}
	raw := strings.TrimSpace(string(data))
	if raw == "" {
		return core.DefaultBudget
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		slog.WarnContext(ctx, "Budget file unparsable, using default", "path", b.path, "value", raw)
		return core.DefaultBudget
	}
	return v
}

func (b *Budget) Write(ctx context.Context, amount decimal.Decimal) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return fmt.Errorf("create budget directory: %w", err)
	}
	if err := os.WriteFile(b.path, []byte(amount.StringFixed(2)), 0o644); err != nil {
		return fmt.Errorf("write budget file: %w", err)
	}
	slog.InfoContext(ctx, "Budget written", "amount", amount.StringFixed(2))
	return nil
}
