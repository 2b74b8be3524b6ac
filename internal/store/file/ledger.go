// Package file implements the store ports over flat text files, the ledger's
// reference storage format. One file holds the expense lines, another the
// budget value. A per-store mutex serializes mutations so interleaved
// append/delete sequences within the process cannot corrupt the file.
package file

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"pocketledger/internal/core"
)

// Ledger is a flat-file expense store. Each record occupies one line in the
// backing file; lines that fail to decode are dropped on read.
type Ledger struct {
	mu   sync.Mutex
	path string
}

func NewLedger(path string) *Ledger {
	return &Ledger{path: path}
}

// ListAll re-reads the backing file on every call. A missing file is an
// empty ledger, not an error.
func (l *Ledger) ListAll(ctx context.Context) ([]core.Expense, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read ledger file: %w", err)
	}

	var expenses []core.Expense
	for _, line := range strings.Split(string(data), "\n") {
		e, ok := core.DecodeLine(line)
		if !ok {
			if strings.TrimSpace(line) != "" {
				slog.WarnContext(ctx, "Skipping malformed ledger line", "path", l.path)
			}
			continue
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

// Append writes the record as a new line at the end of the file, creating it
// if absent. Existing lines are never touched.
func (l *Ledger) Append(ctx context.Context, e core.Expense) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create ledger directory: %w", err)
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open ledger file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(core.EncodeLine(e) + "\n"); err != nil {
		return fmt.Errorf("append ledger line: %w", err)
	}
	slog.InfoContext(ctx, "Expense appended to ledger",
		"name", e.Name,
		"amount", e.Amount.StringFixed(2),
		"category", e.Category)
	return nil
}

// DeleteAt removes the line at the given zero-based offset, counting only
// non-blank lines, and rewrites the whole file. Out-of-range indexes leave
// the file untouched and return (false, nil).
func (l *Ledger) DeleteAt(ctx context.Context, index int) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read ledger file: %w", err)
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if index < 0 || index >= len(lines) {
		return false, nil
	}
	lines = append(lines[:index], lines[index+1:]...)

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(strings.TrimRight(line, "\n"))
		b.WriteString("\n")
	}
	if err := os.WriteFile(l.path, []byte(b.String()), 0o644); err != nil {
		return false, fmt.Errorf("rewrite ledger file: %w", err)
	}
	slog.InfoContext(ctx, "Expense removed from ledger", "index", index, "remaining", len(lines))
	return true, nil
}
