// Package backend selects and constructs the storage implementation the
// server runs against.
package backend

import (
	"fmt"

	"pocketledger/internal/store"
)

// Type identifies a storage backend.
type Type string

const (
	// FileBackend stores the ledger and budget in flat text files. This is
	// the reference backend; its on-disk format is the ledger's native one.
	FileBackend Type = "file"

	// SQLiteBackend stores both in an embedded SQLite database.
	SQLiteBackend Type = "sqlite"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case FileBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

// Config holds what the factory needs to build a backend.
type Config struct {
	Type Type

	// File backend
	LedgerPath string
	BudgetPath string

	// SQLite backend
	SQLiteDBPath string
}

// Validate checks the configuration for the selected backend type.
func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid backend type: %s", c.Type)
	}
	switch c.Type {
	case FileBackend:
		if c.LedgerPath == "" {
			return fmt.Errorf("ledger file path is required for file backend")
		}
		if c.BudgetPath == "" {
			return fmt.Errorf("budget file path is required for file backend")
		}
	case SQLiteBackend:
		if c.SQLiteDBPath == "" {
			return fmt.Errorf("database path is required for sqlite backend")
		}
	}
	return nil
}

// CleanupFunc releases backend resources.
type CleanupFunc func() error

// Result is a constructed backend: the two store ports plus an optional
// cleanup hook.
type Result struct {
	Expenses store.ExpenseStore
	Budgets  store.BudgetStore
	Cleanup  CleanupFunc
}
