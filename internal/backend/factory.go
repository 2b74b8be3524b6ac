package backend

import (
	"fmt"
	"log/slog"

	"pocketledger/internal/store/file"
	"pocketledger/internal/store/sqlite"
)

// Factory creates backends from configuration.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// Create builds the backend named by the config.
func (f *Factory) Create(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Type {
	case FileBackend:
		return f.createFileBackend(cfg), nil
	case SQLiteBackend:
		return f.createSQLiteBackend(cfg)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.Type)
	}
}

func (f *Factory) createFileBackend(cfg Config) *Result {
	f.logger.Info("Initialized file backend",
		"ledger_path", cfg.LedgerPath,
		"budget_path", cfg.BudgetPath)

	return &Result{
		Expenses: file.NewLedger(cfg.LedgerPath),
		Budgets:  file.NewBudget(cfg.BudgetPath),
	}
}

func (f *Factory) createSQLiteBackend(cfg Config) (*Result, error) {
	repo, err := sqlite.NewRepository(cfg.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("initialize sqlite repository: %w", err)
	}

	f.logger.Info("Initialized sqlite backend", "db_path", cfg.SQLiteDBPath)

	return &Result{
		Expenses: repo,
		Budgets:  repo,
		Cleanup:  repo.Close,
	}, nil
}
