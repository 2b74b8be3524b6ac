package http

import (
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"pocketledger/internal/core"
)

type expenseRow struct {
	Index    int
	Name     string
	Amount   string
	Category string
}

type categoryRow struct {
	Name   string
	Amount string
	Width  int
}

type overviewData struct {
	Expenses       []expenseRow
	ByCategory     []categoryRow
	Total          string
	Remaining      string
	Negative       bool
	DailyAllowance string
	Budget         string
	Categories     []string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	ov, err := s.ledger.Overview(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Overview error", "error", err)
		http.Error(w, "failed to read ledger", http.StatusInternalServerError)
		return
	}

	data := overviewData{
		Total:          formatMoney(ov.Summary.Total),
		Remaining:      formatMoney(ov.Summary.Remaining),
		Negative:       ov.Summary.Remaining.IsNegative(),
		DailyAllowance: formatMoney(ov.Summary.DailyAllowance),
		Budget:         formatMoney(ov.Budget),
		Categories:     core.Categories,
	}
	for i, e := range ov.Expenses {
		data.Expenses = append(data.Expenses, expenseRow{
			Index:    i,
			Name:     e.Name,
			Amount:   formatMoney(e.Amount),
			Category: e.Category,
		})
	}
	data.ByCategory = categoryRows(ov.Summary.ByCategory)

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", "error", err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "url", r.URL.Path)
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	name := sanitizeInput(r.Form.Get("name"))
	amount := strings.TrimSpace(r.Form.Get("amount"))
	category := sanitizeInput(r.Form.Get("category"))

	if _, err := s.ledger.AddExpense(r.Context(), name, amount, category); err != nil {
		slog.ErrorContext(r.Context(), "Add expense error", "error", err, "name", name)
		http.Error(w, "failed to save expense", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil || index < 0 {
		http.NotFound(w, r)
		return
	}

	if err := s.ledger.DeleteExpense(r.Context(), index); err != nil {
		slog.ErrorContext(r.Context(), "Delete expense error", "error", err, "index", index)
		http.Error(w, "failed to delete expense", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleSetBudget(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "url", r.URL.Path)
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	applied := s.ledger.SetBudget(r.Context(), r.Form.Get("budget"))
	slog.InfoContext(r.Context(), "Budget set", "amount", applied.StringFixed(2))

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// categoryRows orders category totals alphabetically and scales a progress
// width against the largest category for the overview bars.
func categoryRows(byCategory map[string]decimal.Decimal) []categoryRow {
	names := make([]string, 0, len(byCategory))
	var maxAmount decimal.Decimal
	for name, amount := range byCategory {
		names = append(names, name)
		if amount.GreaterThan(maxAmount) {
			maxAmount = amount
		}
	}
	sort.Strings(names)

	rows := make([]categoryRow, 0, len(names))
	for _, name := range names {
		amount := byCategory[name]
		width := 0
		if maxAmount.IsPositive() && amount.IsPositive() {
			width = int(amount.Mul(decimal.NewFromInt(100)).Div(maxAmount).IntPart())
			if width > 0 && width < 2 { // ensure visibility for very small values
				width = 2
			}
			if width > 100 {
				width = 100
			}
		}
		rows = append(rows, categoryRow{Name: name, Amount: formatMoney(amount), Width: width})
	}
	return rows
}

// formatMoney renders an amount as a two-decimal euro string.
func formatMoney(v decimal.Decimal) string {
	if v.IsNegative() {
		return "-€" + v.Neg().StringFixed(2)
	}
	return "€" + v.StringFixed(2)
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
