package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"pocketledger/internal/services"
	"pocketledger/internal/store/file"
)

func tempServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	svc := services.NewLedgerService(
		file.NewLedger(filepath.Join(dir, "expenses.csv")),
		file.NewBudget(filepath.Join(dir, "budget.txt")),
		nil,
	)
	s := NewServer(":0", svc)
	t.Cleanup(func() { _ = s.Shutdown(context.Background()) })
	return s
}

func postForm(t *testing.T, s *Server, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.Handler.ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Handler.ServeHTTP(rec, req)
	return rec
}

func TestIndexEmptyLedger(t *testing.T) {
	s := tempServer(t)

	rec := get(t, s, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "No expenses yet") {
		t.Fatalf("expected empty placeholder, got:\n%s", body)
	}
	if !strings.Contains(body, "€2000.00") {
		t.Fatalf("expected default budget in page, got:\n%s", body)
	}
}

func TestAddExpenseRedirectsAndPersists(t *testing.T) {
	s := tempServer(t)

	rec := postForm(t, s, "/add", url.Values{
		"name":     {"coffee"},
		"amount":   {"3.50"},
		"category": {"🍔 Food"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Fatalf("redirect to %q, want /", loc)
	}

	body := get(t, s, "/").Body.String()
	if !strings.Contains(body, "coffee") || !strings.Contains(body, "€3.50") {
		t.Fatalf("expected expense on page, got:\n%s", body)
	}
}

func TestAddExpenseMalformedInputDegradesToDefaults(t *testing.T) {
	s := tempServer(t)

	rec := postForm(t, s, "/add", url.Values{
		"name":   {"   "},
		"amount": {"notanumber"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status %d, want 303", rec.Code)
	}

	body := get(t, s, "/").Body.String()
	if !strings.Contains(body, "Unnamed") {
		t.Fatalf("expected placeholder name on page, got:\n%s", body)
	}
	if !strings.Contains(body, "€0.00") {
		t.Fatalf("expected zero amount on page, got:\n%s", body)
	}
}

func TestDeleteExpense(t *testing.T) {
	s := tempServer(t)

	for _, name := range []string{"A", "B"} {
		postForm(t, s, "/add", url.Values{"name": {name}, "amount": {"1.00"}, "category": {"c"}})
	}

	rec := postForm(t, s, "/delete/0", nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status %d, want 303", rec.Code)
	}

	body := get(t, s, "/").Body.String()
	if strings.Contains(body, "<td>A</td>") {
		t.Fatalf("expected A to be deleted, got:\n%s", body)
	}
	if !strings.Contains(body, "<td>B</td>") {
		t.Fatalf("expected B to survive, got:\n%s", body)
	}
}

func TestDeleteExpenseBadIndex(t *testing.T) {
	s := tempServer(t)

	cases := []struct {
		path string
		want int
	}{
		{"/delete/abc", http.StatusNotFound},
		{"/delete/-1", http.StatusNotFound},
		// Out of range is a silent no-op.
		{"/delete/99", http.StatusSeeOther},
	}
	for _, tc := range cases {
		rec := postForm(t, s, tc.path, nil)
		if rec.Code != tc.want {
			t.Fatalf("%s: status %d, want %d", tc.path, rec.Code, tc.want)
		}
	}
}

func TestSetBudget(t *testing.T) {
	s := tempServer(t)

	rec := postForm(t, s, "/set_budget", url.Values{"budget": {"1500"}})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status %d, want 303", rec.Code)
	}

	body := get(t, s, "/").Body.String()
	if !strings.Contains(body, "€1500.00") {
		t.Fatalf("expected new budget on page, got:\n%s", body)
	}
}

func TestSetBudgetNegativeFallsBackToDefault(t *testing.T) {
	s := tempServer(t)

	postForm(t, s, "/set_budget", url.Values{"budget": {"-100"}})

	body := get(t, s, "/").Body.String()
	if !strings.Contains(body, "€2000.00") {
		t.Fatalf("expected default budget on page, got:\n%s", body)
	}
}

func TestHealthEndpoints(t *testing.T) {
	s := tempServer(t)

	for _, path := range []string{"/healthz", "/readyz"} {
		rec := get(t, s, path)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status %d, want 200", path, rec.Code)
		}
	}
}
