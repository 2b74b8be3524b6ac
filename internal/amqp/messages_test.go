package amqp

import (
	"testing"

	"github.com/shopspring/decimal"

	"pocketledger/internal/core"
)

func TestExpenseAddedEventRoundTrip(t *testing.T) {
	e := core.Expense{Name: "coffee", Amount: decimal.RequireFromString("3.5"), Category: "🍔 Food"}
	ev := NewExpenseAddedEvent(e)

	data, err := ev.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := EventFromJSON(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.Kind != KindExpenseAdded {
		t.Fatalf("kind %q, want %q", got.Kind, KindExpenseAdded)
	}
	if got.Name != "coffee" || got.Amount != "3.50" || got.Category != "🍔 Food" {
		t.Fatalf("unexpected event: %+v", got)
	}
	if got.Timestamp.IsZero() {
		t.Fatalf("expected timestamp to be set")
	}
}

func TestExpenseRemovedEventCarriesIndex(t *testing.T) {
	e := core.Expense{Name: "rent", Amount: decimal.NewFromInt(1000), Category: "🏠 Home"}
	ev := NewExpenseRemovedEvent(2, e)

	data, err := ev.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := EventFromJSON(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Kind != KindExpenseRemoved || got.Index != 2 {
		t.Fatalf("unexpected event: %+v", got)
	}
}

func TestEventFromJSONInvalid(t *testing.T) {
	if _, err := EventFromJSON([]byte("{not json")); err == nil {
		t.Fatalf("expected error for invalid payload")
	}
}
