package amqp

import (
	"encoding/json"
	"time"

	"pocketledger/internal/core"
)

// Event kinds published on the ledger stream.
const (
	KindExpenseAdded   = "expense_added"
	KindExpenseRemoved = "expense_removed"
	KindBudgetSet      = "budget_set"
)

// Event is the envelope for every ledger change. Records have no stable
// identifiers, so events carry the record fields themselves; consumers never
// have to look anything up.
type Event struct {
	Kind      string    `json:"kind"`
	Name      string    `json:"name,omitempty"`
	Amount    string    `json:"amount,omitempty"`
	Category  string    `json:"category,omitempty"`
	Index     int       `json:"index"`
	Timestamp time.Time `json:"timestamp"`
}

// NewExpenseAddedEvent builds the event for a freshly appended record.
func NewExpenseAddedEvent(e core.Expense) *Event {
	return &Event{
		Kind:      KindExpenseAdded,
		Name:      e.Name,
		Amount:    e.Amount.StringFixed(2),
		Category:  e.Category,
		Timestamp: time.Now(),
	}
}

// NewExpenseRemovedEvent builds the event for a positional delete. The index
// is the position the record held at the moment of removal.
func NewExpenseRemovedEvent(index int, e core.Expense) *Event {
	return &Event{
		Kind:      KindExpenseRemoved,
		Name:      e.Name,
		Amount:    e.Amount.StringFixed(2),
		Category:  e.Category,
		Index:     index,
		Timestamp: time.Now(),
	}
}

// NewBudgetSetEvent builds the event for a budget overwrite.
func NewBudgetSetEvent(amount string) *Event {
	return &Event{
		Kind:      KindBudgetSet,
		Amount:    amount,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the event to JSON bytes.
func (e *Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// EventFromJSON creates an event from JSON bytes.
func EventFromJSON(data []byte) (*Event, error) {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}
