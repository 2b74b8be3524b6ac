package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestEncodeLine(t *testing.T) {
	e := Expense{Name: "coffee", Amount: decimal.RequireFromString("3.5"), Category: "🍔 Food"}
	got := EncodeLine(e)
	want := "coffee,3.50,🍔 Food"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDecodeLineRoundTrip(t *testing.T) {
	orig := Expense{Name: "rent", Amount: decimal.RequireFromString("1000.00"), Category: "🏠 Home"}
	got, ok := DecodeLine(EncodeLine(orig))
	if !ok {
		t.Fatalf("expected decode to succeed")
	}
	if got.Name != orig.Name || got.Category != orig.Category {
		t.Fatalf("got %+v, want %+v", got, orig)
	}
	if !got.Amount.Equal(orig.Amount) {
		t.Fatalf("amount %s, want %s", got.Amount, orig.Amount)
	}
}

func TestDecodeLine(t *testing.T) {
	cases := []struct {
		name string
		line string
		want Expense
		ok   bool
	}{
		{"well formed", "coffee,3.50,🍔 Food", Expense{Name: "coffee", Amount: decimal.RequireFromString("3.50"), Category: "🍔 Food"}, true},
		{"trims fields", "  coffee , 3.50 , 🍔 Food ", Expense{Name: "coffee", Amount: decimal.RequireFromString("3.50"), Category: "🍔 Food"}, true},
		{"category keeps commas", "gift,25.00,Fun, misc", Expense{Name: "gift", Amount: decimal.RequireFromString("25.00"), Category: "Fun, misc"}, true},
		{"negative amount accepted", "refund,-4.20,🍔 Food", Expense{Name: "refund", Amount: decimal.RequireFromString("-4.20"), Category: "🍔 Food"}, true},
		{"empty line", "", Expense{}, false},
		{"whitespace only", "   \t ", Expense{}, false},
		{"two fields", "coffee,3.50", Expense{}, false},
		{"bad amount", "coffee,notanumber,🍔 Food", Expense{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := DecodeLine(tc.line)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if !ok {
				return
			}
			if got.Name != tc.want.Name || got.Category != tc.want.Category || !got.Amount.Equal(tc.want.Amount) {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}
