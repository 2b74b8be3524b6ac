// Package core holds the ledger domain: the expense record, its line codec,
// and the monthly summarizer.
//
// The ledger file is plain UTF-8 text, one record per line in the form
// name,amount,category. The codec is deliberately tolerant: a line that does
// not decode is skipped rather than treated as an error, so a corrupt line
// never takes the whole ledger down with it.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// EncodeLine serializes an expense as a single ledger line. The amount is
// always written with exactly two decimal places.
func EncodeLine(e Expense) string {
	return e.Name + "," + e.Amount.StringFixed(2) + "," + e.Category
}

// DecodeLine parses one ledger line. It splits on the first two commas only,
// so the category may itself contain commas; the name may not.
//
// The second return value is false when the line should be skipped: blank
// lines, lines with fewer than three fields, and lines whose amount does not
// parse as a number.
func DecodeLine(line string) (Expense, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Expense{}, false
	}
	parts := strings.SplitN(line, ",", 3)
	if len(parts) < 3 {
		return Expense{}, false
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return Expense{}, false
	}
	return Expense{
		Name:     strings.TrimSpace(parts[0]),
		Amount:   amount,
		Category: strings.TrimSpace(parts[2]),
	}, true
}
