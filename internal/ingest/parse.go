// Package ingest fills a record store, either from interactive prompts or
// from a CSV file. A run uses exactly one of the two.
package ingest

import (
	"strings"

	"fjacquet/finance-tracker/internal/parsererror"

	"github.com/shopspring/decimal"
)

// Messages shown before re-prompting.
const (
	MsgNotANumber = "Invalid input. Please enter a number."
	MsgNegative   = "Please enter a non-negative value."
)

// ParseNonNegative validates one interactive entry. It returns an
// *parsererror.InputError whose Reason is the message to show the user.
func ParseNonNegative(raw string) (decimal.Decimal, error) {
	value := strings.TrimSpace(raw)
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, &parsererror.InputError{Value: value, Reason: MsgNotANumber}
	}
	if d.IsNegative() {
		return decimal.Zero, &parsererror.InputError{Value: value, Reason: MsgNegative}
	}
	return d, nil
}
