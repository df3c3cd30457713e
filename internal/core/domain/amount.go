package domain

import "github.com/shopspring/decimal"

// AmountScale is the number of decimal places the ledger stores. It
// matches the NUMERIC(78, 18) columns of the postgres schema.
const AmountScale = 18

// amountLimit is the first value with more integer digits than a
// NUMERIC(78, 18) column holds.
var amountLimit = decimal.New(1, 78-AmountScale)

// ValidAmount reports whether d is positive and fits the ledger columns
// exactly. Finer amounts would be rounded independently on each side of a
// transfer.
func ValidAmount(d decimal.Decimal) bool {
	return d.IsPositive() && d.LessThan(amountLimit) && d.Equal(d.Truncate(AmountScale))
}
