package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tags a transaction as money out or money in.
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction is an immutable spending/income record. Category is derived
// from the description at insert time. Amount is an exact decimal; the
// analytics engine converts to float64 only transiently for aggregation.
type Transaction struct {
	TransactionID string
	UserID        string
	Type          TransactionType
	Amount        decimal.Decimal
	Description   string
	Category      string
	CreatedAt     time.Time
}
