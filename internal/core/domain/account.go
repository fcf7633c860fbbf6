package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies an account (checking, savings, ...).
type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
)

// Account is a user-owned bank account. Balance is an exact decimal; it is
// never mutated by transaction activity (no transfer logic exists).
type Account struct {
	AccountID   string
	UserID      string
	AccountName string
	AccountType AccountType
	Balance     decimal.Decimal
	Currency    string
	IsActive    bool
	CreatedAt   time.Time
}
