package dto

import (
	"time"

	"github.com/Max-Ceph/zaman-hacknu/internal/core/domain"
)

// CreateAccountRequest carries the fields for opening an account.
type CreateAccountRequest struct {
	AccountName string `json:"accountName" binding:"required"`
	AccountType string `json:"accountType" binding:"required,oneof=checking savings"`
	Balance     string `json:"balance"`
	Currency    string `json:"currency"`
}

// AccountResponse is the public view of an account. Balance is rendered as
// an exact decimal string, never binary floating point.
type AccountResponse struct {
	AccountID   string    `json:"accountId"`
	AccountName string    `json:"accountName"`
	AccountType string    `json:"accountType"`
	Balance     string    `json:"balance"`
	Currency    string    `json:"currency"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToAccountResponse maps a domain account.
func ToAccountResponse(a domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   a.AccountID,
		AccountName: a.AccountName,
		AccountType: string(a.AccountType),
		Balance:     a.Balance.StringFixed(2),
		Currency:    a.Currency,
		IsActive:    a.IsActive,
		CreatedAt:   a.CreatedAt,
	}
}

// ToAccountResponses maps a slice of domain accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, ToAccountResponse(a))
	}
	return out
}
