package dto

import (
	"time"

	"github.com/Max-Ceph/zaman-hacknu/internal/core/domain"
)

// CreateTransactionRequest carries the fields for a new transaction. Amount
// arrives as a string so the exact decimal value survives JSON transport.
type CreateTransactionRequest struct {
	Type        string `json:"type" binding:"omitempty,oneof=expense income"`
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// TransactionResponse is the public view of a transaction.
type TransactionResponse struct {
	TransactionID string    `json:"transactionId"`
	Type          string    `json:"type"`
	Amount        string    `json:"amount"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToTransactionResponse maps a domain transaction.
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Type:          string(t.Type),
		Amount:        t.Amount.StringFixed(2),
		Description:   t.Description,
		Category:      t.Category,
		CreatedAt:     t.CreatedAt,
	}
}

// ToTransactionResponses maps a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txns))
	for _, t := range txns {
		out = append(out, ToTransactionResponse(t))
	}
	return out
}
