// Package repositories defines the persistence interfaces the core services
// depend on. Implementations live under internal/adapters/database.
package repositories

import (
	"context"
	"time"

	"github.com/Max-Ceph/zaman-hacknu/internal/core/domain"
)

// UserRepository persists and looks up users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) (string, error)
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindLatestUser returns the most recently created user.
	FindLatestUser(ctx context.Context) (*domain.User, error)
}

// AccountRepository persists and lists user accounts.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) (string, error)
	ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error)
}

// GoalRepository persists and lists user goals.
type GoalRepository interface {
	SaveGoal(ctx context.Context, goal domain.Goal) (string, error)
	ListGoalsByUser(ctx context.Context, userID string) ([]domain.Goal, error)
}

// TransactionRepository persists immutable transactions and serves the
// windowed reads the analytics engine and the listing endpoint need.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) (string, error)
	SaveTransactions(ctx context.Context, txns []domain.Transaction) (int, error)
	// ListTransactionsSince returns all of the user's transactions with
	// createdAt >= since, newest first.
	ListTransactionsSince(ctx context.Context, userID string, since time.Time) ([]domain.Transaction, error)
	// ListExpensesSince returns expense transactions with createdAt >= since,
	// skipping (and logging) records whose amount encoding is unrecognized.
	ListExpensesSince(ctx context.Context, userID string, since time.Time) ([]domain.Transaction, error)
	DeleteTransactionsByUser(ctx context.Context, userID string) (int64, error)
}

// ChatHistoryRepository is the append-only chat log.
type ChatHistoryRepository interface {
	SaveMessage(ctx context.Context, msg domain.ChatMessage) error
	// LastMessages returns up to limit most recent messages, newest first.
	LastMessages(ctx context.Context, userID string, limit int) ([]domain.ChatMessage, error)
}
