// Package services defines the service interfaces the HTTP handlers depend
// on, plus the remote-provider ports the core consumes.
package services

import (
	"context"
	"time"

	"github.com/Max-Ceph/zaman-hacknu/internal/core/domain"
	"github.com/Max-Ceph/zaman-hacknu/internal/dto"
)

// UserSvc covers registration and credential checks.
type UserSvc interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
}

// AccountSvc lists and creates user accounts.
type AccountSvc interface {
	CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error)
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
}

// GoalSvc lists and creates savings goals.
type GoalSvc interface {
	CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.Goal, error)
	ListGoals(ctx context.Context, userID string) ([]domain.Goal, error)
}

// TransactionSvc creates and lists transactions and owns the demo-data
// generator.
type TransactionSvc interface {
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, userID string, since time.Time) ([]domain.Transaction, error)
	GenerateDemoData(ctx context.Context, userID string) (int, error)
}

// AnalyticsSvc computes spending aggregates and recommendation text.
type AnalyticsSvc interface {
	// AnalyzeSpendingHabits returns nil (no error) when the user has no
	// expense transactions in the trailing 30 days.
	AnalyzeSpendingHabits(ctx context.Context, userID string) (*domain.SpendingAnalysis, error)
	GenerateRecommendations(analysis *domain.SpendingAnalysis, goals []domain.Goal) string
}

// ChatSvc is the conversation orchestrator. Respond never fails: any
// internal error degrades to a localized fallback reply.
type ChatSvc interface {
	Respond(ctx context.Context, userID, message string) dto.ChatResponse
}

// ServiceContainer bundles every service the HTTP layer depends on.
type ServiceContainer struct {
	User        UserSvc
	Account     AccountSvc
	Goal        GoalSvc
	Transaction TransactionSvc
	Analytics   AnalyticsSvc
	Chat        ChatSvc
	Transcriber Transcriber
}
