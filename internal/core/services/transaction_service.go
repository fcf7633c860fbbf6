package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Max-Ceph/zaman-hacknu/internal/apperrors"
	"github.com/Max-Ceph/zaman-hacknu/internal/core/domain"
	portsrepo "github.com/Max-Ceph/zaman-hacknu/internal/core/ports/repositories"
	portssvc "github.com/Max-Ceph/zaman-hacknu/internal/core/ports/services"
	"github.com/Max-Ceph/zaman-hacknu/internal/dto"
	"github.com/Max-Ceph/zaman-hacknu/internal/middleware"
	"github.com/shopspring/decimal"
)

// demoTransaction is one row of the fixed demo-data list. Hour pins the
// transaction into a specific hour of day (-1 keeps the natural hour).
type demoTransaction struct {
	Description string
	Amount      int64
	DaysAgo     int
	Hour        int
}

// demoTransactions is the fixed demo list. Amounts, days and pinned hours
// are deliberate: they make demo analytics fully deterministic.
var demoTransactions = []demoTransaction{
	{"Магазин продуктов Small", 15000, 1, -1},
	{"Яндекс.Такси", 2500, 2, -1},
	{"Кофейня Starbucks", 3000, 2, -1},
	{"Заправка KazMunayGas", 12000, 3, -1},
	{"Магазин одежды Zara", 35000, 4, 23},
	{"Ресторан Burger King", 4500, 5, -1},
	{"Аптека", 5000, 6, -1},
	{"Beeline оплата", 3500, 7, -1},
	{"Кино Chaplin", 4000, 8, -1},
	{"Магазин продуктов", 18000, 9, -1},
	{"Uber поездка", 1800, 10, -1},
	{"Книжный магазин", 8000, 11, -1},
	{"Кафе Coffee Room", 2500, 12, 1},
	{"Заправка", 11000, 13, -1},
	{"Магазин H&M", 28000, 14, -1},
	{"Доставка еды Chocofood", 5500, 15, -1},
	{"Аптека лекарства", 7000, 16, -1},
	{"Магазин продуктов", 16000, 17, -1},
	{"Такси", 2000, 18, -1},
	{"Кофейня", 2800, 19, -1},
	{"Онлайн покупки Wildberries", 42000, 20, 0},
}

// TransactionService creates and lists transactions and owns the demo-data
// generator.
type TransactionService struct {
	txnRepo portsrepo.TransactionRepository
}

// Ensure TransactionService implements the TransactionSvc interface
var _ portssvc.TransactionSvc = (*TransactionService)(nil)

// NewTransactionService creates a new TransactionService.
func NewTransactionService(txnRepo portsrepo.TransactionRepository) *TransactionService {
	return &TransactionService{txnRepo: txnRepo}
}

// CreateTransaction records a new immutable transaction. The amount arrives
// as a string and is parsed as an exact decimal; the category is derived
// from the description.
func (s *TransactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", req.Amount, apperrors.ErrValidation)
	}

	txnType := domain.TransactionType(req.Type)
	if txnType == "" {
		txnType = domain.TransactionTypeExpense
	}

	txn := domain.Transaction{
		UserID:      userID,
		Type:        txnType,
		Amount:      amount,
		Description: req.Description,
		Category:    CategorizeTransaction(req.Description),
		CreatedAt:   time.Now().UTC(),
	}

	txnID, err := s.txnRepo.SaveTransaction(ctx, txn)
	if err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	txn.TransactionID = txnID

	logger.Info("Transaction created",
		slog.String("transaction_id", txnID),
		slog.String("category", txn.Category),
		slog.String("amount", amount.String()),
	)
	return &txn, nil
}

// ListTransactions returns the user's transactions since the given time,
// newest first.
func (s *TransactionService) ListTransactions(ctx context.Context, userID string, since time.Time) ([]domain.Transaction, error) {
	return s.txnRepo.ListTransactionsSince(ctx, userID, since)
}

// GenerateDemoData wipes the user's transactions and inserts the fixed demo
// list. Rows with a pinned hour get only the hour replaced, keeping the
// natural minute and second.
func (s *TransactionService) GenerateDemoData(ctx context.Context, userID string) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	deleted, err := s.txnRepo.DeleteTransactionsByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old transactions: %w", err)
	}
	logger.Info("Old transactions deleted", slog.Int64("count", deleted))

	now := time.Now().UTC()
	txns := make([]domain.Transaction, 0, len(demoTransactions))
	for _, demo := range demoTransactions {
		createdAt := now.AddDate(0, 0, -demo.DaysAgo)
		if demo.Hour >= 0 {
			createdAt = time.Date(
				createdAt.Year(), createdAt.Month(), createdAt.Day(),
				demo.Hour, createdAt.Minute(), createdAt.Second(), createdAt.Nanosecond(),
				time.UTC,
			)
		}

		txns = append(txns, domain.Transaction{
			UserID:      userID,
			Type:        domain.TransactionTypeExpense,
			Amount:      decimal.NewFromInt(demo.Amount),
			Description: demo.Description,
			Category:    CategorizeTransaction(demo.Description),
			CreatedAt:   createdAt,
		})
	}

	inserted, err := s.txnRepo.SaveTransactions(ctx, txns)
	if err != nil {
		return 0, fmt.Errorf("failed to insert demo transactions: %w", err)
	}

	logger.Info("Demo transactions inserted", slog.Int("count", inserted))
	return inserted, nil
}
