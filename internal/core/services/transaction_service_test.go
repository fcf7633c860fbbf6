package services_test

import (
	"context"
	"testing"

	"github.com/Max-Ceph/zaman-hacknu/internal/apperrors"
	"github.com/Max-Ceph/zaman-hacknu/internal/core/domain"
	"github.com/Max-Ceph/zaman-hacknu/internal/core/services"
	"github.com/Max-Ceph/zaman-hacknu/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateTransaction_ExactDecimalAndDerivedCategory(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockTransactionRepository)
	service := services.NewTransactionService(mockRepo)

	mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Amount.StringFixed(2) == "1500.50" &&
			txn.Category == "Транспорт" &&
			txn.Type == domain.TransactionTypeExpense
	})).Return("txn-1", nil).Once()

	txn, err := service.CreateTransaction(ctx, "user-1", dto.CreateTransactionRequest{
		Amount:      "1500.50",
		Description: "Яндекс.Такси",
	})

	require.NoError(t, err)
	assert.Equal(t, "txn-1", txn.TransactionID)
	assert.Equal(t, "1500.50", txn.Amount.StringFixed(2))
	mockRepo.AssertExpectations(t)
}

func TestCreateTransaction_InvalidAmount(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockTransactionRepository)
	service := services.NewTransactionService(mockRepo)

	_, err := service.CreateTransaction(ctx, "user-1", dto.CreateTransactionRequest{
		Amount:      "not-a-number",
		Description: "Такси",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	mockRepo.AssertNotCalled(t, "SaveTransaction", mock.Anything, mock.Anything)
}

func TestGenerateDemoData_DeletesThenInserts(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockTransactionRepository)
	service := services.NewTransactionService(mockRepo)

	var captured []domain.Transaction
	mockRepo.On("DeleteTransactionsByUser", ctx, "user-1").Return(int64(7), nil).Once()
	mockRepo.On("SaveTransactions", ctx, mock.AnythingOfType("[]domain.Transaction")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).([]domain.Transaction)
		}).
		Return(21, nil).Once()

	count, err := service.GenerateDemoData(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, 21, count)
	require.Len(t, captured, 21)

	// Every demo row is an expense with a derived category.
	for _, txn := range captured {
		assert.Equal(t, domain.TransactionTypeExpense, txn.Type)
		assert.NotEmpty(t, txn.Category)
	}

	// Pinned rows land in their fixed hour regardless of wall-clock time.
	hours := map[string]int{}
	for _, txn := range captured {
		hours[txn.Description] = txn.CreatedAt.Hour()
	}
	assert.Equal(t, 23, hours["Магазин одежды Zara"])
	assert.Equal(t, 1, hours["Кафе Coffee Room"])
	assert.Equal(t, 0, hours["Онлайн покупки Wildberries"])
}
