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

// AccountService lists and creates user accounts.
type AccountService struct {
	accountRepo portsrepo.AccountRepository
}

// Ensure AccountService implements the AccountSvc interface
var _ portssvc.AccountSvc = (*AccountService)(nil)

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

// CreateAccount opens a new account for the user. Balance defaults to zero
// and must be an exact decimal string when provided.
func (s *AccountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	balance := decimal.Zero
	if req.Balance != "" {
		parsed, err := decimal.NewFromString(req.Balance)
		if err != nil {
			return nil, fmt.Errorf("invalid balance %q: %w", req.Balance, apperrors.ErrValidation)
		}
		balance = parsed
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	account := domain.Account{
		UserID:      userID,
		AccountName: req.AccountName,
		AccountType: domain.AccountType(req.AccountType),
		Balance:     balance,
		Currency:    currency,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}

	accountID, err := s.accountRepo.SaveAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}
	account.AccountID = accountID

	logger.Info("Account created", slog.String("account_id", accountID), slog.String("account_name", account.AccountName))
	return &account, nil
}

// ListAccounts returns all of the user's accounts.
func (s *AccountService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	return s.accountRepo.ListAccountsByUser(ctx, userID)
}
