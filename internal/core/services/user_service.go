package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Max-Ceph/zaman-hacknu/internal/apperrors"
	"github.com/Max-Ceph/zaman-hacknu/internal/core/domain"
	portsrepo "github.com/Max-Ceph/zaman-hacknu/internal/core/ports/repositories"
	portssvc "github.com/Max-Ceph/zaman-hacknu/internal/core/ports/services"
	"github.com/Max-Ceph/zaman-hacknu/internal/dto"
	"github.com/Max-Ceph/zaman-hacknu/internal/middleware"
	"golang.org/x/crypto/bcrypt"
)

// defaultCurrency is assigned to every new profile.
const defaultCurrency = "KZT"

// UserService handles registration and credential checks.
type UserService struct {
	userRepo portsrepo.UserRepository
}

// Ensure UserService implements the UserSvc interface
var _ portssvc.UserSvc = (*UserService)(nil)

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates a new user with a bcrypt-hashed password. The email is
// lowercased before lookup and storage.
func (s *UserService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	email := strings.ToLower(req.Email)

	existing, err := s.userRepo.FindUserByUsername(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("user with this email already exists: %w", apperrors.ErrDuplicate)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		Username:     email,
		PasswordHash: hashed,
		Profile: domain.UserProfile{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Currency:  defaultCurrency,
		},
		Preferences: domain.NotificationPreferences{Email: true, Push: false},
		CreatedAt:   time.Now().UTC(),
	}

	userID, err := s.userRepo.SaveUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	user.UserID = userID

	logger.Info("User registered", slog.String("user_id", userID))
	return &user, nil
}

// Authenticate verifies the email/password pair. Invalid credentials map to
// ErrUnauthorized without distinguishing unknown email from bad password.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// GetUser fetches a user by ID.
func (s *UserService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}
