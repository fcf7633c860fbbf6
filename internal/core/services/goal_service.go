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

// GoalService lists and creates savings goals.
type GoalService struct {
	goalRepo portsrepo.GoalRepository
}

// Ensure GoalService implements the GoalSvc interface
var _ portssvc.GoalSvc = (*GoalService)(nil)

// NewGoalService creates a new GoalService.
func NewGoalService(goalRepo portsrepo.GoalRepository) *GoalService {
	return &GoalService{goalRepo: goalRepo}
}

// CreateGoal registers a new active goal. CurrentAmount starts at zero and
// is never updated by transaction activity.
func (s *GoalService) CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.Goal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	targetAmount, err := decimal.NewFromString(req.TargetAmount)
	if err != nil {
		return nil, fmt.Errorf("invalid target amount %q: %w", req.TargetAmount, apperrors.ErrValidation)
	}
	if targetAmount.IsNegative() || targetAmount.IsZero() {
		return nil, fmt.Errorf("target amount must be positive: %w", apperrors.ErrValidation)
	}

	goalType := req.GoalType
	if goalType == "" {
		goalType = "other"
	}

	goal := domain.Goal{
		UserID:        userID,
		GoalType:      goalType,
		GoalName:      req.GoalName,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		Status:        domain.GoalStatusActive,
		CreatedAt:     time.Now().UTC(),
	}

	goalID, err := s.goalRepo.SaveGoal(ctx, goal)
	if err != nil {
		return nil, fmt.Errorf("failed to save goal: %w", err)
	}
	goal.GoalID = goalID

	logger.Info("Goal created", slog.String("goal_id", goalID), slog.String("goal_name", goal.GoalName))
	return &goal, nil
}

// ListGoals returns all of the user's goals.
func (s *GoalService) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	return s.goalRepo.ListGoalsByUser(ctx, userID)
}
