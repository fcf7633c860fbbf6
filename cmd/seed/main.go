// Command seed provisions demo accounts and goals for the most recently
// registered user. Safe to re-run: it only fills in what is missing.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/Max-Ceph/zaman-hacknu/internal/adapters/database/mongodb"
	"github.com/Max-Ceph/zaman-hacknu/internal/core/domain"
	"github.com/Max-Ceph/zaman-hacknu/pkg/config"
	"github.com/Max-Ceph/zaman-hacknu/pkg/database"
	"github.com/shopspring/decimal"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.NewMongoDatabase(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		logger.Error("Failed to connect to MongoDB", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := database.CloseMongo(ctx, db); cerr != nil {
			logger.Error("Error closing MongoDB connection", slog.String("error", cerr.Error()))
		}
	}()

	userRepo := mongodb.NewUserRepository(db)
	accountRepo := mongodb.NewAccountRepository(db)
	goalRepo := mongodb.NewGoalRepository(db)

	user, err := userRepo.FindLatestUser(ctx)
	if err != nil {
		logger.Error("No user to seed, register one first", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Seeding demo data", slog.String("user_id", user.UserID), slog.String("email", user.Username))

	if err := seedAccounts(ctx, logger, accountRepo, user.UserID); err != nil {
		logger.Error("Failed to seed accounts", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := seedGoals(ctx, logger, goalRepo, user.UserID); err != nil {
		logger.Error("Failed to seed goals", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Seeding complete")
}

func seedAccounts(ctx context.Context, logger *slog.Logger, repo *mongodb.AccountRepository, userID string) error {
	existing, err := repo.ListAccountsByUser(ctx, userID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Info("Accounts already exist, skipping", slog.Int("count", len(existing)))
		return nil
	}

	accounts := []domain.Account{
		{
			UserID:      userID,
			AccountName: "Основной счет",
			AccountType: domain.AccountTypeChecking,
			Balance:     decimal.RequireFromString("150000.50"),
			Currency:    "KZT",
			IsActive:    true,
			CreatedAt:   time.Now().UTC(),
		},
		{
			UserID:      userID,
			AccountName: "Сберегательный счет",
			AccountType: domain.AccountTypeSavings,
			Balance:     decimal.RequireFromString("75000.00"),
			Currency:    "KZT",
			IsActive:    true,
			CreatedAt:   time.Now().UTC(),
		},
	}
	for _, account := range accounts {
		id, err := repo.SaveAccount(ctx, account)
		if err != nil {
			return err
		}
		logger.Info("Account created", slog.String("account_id", id), slog.String("name", account.AccountName))
	}
	return nil
}

func seedGoals(ctx context.Context, logger *slog.Logger, repo *mongodb.GoalRepository, userID string) error {
	existing, err := repo.ListGoalsByUser(ctx, userID)
	if err != nil {
		return err
	}
	if len(existing) >= 2 {
		logger.Info("Goals already exist, skipping", slog.Int("count", len(existing)))
		return nil
	}

	goals := []domain.Goal{
		{
			UserID:        userID,
			GoalType:      "vacation",
			GoalName:      "Отпуск в Турции",
			TargetAmount:  decimal.NewFromInt(500000),
			CurrentAmount: decimal.NewFromInt(125000),
			Status:        domain.GoalStatusActive,
			CreatedAt:     time.Now().UTC(),
		},
		{
			UserID:        userID,
			GoalType:      "purchase",
			GoalName:      "Новый ноутбук",
			TargetAmount:  decimal.NewFromInt(300000),
			CurrentAmount: decimal.NewFromInt(50000),
			Status:        domain.GoalStatusActive,
			CreatedAt:     time.Now().UTC(),
		},
	}
	for _, goal := range goals[:2-len(existing)] {
		id, err := repo.SaveGoal(ctx, goal)
		if err != nil {
			return err
		}
		logger.Info("Goal created", slog.String("goal_id", id), slog.String("name", goal.GoalName))
	}
	return nil
}
