package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Max-Ceph/zaman-hacknu/internal/core/domain"
	portsrepo "github.com/Max-Ceph/zaman-hacknu/internal/core/ports/repositories"
	portssvc "github.com/Max-Ceph/zaman-hacknu/internal/core/ports/services"
	"github.com/Max-Ceph/zaman-hacknu/internal/middleware"
	"github.com/Max-Ceph/zaman-hacknu/internal/utils"
)

// analyticsWindow is the trailing window of expense transactions considered.
const analyticsWindow = 30 * 24 * time.Hour

const (
	topCategoryThreshold   = 50000.0
	nightSpendingThreshold = 15.0
	savingsRate            = 0.15
	unreachableGoalMonths  = 999
)

// categoryTable maps spending categories to description keywords. Order
// matters: the first category with a matching keyword wins, so overlapping
// keywords across categories resolve by priority.
var categoryTable = []struct {
	Name     string
	Keywords []string
}{
	{"Продукты", []string{"магазин", "супермаркет", "grocery", "мегамарт", "small", "продукты"}},
	{"Транспорт", []string{"бензин", "заправка", "такси", "яндекс", "uber", "автобус", "метро"}},
	{"Развлечения", []string{"кино", "кафе", "ресторан", "бар", "клуб", "концерт", "игры"}},
	{"Одежда", []string{"zara", "h&m", "одежда", "обувь", "магазин одежды"}},
	{"Здоровье", []string{"аптека", "клиника", "больница", "врач", "лекарства"}},
	{"Связь", []string{"beeline", "kcell", "altel", "интернет", "телефон"}},
	{"Образование", []string{"курс", "обучение", "книга", "университет"}},
	{"Переводы", []string{"перевод", "transfer", "другу", "родителям"}},
}

// CategoryOther is the fallback category when no keyword matches.
const CategoryOther = "Прочее"

// CategorizeTransaction assigns a category from the transaction description
// by case-insensitive substring match against the fixed keyword table.
func CategorizeTransaction(description string) string {
	descLower := strings.ToLower(description)
	for _, cat := range categoryTable {
		for _, keyword := range cat.Keywords {
			if strings.Contains(descLower, keyword) {
				return cat.Name
			}
		}
	}
	return CategoryOther
}

// AnalyticsService aggregates a user's recent spending and derives
// personalized recommendation text.
type AnalyticsService struct {
	txnRepo portsrepo.TransactionRepository
}

// Ensure AnalyticsService implements the AnalyticsSvc interface
var _ portssvc.AnalyticsSvc = (*AnalyticsService)(nil)

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(txnRepo portsrepo.TransactionRepository) *AnalyticsService {
	return &AnalyticsService{txnRepo: txnRepo}
}

// AnalyzeSpendingHabits aggregates the user's expense transactions from the
// trailing 30 days. It returns (nil, nil) when the window is empty: nothing
// to report is not a failure. Night spending counts transactions whose
// stored-timestamp hour is >= 23 or < 6; no timezone conversion is applied.
func (s *AnalyticsService) AnalyzeSpendingHabits(ctx context.Context, userID string) (*domain.SpendingAnalysis, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	since := time.Now().UTC().Add(-analyticsWindow)
	transactions, err := s.txnRepo.ListExpensesSince(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	if len(transactions) == 0 {
		logger.Info("No expense transactions in analysis window", slog.String("user_id", userID))
		return nil, nil
	}

	analysis := &domain.SpendingAnalysis{
		Categories: make(map[string]float64),
	}

	for _, txn := range transactions {
		amount := txn.Amount.InexactFloat64()
		analysis.TotalExpenses += amount

		category := CategorizeTransaction(txn.Description)
		if _, seen := analysis.Categories[category]; !seen {
			analysis.CategoryOrder = append(analysis.CategoryOrder, category)
		}
		analysis.Categories[category] += amount

		hour := txn.CreatedAt.Hour()
		if hour >= 23 || hour < 6 {
			analysis.NightSpending += amount
		}
	}

	// First-seen order breaks ties deterministically.
	analysis.TopCategory = CategoryOther
	for _, category := range analysis.CategoryOrder {
		if total := analysis.Categories[category]; total > analysis.TopCategoryAmount {
			analysis.TopCategory = category
			analysis.TopCategoryAmount = total
		}
	}

	if analysis.TotalExpenses > 0 {
		analysis.NightSpendingPercentage = analysis.NightSpending / analysis.TotalExpenses * 100
	}

	logger.Info("Spending analysis computed",
		slog.String("user_id", userID),
		slog.Int("transactions", len(transactions)),
		slog.Float64("total_expenses", analysis.TotalExpenses),
		slog.String("top_category", analysis.TopCategory),
	)
	return analysis, nil
}

// GenerateRecommendations derives recommendation text from an analysis and
// the user's goals. Each recommendation is independent; applicable ones are
// joined with blank lines. An absent analysis yields an empty string.
func (s *AnalyticsService) GenerateRecommendations(analysis *domain.SpendingAnalysis, goals []domain.Goal) string {
	if analysis == nil {
		return ""
	}

	var recommendations []string

	if analysis.TopCategoryAmount > topCategoryThreshold {
		recommendations = append(recommendations, fmt.Sprintf(
			"💡 Вы тратите %s₸ в месяц на %s. Если сократить расходы на 20%%, можно сэкономить %s₸!",
			utils.FormatMoney(analysis.TopCategoryAmount),
			analysis.TopCategory,
			utils.FormatMoney(analysis.TopCategoryAmount*0.2),
		))
	}

	if analysis.NightSpendingPercentage > nightSpendingThreshold {
		recommendations = append(recommendations, fmt.Sprintf(
			"⚠️ %.0f%% ваших трат происходит ночью. Это может быть признаком импульсивных покупок. "+
				"Попробуйте перед покупкой подождать 24 часа или заменить шопинг на прогулку, медитацию или звонок другу.",
			analysis.NightSpendingPercentage,
		))
	}

	if len(goals) > 0 && analysis.TotalExpenses > 0 {
		if rec := s.goalProjection(analysis, goals); rec != "" {
			recommendations = append(recommendations, rec)
		}
	}

	return strings.Join(recommendations, "\n\n")
}

// goalProjection builds the savings projection for the first active goal.
func (s *AnalyticsService) goalProjection(analysis *domain.SpendingAnalysis, goals []domain.Goal) string {
	var activeGoal *domain.Goal
	for i := range goals {
		if goals[i].Status == domain.GoalStatusActive {
			activeGoal = &goals[i]
			break
		}
	}
	if activeGoal == nil {
		return ""
	}

	remaining := activeGoal.TargetAmount.InexactFloat64() - activeGoal.CurrentAmount.InexactFloat64()
	if remaining <= 0 {
		return ""
	}

	monthlyPotentialSavings := analysis.TotalExpenses * savingsRate
	monthsToGoal := float64(unreachableGoalMonths)
	if monthlyPotentialSavings > 0 {
		monthsToGoal = remaining / monthlyPotentialSavings
	}

	return fmt.Sprintf(
		"🎯 До вашей цели '%s' осталось %s₸. Если откладывать %s₸ в месяц (15%% от расходов), достигнете цели за %d месяцев!",
		activeGoal.GoalName,
		utils.FormatMoney(remaining),
		utils.FormatMoney(monthlyPotentialSavings),
		int(monthsToGoal),
	)
}
