package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Max-Ceph/zaman-hacknu/internal/core/domain"
	"github.com/Max-Ceph/zaman-hacknu/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func TestCategorizeTransaction(t *testing.T) {
	cases := []struct {
		description string
		want        string
	}{
		{"Магазин продуктов Small", "Продукты"},
		{"Яндекс.Такси", "Транспорт"},
		{"Ресторан Burger King", "Развлечения"},
		{"Аптека лекарства", "Здоровье"},
		{"Beeline оплата", "Связь"},
		{"Онлайн покупки Wildberries", "Прочее"},
		{"", "Прочее"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, services.CategorizeTransaction(tc.description), "description %q", tc.description)
	}
}

func TestCategorizeTransaction_PriorityOrder(t *testing.T) {
	// "Магазин одежды Zara" matches both "магазин" (Продукты) and "zara"
	// (Одежда); the earlier category in the table wins.
	assert.Equal(t, "Продукты", services.CategorizeTransaction("Магазин одежды Zara"))
	assert.Equal(t, "Продукты", services.CategorizeTransaction("Книжный магазин"))
	// Without the higher-priority keyword, the clothing keyword applies.
	assert.Equal(t, "Одежда", services.CategorizeTransaction("Zara"))
}

type AnalyticsServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  *services.AnalyticsService
}

func (suite *AnalyticsServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewAnalyticsService(suite.mockRepo)
}

func (suite *AnalyticsServiceTestSuite) TestAnalyze_NoTransactionsReturnsNil() {
	ctx := context.Background()
	suite.mockRepo.On("ListExpensesSince", ctx, "user-1", mock.AnythingOfType("time.Time")).
		Return([]domain.Transaction{}, nil).Once()

	analysis, err := suite.service.AnalyzeSpendingHabits(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Nil(analysis)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AnalyticsServiceTestSuite) TestAnalyze_AggregatesCategoriesAndNight() {
	ctx := context.Background()
	day := time.Date(2026, 8, 20, 14, 0, 0, 0, time.UTC)
	night := time.Date(2026, 8, 20, 23, 30, 0, 0, time.UTC)
	earlyMorning := time.Date(2026, 8, 21, 5, 59, 0, 0, time.UTC)

	txns := []domain.Transaction{
		{Description: "Магазин продуктов", Amount: decimal.NewFromInt(10000), CreatedAt: day},
		{Description: "Такси", Amount: decimal.NewFromInt(2000), CreatedAt: night},
		{Description: "Кофейня", Amount: decimal.NewFromInt(3000), CreatedAt: earlyMorning},
	}
	suite.mockRepo.On("ListExpensesSince", ctx, "user-1", mock.AnythingOfType("time.Time")).
		Return(txns, nil).Once()

	analysis, err := suite.service.AnalyzeSpendingHabits(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(analysis)
	suite.InDelta(15000.0, analysis.TotalExpenses, 0.001)
	suite.InDelta(10000.0, analysis.Categories["Продукты"], 0.001)
	suite.InDelta(2000.0, analysis.Categories["Транспорт"], 0.001)
	suite.InDelta(3000.0, analysis.Categories["Прочее"], 0.001)
	suite.Equal("Продукты", analysis.TopCategory)
	// 23:30 and 05:59 both count as night.
	suite.InDelta(5000.0, analysis.NightSpending, 0.001)
	suite.InDelta(100.0*5000/15000, analysis.NightSpendingPercentage, 0.001)
}

func (suite *AnalyticsServiceTestSuite) TestAnalyze_DemoDataGroundTruth() {
	ctx := context.Background()
	userID := "demo-user"

	// Capture the exact transactions the demo generator produces.
	var captured []domain.Transaction
	txnService := services.NewTransactionService(suite.mockRepo)
	suite.mockRepo.On("DeleteTransactionsByUser", ctx, userID).Return(int64(0), nil).Once()
	suite.mockRepo.On("SaveTransactions", ctx, mock.AnythingOfType("[]domain.Transaction")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).([]domain.Transaction)
		}).
		Return(21, nil).Once()

	count, err := txnService.GenerateDemoData(ctx, userID)
	suite.Require().NoError(err)
	suite.Equal(21, count)
	suite.Require().Len(captured, 21)

	// Rows without a pinned hour inherit the wall-clock hour; pin them to
	// midday so the night aggregate is stable no matter when the test runs.
	pinnedHours := map[string]bool{
		"Магазин одежды Zara":        true,
		"Кафе Coffee Room":           true,
		"Онлайн покупки Wildberries": true,
	}
	for i, txn := range captured {
		if !pinnedHours[txn.Description] {
			ts := txn.CreatedAt
			captured[i].CreatedAt = time.Date(ts.Year(), ts.Month(), ts.Day(), 12, 0, 0, 0, time.UTC)
		}
	}

	suite.mockRepo.On("ListExpensesSince", ctx, userID, mock.AnythingOfType("time.Time")).
		Return(captured, nil).Once()

	analysis, err := suite.service.AnalyzeSpendingHabits(ctx, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(analysis)
	suite.InDelta(229100.0, analysis.TotalExpenses, 0.001)
	suite.Equal("Продукты", analysis.TopCategory)
	suite.InDelta(120000.0, analysis.TopCategoryAmount, 0.001)
	suite.InDelta(29300.0, analysis.Categories["Транспорт"], 0.001)
	suite.InDelta(11000.0, analysis.Categories["Развлечения"], 0.001)
	suite.InDelta(12000.0, analysis.Categories["Здоровье"], 0.001)
	suite.InDelta(3500.0, analysis.Categories["Связь"], 0.001)
	suite.InDelta(53300.0, analysis.Categories["Прочее"], 0.001)
	suite.InDelta(79500.0, analysis.NightSpending, 0.001)
	suite.InDelta(34.70, analysis.NightSpendingPercentage, 0.01)
}

func (suite *AnalyticsServiceTestSuite) TestAnalyze_Idempotent() {
	ctx := context.Background()
	ts := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		{Description: "Кино", Amount: decimal.NewFromInt(4000), CreatedAt: ts},
		{Description: "Аптека", Amount: decimal.NewFromInt(5000), CreatedAt: ts},
	}
	suite.mockRepo.On("ListExpensesSince", ctx, "user-1", mock.AnythingOfType("time.Time")).
		Return(txns, nil).Twice()

	first, err := suite.service.AnalyzeSpendingHabits(ctx, "user-1")
	suite.Require().NoError(err)
	second, err := suite.service.AnalyzeSpendingHabits(ctx, "user-1")
	suite.Require().NoError(err)

	suite.Equal(first, second)
}

func (suite *AnalyticsServiceTestSuite) TestRecommendations_NilAnalysis() {
	suite.Equal("", suite.service.GenerateRecommendations(nil, nil))
}

func (suite *AnalyticsServiceTestSuite) TestRecommendations_QuietAnalysisYieldsNothing() {
	analysis := &domain.SpendingAnalysis{
		TotalExpenses:           40000,
		TopCategory:             "Продукты",
		TopCategoryAmount:       30000,
		NightSpendingPercentage: 5,
	}
	suite.Equal("", suite.service.GenerateRecommendations(analysis, nil))
}

func (suite *AnalyticsServiceTestSuite) TestRecommendations_TopCategoryWarning() {
	analysis := &domain.SpendingAnalysis{
		TotalExpenses:     120000,
		TopCategory:       "Продукты",
		TopCategoryAmount: 120000,
	}

	recs := suite.service.GenerateRecommendations(analysis, nil)

	suite.Contains(recs, "120,000₸")
	suite.Contains(recs, "Продукты")
	// 20% of the top category.
	suite.Contains(recs, "24,000₸")
}

func (suite *AnalyticsServiceTestSuite) TestRecommendations_NightSpendingWarning() {
	analysis := &domain.SpendingAnalysis{
		TotalExpenses:           100000,
		TopCategoryAmount:       40000,
		NightSpendingPercentage: 34.7,
	}

	recs := suite.service.GenerateRecommendations(analysis, nil)

	suite.Contains(recs, "35%")
	suite.Contains(recs, "импульсивных")
}

func (suite *AnalyticsServiceTestSuite) TestRecommendations_GoalProjection() {
	analysis := &domain.SpendingAnalysis{TotalExpenses: 100000, TopCategoryAmount: 10000}
	goals := []domain.Goal{
		{
			GoalName:      "Отпуск в Турции",
			TargetAmount:  decimal.NewFromInt(500000),
			CurrentAmount: decimal.NewFromInt(125000),
			Status:        domain.GoalStatusActive,
		},
	}

	recs := suite.service.GenerateRecommendations(analysis, goals)

	suite.Contains(recs, "Отпуск в Турции")
	suite.Contains(recs, "375,000₸")
	// 15% of monthly expenses.
	suite.Contains(recs, "15,000₸")
	// 375000 / 15000 = 25 months.
	suite.Contains(recs, "25 месяцев")
}

func (suite *AnalyticsServiceTestSuite) TestRecommendations_SkipsCompletedAndReachedGoals() {
	analysis := &domain.SpendingAnalysis{TotalExpenses: 100000, TopCategoryAmount: 10000}
	goals := []domain.Goal{
		{
			GoalName:      "Завершенная",
			TargetAmount:  decimal.NewFromInt(100000),
			CurrentAmount: decimal.NewFromInt(10000),
			Status:        domain.GoalStatusCompleted,
		},
		{
			GoalName:      "Достигнутая",
			TargetAmount:  decimal.NewFromInt(50000),
			CurrentAmount: decimal.NewFromInt(50000),
			Status:        domain.GoalStatusActive,
		},
	}

	suite.Equal("", suite.service.GenerateRecommendations(analysis, goals))
}

func TestAnalyticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}
