package dto

import "github.com/Max-Ceph/zaman-hacknu/internal/core/domain"

// AnalysisResponse is the public view of a spending analysis.
type AnalysisResponse struct {
	TotalExpenses           float64            `json:"total_expenses"`
	Categories              map[string]float64 `json:"categories"`
	TopCategory             string             `json:"top_category"`
	NightSpendingPercentage float64            `json:"night_spending_percentage"`
}

// AnalyticsResponse bundles the analysis with the recommendation text.
type AnalyticsResponse struct {
	Analysis        AnalysisResponse `json:"analysis"`
	Recommendations string           `json:"recommendations"`
}

// ToAnalyticsResponse maps a domain analysis and its recommendations.
func ToAnalyticsResponse(a *domain.SpendingAnalysis, recommendations string) AnalyticsResponse {
	return AnalyticsResponse{
		Analysis: AnalysisResponse{
			TotalExpenses:           a.TotalExpenses,
			Categories:              a.Categories,
			TopCategory:             a.TopCategory,
			NightSpendingPercentage: a.NightSpendingPercentage,
		},
		Recommendations: recommendations,
	}
}
