package domain

// SpendingAnalysis is the derived result of aggregating a user's expense
// transactions over the trailing 30 days. It is recomputed on every request
// and never persisted.
//
// CategoryOrder records categories in first-seen insertion order so that the
// top-category tie-break stays deterministic; Categories alone would iterate
// in random map order.
type SpendingAnalysis struct {
	TotalExpenses           float64            `json:"total_expenses"`
	Categories              map[string]float64 `json:"categories"`
	CategoryOrder           []string           `json:"-"`
	TopCategory             string             `json:"top_category"`
	TopCategoryAmount       float64            `json:"top_category_amount"`
	NightSpending           float64            `json:"night_spending"`
	NightSpendingPercentage float64            `json:"night_spending_percentage"`
}
