package dto

import (
	"time"

	"github.com/Max-Ceph/zaman-hacknu/internal/core/domain"
)

// CreateGoalRequest carries the fields for a new savings goal.
type CreateGoalRequest struct {
	GoalName     string `json:"goalName" binding:"required"`
	GoalType     string `json:"goalType"`
	TargetAmount string `json:"targetAmount" binding:"required"`
}

// GoalResponse is the public view of a goal.
type GoalResponse struct {
	GoalID        string    `json:"goalId"`
	GoalName      string    `json:"goalName"`
	GoalType      string    `json:"goalType"`
	TargetAmount  string    `json:"targetAmount"`
	CurrentAmount string    `json:"currentAmount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToGoalResponse maps a domain goal.
func ToGoalResponse(g domain.Goal) GoalResponse {
	return GoalResponse{
		GoalID:        g.GoalID,
		GoalName:      g.GoalName,
		GoalType:      g.GoalType,
		TargetAmount:  g.TargetAmount.StringFixed(2),
		CurrentAmount: g.CurrentAmount.StringFixed(2),
		Status:        string(g.Status),
		CreatedAt:     g.CreatedAt,
	}
}

// ToGoalResponses maps a slice of domain goals.
func ToGoalResponses(goals []domain.Goal) []GoalResponse {
	out := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, ToGoalResponse(g))
	}
	return out
}
