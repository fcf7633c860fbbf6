package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalStatus is the lifecycle state of a savings goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
)

// Goal is a user savings target. CurrentAmount is not linked to transaction
// activity; goals and transactions are independent subsystems.
type Goal struct {
	GoalID        string
	UserID        string
	GoalType      string
	GoalName      string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Status        GoalStatus
	CreatedAt     time.Time
}
