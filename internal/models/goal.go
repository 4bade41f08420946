package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal progress directions.
const (
	GoalAdd      = "add"
	GoalSubtract = "subtract"
)

// Goal represents a financial goal with an incrementally updated
// current amount. The current amount never goes below zero.
type Goal struct {
	ID            int64           `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	Text          string          `json:"text"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	CreatedAt     time.Time       `json:"created_at"`
}

// GoalStatus is a goal with its derived progress percentage.
type GoalStatus struct {
	Goal
	Progress decimal.Decimal `json:"progress"`
}
