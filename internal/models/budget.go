package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget progress tiers driven by the unclamped percentage:
// red above 90, yellow above 70, green otherwise.
const (
	TierGreen  = "green"
	TierYellow = "yellow"
	TierRed    = "red"
)

// Budget is a monthly spending limit for one category.
// Spent-to-date is derived from expense transactions, never stored.
type Budget struct {
	ID          int64           `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	Category    string          `json:"category"`
	LimitAmount decimal.Decimal `json:"limit_amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

// BudgetStatus is a budget with its derived current-month progress.
type BudgetStatus struct {
	Budget
	Spent      decimal.Decimal `json:"spent"`
	Percentage decimal.Decimal `json:"percentage"`
	Tier       string          `json:"tier"`
}
