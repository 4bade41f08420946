package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Card kinds.
const (
	CardCredit = "credit"
	CardDebit  = "debit"
)

// Card represents a credit or debit card. The due date is a free-text
// display label ("Dia 10"), not a calendar date.
type Card struct {
	ID          int64           `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	Name        string          `json:"name"`
	Kind        string          `json:"type"`
	DueDate     string          `json:"due_date"`
	LimitAmount decimal.Decimal `json:"limit_amount"`
	CreatedAt   time.Time       `json:"created_at"`
}
