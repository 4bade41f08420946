package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction kinds. Amounts are always positive; the sign is implied
// by the kind.
const (
	KindIncome  = "income"
	KindExpense = "expense"
)

// Transaction represents a single income or expense entry
type Transaction struct {
	ID          int64           `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        string          `json:"type"`
	Date        Date            `json:"date"`
	Recurring   bool            `json:"recurring"`
	CreatedAt   time.Time       `json:"created_at"`
}
