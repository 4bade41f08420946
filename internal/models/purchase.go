package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FuturePurchase represents a planned purchase with an estimated cost
type FuturePurchase struct {
	ID              int64           `json:"id"`
	UserID          uuid.UUID       `json:"user_id"`
	Description     string          `json:"description"`
	EstimatedAmount decimal.Decimal `json:"estimated_amount"`
	PurchaseDate    Date            `json:"purchase_date"`
	CreatedAt       time.Time       `json:"created_at"`
}
