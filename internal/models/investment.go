package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Investment represents a single contribution to the user's portfolio
type Investment struct {
	ID          int64           `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        Date            `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// InvestmentPoint is one point of the cumulative invested series.
type InvestmentPoint struct {
	Date  Date            `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// InvestmentSummary holds the invested total and its evolution over
// time. The reference fields restate the total in a foreign currency
// and are present only when a rate source is configured and reachable.
type InvestmentSummary struct {
	Total             decimal.Decimal   `json:"total"`
	ReferenceCurrency string            `json:"reference_currency,omitempty"`
	ReferenceTotal    *decimal.Decimal  `json:"reference_total,omitempty"`
	Series            []InvestmentPoint `json:"series"`
}
