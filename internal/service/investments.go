package service

import (
	"github.com/contatoscormecial-rgb/zap/internal/aggregate"
	"github.com/contatoscormecial-rgb/zap/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListInvestments returns the user's investments, newest date first
func (s *Service) ListInvestments(userID uuid.UUID) ([]models.Investment, error) {
	return s.repo.ListInvestments(userID)
}

// InvestmentSummary computes the invested total and its cumulative
// evolution over time from the user's investments. When a rate source
// is configured, the total is also restated in the reference currency;
// a failed quote only logs, the summary still answers.
func (s *Service) InvestmentSummary(userID uuid.UUID) (*models.InvestmentSummary, error) {
	list, err := s.repo.ListInvestments(userID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, inv := range list {
		total = total.Add(inv.Amount)
	}

	summary := &models.InvestmentSummary{
		Total:  total,
		Series: aggregate.CumulativeByDate(list),
	}

	if s.rates != nil {
		rate, err := s.rates.GetCurrencyRate()
		if err != nil {
			s.log.Warnf("Reference rate unavailable: %v", err)
		} else if rate > 0 {
			ref := restateInReference(total, rate)
			summary.ReferenceCurrency = s.rates.Currency()
			summary.ReferenceTotal = &ref
		}
	}

	return summary, nil
}

// restateInReference converts a home-currency total into the reference
// currency at the given rate (home units per reference unit), rounded
// to cents.
func restateInReference(total decimal.Decimal, rate float64) decimal.Decimal {
	r := decimal.NewFromFloat(rate)
	if !r.IsPositive() {
		return decimal.Zero
	}
	return total.DivRound(r, 2)
}

// CreateInvestment validates and inserts a new investment for the user
func (s *Service) CreateInvestment(userID uuid.UUID, inv models.Investment) (*models.Investment, error) {
	if err := validateInvestment(&inv); err != nil {
		return nil, err
	}
	inv.UserID = userID
	if err := s.repo.CreateInvestment(&inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// UpdateInvestment replaces all mutable fields of the user's investment
func (s *Service) UpdateInvestment(userID uuid.UUID, id int64, inv models.Investment) (*models.Investment, error) {
	if err := validateInvestment(&inv); err != nil {
		return nil, err
	}
	inv.ID = id
	inv.UserID = userID
	if err := s.repo.UpdateInvestment(&inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// DeleteInvestment removes the user's investment
func (s *Service) DeleteInvestment(userID uuid.UUID, id int64) error {
	return s.repo.DeleteInvestment(userID, id)
}

func validateInvestment(inv *models.Investment) error {
	if err := requireText("description", inv.Description); err != nil {
		return err
	}
	if err := requireAmount("amount", inv.Amount); err != nil {
		return err
	}
	if inv.Date.IsZero() {
		return validationErrorf("date is required")
	}
	return nil
}
