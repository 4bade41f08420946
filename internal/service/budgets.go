package service

import (
	"time"

	"github.com/contatoscormecial-rgb/zap/internal/aggregate"
	"github.com/contatoscormecial-rgb/zap/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListBudgets returns the user's spending limits with derived progress:
// spent-to-date is the sum of the current month's expense transactions in
// each budget's category, matched by category string.
func (s *Service) ListBudgets(userID uuid.UUID) ([]models.BudgetStatus, error) {
	budgets, err := s.repo.ListBudgets(userID)
	if err != nil {
		return nil, err
	}

	start, end, _ := aggregate.Bounds(aggregate.RangeCurrentMonth, time.Now())
	expenses, err := s.repo.ListExpensesBetween(userID, start, end)
	if err != nil {
		return nil, err
	}

	spentByCategory := make(map[string]decimal.Decimal)
	for _, t := range expenses {
		spentByCategory[t.Category] = spentByCategory[t.Category].Add(t.Amount)
	}

	statuses := make([]models.BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		spent := spentByCategory[b.Category]
		percentage := aggregate.PercentOfLimit(spent, b.LimitAmount)
		statuses = append(statuses, models.BudgetStatus{
			Budget:     b,
			Spent:      spent,
			Percentage: percentage,
			Tier:       aggregate.Tier(percentage),
		})
	}
	return statuses, nil
}

// CreateBudget validates and inserts a new spending limit for the user
func (s *Service) CreateBudget(userID uuid.UUID, b models.Budget) (*models.Budget, error) {
	if err := validateBudget(&b); err != nil {
		return nil, err
	}
	b.UserID = userID
	if err := s.repo.CreateBudget(&b); err != nil {
		return nil, err
	}
	s.log.Infof("Spending limit created for user %s: %s", userID, b.Category)
	return &b, nil
}

// UpdateBudget replaces the category and limit of the user's spending limit
func (s *Service) UpdateBudget(userID uuid.UUID, id int64, b models.Budget) (*models.Budget, error) {
	if err := validateBudget(&b); err != nil {
		return nil, err
	}
	b.ID = id
	b.UserID = userID
	if err := s.repo.UpdateBudget(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

// DeleteBudget removes the user's spending limit
func (s *Service) DeleteBudget(userID uuid.UUID, id int64) error {
	return s.repo.DeleteBudget(userID, id)
}

func validateBudget(b *models.Budget) error {
	if err := requireText("category", b.Category); err != nil {
		return err
	}
	return requireAmount("limit_amount", b.LimitAmount)
}
