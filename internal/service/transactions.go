package service

import (
	"time"

	"github.com/contatoscormecial-rgb/zap/internal/aggregate"
	"github.com/contatoscormecial-rgb/zap/internal/models"
	"github.com/google/uuid"
)

// TransactionFilter narrows a transaction listing. Zero values mean no
// filtering for the corresponding dimension.
type TransactionFilter struct {
	Range     aggregate.Range
	Query     string
	Recurring string // all | single | recurring
}

// ListTransactions returns the user's transactions after applying the
// in-memory filters, newest date first.
func (s *Service) ListTransactions(userID uuid.UUID, filter TransactionFilter) ([]models.Transaction, error) {
	list, err := s.repo.ListTransactions(userID)
	if err != nil {
		return nil, err
	}
	list = aggregate.FilterByRange(list, filter.Range, time.Now())
	list = aggregate.FilterByText(list, filter.Query)
	list = aggregate.FilterRecurring(list, filter.Recurring)
	return list, nil
}

// CreateTransaction validates and inserts a new transaction for the user
func (s *Service) CreateTransaction(userID uuid.UUID, t models.Transaction) (*models.Transaction, error) {
	if err := validateTransaction(&t); err != nil {
		return nil, err
	}
	t.UserID = userID
	if err := s.repo.CreateTransaction(&t); err != nil {
		return nil, err
	}
	s.log.Infof("Transaction created for user %s: %s %s", userID, t.Kind, t.Amount)
	return &t, nil
}

// UpdateTransaction replaces all mutable fields of the user's transaction
func (s *Service) UpdateTransaction(userID uuid.UUID, id int64, t models.Transaction) (*models.Transaction, error) {
	if err := validateTransaction(&t); err != nil {
		return nil, err
	}
	t.ID = id
	t.UserID = userID
	if err := s.repo.UpdateTransaction(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTransaction removes the user's transaction
func (s *Service) DeleteTransaction(userID uuid.UUID, id int64) error {
	return s.repo.DeleteTransaction(userID, id)
}

func validateTransaction(t *models.Transaction) error {
	if err := requireText("description", t.Description); err != nil {
		return err
	}
	if err := requireText("category", t.Category); err != nil {
		return err
	}
	if err := requireAmount("amount", t.Amount); err != nil {
		return err
	}
	if t.Kind != models.KindIncome && t.Kind != models.KindExpense {
		return validationErrorf("type must be %q or %q", models.KindIncome, models.KindExpense)
	}
	if t.Date.IsZero() {
		return validationErrorf("date is required")
	}
	return nil
}
