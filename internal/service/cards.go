package service

import (
	"github.com/contatoscormecial-rgb/zap/internal/models"
	"github.com/google/uuid"
)

// ListCards returns the user's cards, newest first
func (s *Service) ListCards(userID uuid.UUID) ([]models.Card, error) {
	return s.repo.ListCards(userID)
}

// CreateCard validates and inserts a new card for the user
func (s *Service) CreateCard(userID uuid.UUID, c models.Card) (*models.Card, error) {
	if err := validateCard(&c); err != nil {
		return nil, err
	}
	c.UserID = userID
	if err := s.repo.CreateCard(&c); err != nil {
		return nil, err
	}
	s.log.Infof("Card created for user %s: %s", userID, c.Name)
	return &c, nil
}

// UpdateCard replaces all mutable fields of the user's card
func (s *Service) UpdateCard(userID uuid.UUID, id int64, c models.Card) (*models.Card, error) {
	if err := validateCard(&c); err != nil {
		return nil, err
	}
	c.ID = id
	c.UserID = userID
	if err := s.repo.UpdateCard(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// DeleteCard removes the user's card
func (s *Service) DeleteCard(userID uuid.UUID, id int64) error {
	return s.repo.DeleteCard(userID, id)
}

func validateCard(c *models.Card) error {
	if err := requireText("name", c.Name); err != nil {
		return err
	}
	if err := requireText("due_date", c.DueDate); err != nil {
		return err
	}
	if err := requireAmount("limit_amount", c.LimitAmount); err != nil {
		return err
	}
	if c.Kind != models.CardCredit && c.Kind != models.CardDebit {
		return validationErrorf("type must be %q or %q", models.CardCredit, models.CardDebit)
	}
	return nil
}
