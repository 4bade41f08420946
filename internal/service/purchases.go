package service

import (
	"github.com/contatoscormecial-rgb/zap/internal/models"
	"github.com/google/uuid"
)

// ListPurchases returns the user's future purchases, soonest first
func (s *Service) ListPurchases(userID uuid.UUID) ([]models.FuturePurchase, error) {
	return s.repo.ListPurchases(userID)
}

// CreatePurchase validates and inserts a new future purchase for the user
func (s *Service) CreatePurchase(userID uuid.UUID, p models.FuturePurchase) (*models.FuturePurchase, error) {
	if err := validatePurchase(&p); err != nil {
		return nil, err
	}
	p.UserID = userID
	if err := s.repo.CreatePurchase(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePurchase replaces all mutable fields of the user's future purchase
func (s *Service) UpdatePurchase(userID uuid.UUID, id int64, p models.FuturePurchase) (*models.FuturePurchase, error) {
	if err := validatePurchase(&p); err != nil {
		return nil, err
	}
	p.ID = id
	p.UserID = userID
	if err := s.repo.UpdatePurchase(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePurchase removes the user's future purchase
func (s *Service) DeletePurchase(userID uuid.UUID, id int64) error {
	return s.repo.DeletePurchase(userID, id)
}

func validatePurchase(p *models.FuturePurchase) error {
	if err := requireText("description", p.Description); err != nil {
		return err
	}
	if err := requireAmount("estimated_amount", p.EstimatedAmount); err != nil {
		return err
	}
	if p.PurchaseDate.IsZero() {
		return validationErrorf("purchase_date is required")
	}
	return nil
}
