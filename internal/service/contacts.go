package service

import (
	"github.com/contatoscormecial-rgb/zap/internal/models"
	"github.com/google/uuid"
)

// ListContacts returns the user's contact numbers, newest first
func (s *Service) ListContacts(userID uuid.UUID) ([]models.ContactNumber, error) {
	return s.repo.ListContacts(userID)
}

// CreateContact validates and inserts a new contact number for the user
func (s *Service) CreateContact(userID uuid.UUID, c models.ContactNumber) (*models.ContactNumber, error) {
	if err := validateContact(&c); err != nil {
		return nil, err
	}
	c.ID = uuid.New()
	c.UserID = userID
	if err := s.repo.CreateContact(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateContact replaces all mutable fields of the user's contact number,
// including the active flag
func (s *Service) UpdateContact(userID, id uuid.UUID, c models.ContactNumber) (*models.ContactNumber, error) {
	if err := validateContact(&c); err != nil {
		return nil, err
	}
	c.ID = id
	c.UserID = userID
	if err := s.repo.UpdateContact(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// DeleteContact removes the user's contact number
func (s *Service) DeleteContact(userID, id uuid.UUID) error {
	return s.repo.DeleteContact(userID, id)
}

func validateContact(c *models.ContactNumber) error {
	if err := requireText("name", c.Name); err != nil {
		return err
	}
	return requireText("number", c.Number)
}
