package service

import (
	"github.com/contatoscormecial-rgb/zap/internal/models"
	"github.com/google/uuid"
)

// ListReminders returns the user's reminders ordered by date
func (s *Service) ListReminders(userID uuid.UUID) ([]models.Reminder, error) {
	return s.repo.ListReminders(userID)
}

// CreateReminder validates and inserts a new reminder for the user
func (s *Service) CreateReminder(userID uuid.UUID, rem models.Reminder) (*models.Reminder, error) {
	if err := validateReminder(&rem); err != nil {
		return nil, err
	}
	rem.UserID = userID
	if err := s.repo.CreateReminder(&rem); err != nil {
		return nil, err
	}
	return &rem, nil
}

// UpdateReminder replaces the text and date of the user's reminder
func (s *Service) UpdateReminder(userID uuid.UUID, id int64, rem models.Reminder) (*models.Reminder, error) {
	if err := validateReminder(&rem); err != nil {
		return nil, err
	}
	rem.ID = id
	rem.UserID = userID
	if err := s.repo.UpdateReminder(&rem); err != nil {
		return nil, err
	}
	return &rem, nil
}

// DeleteReminder removes the user's reminder
func (s *Service) DeleteReminder(userID uuid.UUID, id int64) error {
	return s.repo.DeleteReminder(userID, id)
}

func validateReminder(rem *models.Reminder) error {
	if err := requireText("text", rem.Text); err != nil {
		return err
	}
	if rem.Date.IsZero() {
		return validationErrorf("date is required")
	}
	return nil
}
