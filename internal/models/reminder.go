package models

import (
	"time"

	"github.com/google/uuid"
)

// Reminder represents a dated note shown to the user
type Reminder struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Text      string    `json:"text"`
	Date      Date      `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// DueReminder pairs a reminder with its owner's contact details for
// the daily digest job.
type DueReminder struct {
	Reminder
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}
