package models

import (
	"time"

	"github.com/google/uuid"
)

// Theme preference values.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// User represents a user in the system
type User struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Not serialized
	Theme        string    `json:"theme"`
	CreatedAt    time.Time `json:"created_at"`
}
