package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/contatoscormecial-rgb/zap/internal/models"
	"github.com/google/uuid"
)

// ListContacts returns the user's contact numbers, newest first
func (r *Repository) ListContacts(userID uuid.UUID) ([]models.ContactNumber, error) {
	query := `
		SELECT id, user_id, name, number, is_active, description, created_at, updated_at
		FROM zap.contact_numbers
		WHERE user_id = $1
		ORDER BY created_at DESC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, classify("list contact numbers", err)
	}
	defer rows.Close()

	list := make([]models.ContactNumber, 0)
	for rows.Next() {
		var c models.ContactNumber
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Number, &c.IsActive, &c.Description,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact number: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// CreateContact inserts a new contact number with a caller-generated UUID
func (r *Repository) CreateContact(c *models.ContactNumber) error {
	query := `
		INSERT INTO zap.contact_numbers (id, user_id, name, number, is_active, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`
	err := r.db.QueryRow(query, c.ID, c.UserID, c.Name, c.Number, c.IsActive, c.Description).
		Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return classify("create contact number", err)
	}
	return nil
}

// UpdateContact replaces all mutable fields of the user's contact number,
// including the active flag
func (r *Repository) UpdateContact(c *models.ContactNumber) error {
	query := `
		UPDATE zap.contact_numbers
		SET name = $1, number = $2, is_active = $3, description = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $5 AND user_id = $6
		RETURNING updated_at`
	err := r.db.QueryRow(query, c.Name, c.Number, c.IsActive, c.Description, c.ID, c.UserID).
		Scan(&c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return classify("update contact number", err)
	}
	return nil
}

// DeleteContact removes the user's contact number by identifier
func (r *Repository) DeleteContact(userID, id uuid.UUID) error {
	res, err := r.db.Exec(`DELETE FROM zap.contact_numbers WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return classify("delete contact number", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
