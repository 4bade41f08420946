package repository

import (
	"fmt"

	"github.com/contatoscormecial-rgb/zap/internal/models"
	"github.com/google/uuid"
)

// ListCards returns all of the user's cards, newest first
func (r *Repository) ListCards(userID uuid.UUID) ([]models.Card, error) {
	query := `
		SELECT id, user_id, name, kind, due_date, limit_amount, created_at
		FROM zap.cards
		WHERE user_id = $1
		ORDER BY created_at DESC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, classify("list cards", err)
	}
	defer rows.Close()

	list := make([]models.Card, 0)
	for rows.Next() {
		var c models.Card
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Kind, &c.DueDate, &c.LimitAmount, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// CreateCard inserts a new card for the user
func (r *Repository) CreateCard(c *models.Card) error {
	query := `
		INSERT INTO zap.cards (user_id, name, kind, due_date, limit_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, c.UserID, c.Name, c.Kind, c.DueDate, c.LimitAmount).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return classify("create card", err)
	}
	return nil
}

// UpdateCard replaces all mutable fields of the user's card
func (r *Repository) UpdateCard(c *models.Card) error {
	query := `
		UPDATE zap.cards
		SET name = $1, kind = $2, due_date = $3, limit_amount = $4
		WHERE id = $5 AND user_id = $6`
	res, err := r.db.Exec(query, c.Name, c.Kind, c.DueDate, c.LimitAmount, c.ID, c.UserID)
	if err != nil {
		return classify("update card", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCard removes the user's card by identifier
func (r *Repository) DeleteCard(userID uuid.UUID, id int64) error {
	res, err := r.db.Exec(`DELETE FROM zap.cards WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return classify("delete card", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
