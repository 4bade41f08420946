package repository

import (
	"fmt"

	"github.com/contatoscormecial-rgb/zap/internal/models"
	"github.com/google/uuid"
)

// ListInvestments returns the user's investments, newest date first
func (r *Repository) ListInvestments(userID uuid.UUID) ([]models.Investment, error) {
	query := `
		SELECT id, user_id, description, amount, date, created_at
		FROM zap.investments
		WHERE user_id = $1
		ORDER BY date DESC, id DESC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, classify("list investments", err)
	}
	defer rows.Close()

	list := make([]models.Investment, 0)
	for rows.Next() {
		var inv models.Investment
		if err := rows.Scan(&inv.ID, &inv.UserID, &inv.Description, &inv.Amount, &inv.Date, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan investment: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// CreateInvestment inserts a new investment for the user
func (r *Repository) CreateInvestment(inv *models.Investment) error {
	query := `
		INSERT INTO zap.investments (user_id, description, amount, date, created_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, inv.UserID, inv.Description, inv.Amount, inv.Date).
		Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		return classify("create investment", err)
	}
	return nil
}

// UpdateInvestment replaces all mutable fields of the user's investment
func (r *Repository) UpdateInvestment(inv *models.Investment) error {
	query := `
		UPDATE zap.investments
		SET description = $1, amount = $2, date = $3
		WHERE id = $4 AND user_id = $5`
	res, err := r.db.Exec(query, inv.Description, inv.Amount, inv.Date, inv.ID, inv.UserID)
	if err != nil {
		return classify("update investment", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteInvestment removes the user's investment by identifier
func (r *Repository) DeleteInvestment(userID uuid.UUID, id int64) error {
	res, err := r.db.Exec(`DELETE FROM zap.investments WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return classify("delete investment", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
