package repository

import (
	"fmt"

	"github.com/contatoscormecial-rgb/zap/internal/models"
	"github.com/google/uuid"
)

// ListBudgets returns all of the user's spending limits
func (r *Repository) ListBudgets(userID uuid.UUID) ([]models.Budget, error) {
	query := `
		SELECT id, user_id, category, limit_amount, created_at
		FROM zap.spending_limits
		WHERE user_id = $1
		ORDER BY created_at`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, classify("list spending limits", err)
	}
	defer rows.Close()

	list := make([]models.Budget, 0)
	for rows.Next() {
		var b models.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.Category, &b.LimitAmount, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan spending limit: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// CreateBudget inserts a new spending limit for the user
func (r *Repository) CreateBudget(b *models.Budget) error {
	query := `
		INSERT INTO zap.spending_limits (user_id, category, limit_amount, created_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, b.UserID, b.Category, b.LimitAmount).
		Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return classify("create spending limit", err)
	}
	return nil
}

// UpdateBudget replaces the category and limit of the user's spending limit
func (r *Repository) UpdateBudget(b *models.Budget) error {
	query := `
		UPDATE zap.spending_limits
		SET category = $1, limit_amount = $2
		WHERE id = $3 AND user_id = $4`
	res, err := r.db.Exec(query, b.Category, b.LimitAmount, b.ID, b.UserID)
	if err != nil {
		return classify("update spending limit", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBudget removes the user's spending limit by identifier
func (r *Repository) DeleteBudget(userID uuid.UUID, id int64) error {
	res, err := r.db.Exec(`DELETE FROM zap.spending_limits WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return classify("delete spending limit", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
