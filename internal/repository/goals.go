package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/contatoscormecial-rgb/zap/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListGoals returns the user's financial goals, oldest first
func (r *Repository) ListGoals(userID uuid.UUID) ([]models.Goal, error) {
	query := `
		SELECT id, user_id, text, target_amount, current_amount, created_at
		FROM zap.goals
		WHERE user_id = $1
		ORDER BY created_at`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, classify("list goals", err)
	}
	defer rows.Close()

	list := make([]models.Goal, 0)
	for rows.Next() {
		var g models.Goal
		if err := rows.Scan(&g.ID, &g.UserID, &g.Text, &g.TargetAmount, &g.CurrentAmount, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		list = append(list, g)
	}
	return list, rows.Err()
}

// FindGoal retrieves one of the user's goals by identifier
func (r *Repository) FindGoal(userID uuid.UUID, id int64) (*models.Goal, error) {
	g := &models.Goal{}
	query := `
		SELECT id, user_id, text, target_amount, current_amount, created_at
		FROM zap.goals
		WHERE id = $1 AND user_id = $2`
	err := r.db.QueryRow(query, id, userID).
		Scan(&g.ID, &g.UserID, &g.Text, &g.TargetAmount, &g.CurrentAmount, &g.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, classify("find goal", err)
	}
	return g, nil
}

// CreateGoal inserts a new goal for the user with a zero current amount
func (r *Repository) CreateGoal(g *models.Goal) error {
	query := `
		INSERT INTO zap.goals (user_id, text, target_amount, current_amount, created_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, g.UserID, g.Text, g.TargetAmount, g.CurrentAmount).
		Scan(&g.ID, &g.CreatedAt)
	if err != nil {
		return classify("create goal", err)
	}
	return nil
}

// UpdateGoalCurrent persists only the goal's current amount. The goal
// update is relative at the service layer; last write wins here.
func (r *Repository) UpdateGoalCurrent(userID uuid.UUID, id int64, current decimal.Decimal) error {
	query := `
		UPDATE zap.goals
		SET current_amount = $1
		WHERE id = $2 AND user_id = $3`
	res, err := r.db.Exec(query, current, id, userID)
	if err != nil {
		return classify("update goal", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteGoal removes the user's goal by identifier
func (r *Repository) DeleteGoal(userID uuid.UUID, id int64) error {
	res, err := r.db.Exec(`DELETE FROM zap.goals WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return classify("delete goal", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
