package repository

import (
	"fmt"

	"github.com/contatoscormecial-rgb/zap/internal/models"
	"github.com/google/uuid"
)

// ListTransactions returns all of the user's transactions, newest date first
func (r *Repository) ListTransactions(userID uuid.UUID) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, description, category, amount, kind, date, recurring, created_at
		FROM zap.transactions
		WHERE user_id = $1
		ORDER BY date DESC, id DESC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, classify("list transactions", err)
	}
	defer rows.Close()

	list := make([]models.Transaction, 0)
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Description, &t.Category, &t.Amount,
			&t.Kind, &t.Date, &t.Recurring, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// ListExpensesBetween returns the user's expense transactions within the
// inclusive date range. Used to derive budget progress.
func (r *Repository) ListExpensesBetween(userID uuid.UUID, start, end models.Date) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, description, category, amount, kind, date, recurring, created_at
		FROM zap.transactions
		WHERE user_id = $1 AND kind = $2 AND date BETWEEN $3 AND $4`
	rows, err := r.db.Query(query, userID, models.KindExpense, start, end)
	if err != nil {
		return nil, classify("list expenses", err)
	}
	defer rows.Close()

	list := make([]models.Transaction, 0)
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Description, &t.Category, &t.Amount,
			&t.Kind, &t.Date, &t.Recurring, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// CreateTransaction inserts a new transaction for the user
func (r *Repository) CreateTransaction(t *models.Transaction) error {
	query := `
		INSERT INTO zap.transactions (user_id, description, category, amount, kind, date, recurring, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, t.UserID, t.Description, t.Category, t.Amount, t.Kind, t.Date, t.Recurring).
		Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return classify("create transaction", err)
	}
	return nil
}

// UpdateTransaction replaces all mutable fields of the user's transaction.
// Identifier, ownership and creation timestamp are immutable.
func (r *Repository) UpdateTransaction(t *models.Transaction) error {
	query := `
		UPDATE zap.transactions
		SET description = $1, category = $2, amount = $3, kind = $4, date = $5, recurring = $6
		WHERE id = $7 AND user_id = $8`
	res, err := r.db.Exec(query, t.Description, t.Category, t.Amount, t.Kind, t.Date, t.Recurring, t.ID, t.UserID)
	if err != nil {
		return classify("update transaction", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTransaction removes the user's transaction by identifier
func (r *Repository) DeleteTransaction(userID uuid.UUID, id int64) error {
	res, err := r.db.Exec(`DELETE FROM zap.transactions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return classify("delete transaction", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
