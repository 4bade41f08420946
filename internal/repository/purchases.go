package repository

import (
	"fmt"

	"github.com/contatoscormecial-rgb/zap/internal/models"
	"github.com/google/uuid"
)

// ListPurchases returns the user's future purchases, soonest first
func (r *Repository) ListPurchases(userID uuid.UUID) ([]models.FuturePurchase, error) {
	query := `
		SELECT id, user_id, description, estimated_amount, purchase_date, created_at
		FROM zap.future_purchases
		WHERE user_id = $1
		ORDER BY purchase_date`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, classify("list future purchases", err)
	}
	defer rows.Close()

	list := make([]models.FuturePurchase, 0)
	for rows.Next() {
		var p models.FuturePurchase
		if err := rows.Scan(&p.ID, &p.UserID, &p.Description, &p.EstimatedAmount, &p.PurchaseDate, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan future purchase: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// CreatePurchase inserts a new future purchase for the user
func (r *Repository) CreatePurchase(p *models.FuturePurchase) error {
	query := `
		INSERT INTO zap.future_purchases (user_id, description, estimated_amount, purchase_date, created_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, p.UserID, p.Description, p.EstimatedAmount, p.PurchaseDate).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return classify("create future purchase", err)
	}
	return nil
}

// UpdatePurchase replaces all mutable fields of the user's future purchase
func (r *Repository) UpdatePurchase(p *models.FuturePurchase) error {
	query := `
		UPDATE zap.future_purchases
		SET description = $1, estimated_amount = $2, purchase_date = $3
		WHERE id = $4 AND user_id = $5`
	res, err := r.db.Exec(query, p.Description, p.EstimatedAmount, p.PurchaseDate, p.ID, p.UserID)
	if err != nil {
		return classify("update future purchase", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePurchase removes the user's future purchase by identifier
func (r *Repository) DeletePurchase(userID uuid.UUID, id int64) error {
	res, err := r.db.Exec(`DELETE FROM zap.future_purchases WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return classify("delete future purchase", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
