package repository

import (
	"fmt"

	"github.com/contatoscormecial-rgb/zap/internal/models"
	"github.com/google/uuid"
)

// ListReminders returns the user's reminders ordered by date
func (r *Repository) ListReminders(userID uuid.UUID) ([]models.Reminder, error) {
	query := `
		SELECT id, user_id, text, date, created_at
		FROM zap.reminders
		WHERE user_id = $1
		ORDER BY date`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, classify("list reminders", err)
	}
	defer rows.Close()

	list := make([]models.Reminder, 0)
	for rows.Next() {
		var rem models.Reminder
		if err := rows.Scan(&rem.ID, &rem.UserID, &rem.Text, &rem.Date, &rem.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		list = append(list, rem)
	}
	return list, rows.Err()
}

// DueReminders returns every reminder dated the given day, joined with
// the owner's name and email for the daily digest.
func (r *Repository) DueReminders(day models.Date) ([]models.DueReminder, error) {
	query := `
		SELECT rem.id, rem.user_id, rem.text, rem.date, rem.created_at, u.full_name, u.email
		FROM zap.reminders rem
		JOIN zap.users u ON u.id = rem.user_id
		WHERE rem.date = $1
		ORDER BY rem.user_id, rem.created_at`
	rows, err := r.db.Query(query, day)
	if err != nil {
		return nil, classify("list due reminders", err)
	}
	defer rows.Close()

	list := make([]models.DueReminder, 0)
	for rows.Next() {
		var d models.DueReminder
		if err := rows.Scan(&d.ID, &d.UserID, &d.Text, &d.Date, &d.CreatedAt, &d.UserName, &d.UserEmail); err != nil {
			return nil, fmt.Errorf("failed to scan due reminder: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// CreateReminder inserts a new reminder for the user
func (r *Repository) CreateReminder(rem *models.Reminder) error {
	query := `
		INSERT INTO zap.reminders (user_id, text, date, created_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, rem.UserID, rem.Text, rem.Date).
		Scan(&rem.ID, &rem.CreatedAt)
	if err != nil {
		return classify("create reminder", err)
	}
	return nil
}

// UpdateReminder replaces the text and date of the user's reminder
func (r *Repository) UpdateReminder(rem *models.Reminder) error {
	query := `
		UPDATE zap.reminders
		SET text = $1, date = $2
		WHERE id = $3 AND user_id = $4`
	res, err := r.db.Exec(query, rem.Text, rem.Date, rem.ID, rem.UserID)
	if err != nil {
		return classify("update reminder", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteReminder removes the user's reminder by identifier
func (r *Repository) DeleteReminder(userID uuid.UUID, id int64) error {
	res, err := r.db.Exec(`DELETE FROM zap.reminders WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return classify("delete reminder", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
