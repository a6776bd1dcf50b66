package repository

import (
	"context"
	"database/sql"

	"workforce.service/internal/core/model"
)

// PostgresNotificationRepository tracks outbound email jobs by event id.
type PostgresNotificationRepository struct {
	DB *sql.DB
}

func NewNotificationRepository(db *sql.DB) NotificationRepository {
	return &PostgresNotificationRepository{DB: db}
}

// Create registers a pending delivery for an event. Redelivered events
// hit the primary key and leave the existing row untouched.
func (r *PostgresNotificationRepository) Create(ctx context.Context, eventID string, employeeID int64) error {
	query := `INSERT INTO notifications (event_id, employee_id, status, retry_count)
              VALUES ($1, $2, $3, 0)
              ON CONFLICT (event_id) DO NOTHING`

	_, err := r.DB.ExecContext(ctx, query, eventID, employeeID, model.NotificationPending)
	return err
}

func (r *PostgresNotificationRepository) GetStatus(ctx context.Context, eventID string) (model.NotificationStatus, int, error) {
	var status model.NotificationStatus
	var retryCount int

	query := `SELECT status, retry_count FROM notifications WHERE event_id = $1`

	err := r.DB.QueryRowContext(ctx, query, eventID).Scan(&status, &retryCount)
	if err == sql.ErrNoRows {
		return "", 0, nil
	}
	if err != nil {
		return "", 0, err
	}
	return status, retryCount, nil
}

func (r *PostgresNotificationRepository) UpdateStatus(ctx context.Context, eventID string, status model.NotificationStatus, retryCount int) error {
	query := `UPDATE notifications SET status = $1, retry_count = $2 WHERE event_id = $3`
	_, err := r.DB.ExecContext(ctx, query, status, retryCount, eventID)
	return err
}
