package repository

import (
	"context"
	"database/sql"

	"workforce.service/internal/core/model"
)

// PostgresAnnouncementRepository is the concrete implementation for a PostgreSQL database.
type PostgresAnnouncementRepository struct {
	DB *sql.DB
}

func NewAnnouncementRepository(db *sql.DB) AnnouncementRepository {
	return &PostgresAnnouncementRepository{DB: db}
}

func (r *PostgresAnnouncementRepository) Create(ctx context.Context, a *model.Announcement) (int64, error) {
	var id int64
	query := `INSERT INTO announcements (title, message, created_at) VALUES ($1, $2, $3) RETURNING id`

	err := r.DB.QueryRowContext(ctx, query, a.Title, a.Message, a.CreatedAt).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresAnnouncementRepository) List(ctx context.Context) ([]model.Announcement, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, title, message, created_at FROM announcements ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var announcements []model.Announcement
	for rows.Next() {
		var a model.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Message, &a.CreatedAt); err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}
