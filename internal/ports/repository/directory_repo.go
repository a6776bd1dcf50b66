package repository

import (
	"context"
	"database/sql"

	"workforce.service/internal/core/model"
)

// PostgresManagerRepository is the concrete implementation for a PostgreSQL database.
type PostgresManagerRepository struct {
	DB *sql.DB
}

func NewManagerRepository(db *sql.DB) ManagerRepository {
	return &PostgresManagerRepository{DB: db}
}

func (r *PostgresManagerRepository) Get(ctx context.Context, id int64) (*model.Manager, error) {
	query := `SELECT id, name, email, password FROM managers WHERE id = $1`

	m := &model.Manager{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Name, &m.Email, &m.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *PostgresManagerRepository) FindByEmail(ctx context.Context, email string) (*model.Manager, error) {
	query := `SELECT id, name, email, password FROM managers WHERE email = $1`

	m := &model.Manager{}
	err := r.DB.QueryRowContext(ctx, query, email).Scan(&m.ID, &m.Name, &m.Email, &m.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *PostgresManagerRepository) Create(ctx context.Context, m *model.Manager) (int64, error) {
	var id int64
	query := `INSERT INTO managers (name, email, password) VALUES ($1, $2, $3) RETURNING id`

	err := r.DB.QueryRowContext(ctx, query, m.Name, m.Email, m.Password).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresManagerRepository) List(ctx context.Context) ([]model.Manager, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, email, password FROM managers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var managers []model.Manager
	for rows.Next() {
		var m model.Manager
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Password); err != nil {
			return nil, err
		}
		managers = append(managers, m)
	}
	return managers, rows.Err()
}

// PostgresSuperAdminRepository is the concrete implementation for a PostgreSQL database.
type PostgresSuperAdminRepository struct {
	DB *sql.DB
}

func NewSuperAdminRepository(db *sql.DB) SuperAdminRepository {
	return &PostgresSuperAdminRepository{DB: db}
}

func (r *PostgresSuperAdminRepository) FindByEmail(ctx context.Context, email string) (*model.SuperAdmin, error) {
	query := `SELECT id, email, password FROM super_admins WHERE email = $1`

	a := &model.SuperAdmin{}
	err := r.DB.QueryRowContext(ctx, query, email).Scan(&a.ID, &a.Email, &a.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}
