package repository

import (
	"context"
	"database/sql"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"workforce.service/internal/core/model"
)

// PostgresTaskRepository is the concrete implementation for a PostgreSQL database.
type PostgresTaskRepository struct {
	DB *sql.DB
}

func NewTaskRepository(db *sql.DB) TaskRepository {
	return &PostgresTaskRepository{DB: db}
}

func (r *PostgresTaskRepository) Get(ctx context.Context, id int64) (*model.Task, error) {
	query := `SELECT id, employee_id, title, description, due_date, status
              FROM tasks WHERE id = $1`

	t := &model.Task{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.EmployeeID, &t.Title, &t.Description, &t.DueDate, &t.Status,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *PostgresTaskRepository) FindByEmployee(ctx context.Context, employeeID int64) ([]model.Task, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int64("app.employee_id", employeeID))

	query := `SELECT id, employee_id, title, description, due_date, status
              FROM tasks WHERE employee_id = $1 ORDER BY due_date, id`

	rows, err := r.DB.QueryContext(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.EmployeeID, &t.Title, &t.Description, &t.DueDate, &t.Status); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *PostgresTaskRepository) Create(ctx context.Context, t *model.Task) (int64, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int64("app.employee_id", t.EmployeeID))

	var id int64
	query := `INSERT INTO tasks (employee_id, title, description, due_date, status)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`

	err := r.DB.QueryRowContext(ctx, query, t.EmployeeID, t.Title, t.Description, t.DueDate, t.Status).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateStatus only moves the row when it is still in the expected state.
func (r *PostgresTaskRepository) UpdateStatus(ctx context.Context, id int64, from, to model.TaskStatus) (bool, error) {
	query := `UPDATE tasks SET status = $1 WHERE id = $2 AND status = $3`

	res, err := r.DB.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
