package repository

import (
	"context"
	"database/sql"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"workforce.service/internal/core/model"
)

// PostgresLeaveRepository is the concrete implementation for a PostgreSQL database.
type PostgresLeaveRepository struct {
	DB *sql.DB
}

func NewLeaveRepository(db *sql.DB) LeaveRepository {
	return &PostgresLeaveRepository{DB: db}
}

func (r *PostgresLeaveRepository) Get(ctx context.Context, id int64) (*model.LeaveRequest, error) {
	query := `SELECT id, employee_id, start_date, end_date, status
              FROM leave_requests WHERE id = $1`

	lr := &model.LeaveRequest{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&lr.ID, &lr.EmployeeID, &lr.StartDate, &lr.EndDate, &lr.Status,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return lr, nil
}

func (r *PostgresLeaveRepository) FindByEmployee(ctx context.Context, employeeID int64) ([]model.LeaveRequest, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int64("app.employee_id", employeeID))

	query := `SELECT id, employee_id, start_date, end_date, status
              FROM leave_requests WHERE employee_id = $1 ORDER BY start_date, id`

	return r.queryList(ctx, query, employeeID)
}

func (r *PostgresLeaveRepository) FindByStatus(ctx context.Context, status model.LeaveStatus) ([]model.LeaveRequest, error) {
	query := `SELECT id, employee_id, start_date, end_date, status
              FROM leave_requests WHERE status = $1 ORDER BY start_date, id`

	return r.queryList(ctx, query, status)
}

// FindApprovedInRange matches approved requests intersecting the inclusive
// range: start_date <= end AND end_date >= start.
func (r *PostgresLeaveRepository) FindApprovedInRange(ctx context.Context, employeeID int64, start, end time.Time) ([]model.LeaveRequest, error) {
	query := `SELECT id, employee_id, start_date, end_date, status
              FROM leave_requests
              WHERE employee_id = $1 AND status = $2 AND start_date <= $3 AND end_date >= $4
              ORDER BY start_date, id`

	return r.queryList(ctx, query, employeeID, model.LeaveApproved, end, start)
}

func (r *PostgresLeaveRepository) ExistsApprovedOverlap(ctx context.Context, employeeID int64, start, end time.Time) (bool, error) {
	query := `SELECT EXISTS (
                  SELECT 1 FROM leave_requests
                  WHERE employee_id = $1 AND status = $2 AND start_date <= $3 AND end_date >= $4
              )`

	var exists bool
	err := r.DB.QueryRowContext(ctx, query, employeeID, model.LeaveApproved, end, start).Scan(&exists)
	return exists, err
}

func (r *PostgresLeaveRepository) Create(ctx context.Context, lr *model.LeaveRequest) (int64, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int64("app.employee_id", lr.EmployeeID))

	var id int64
	query := `INSERT INTO leave_requests (employee_id, start_date, end_date, status)
              VALUES ($1, $2, $3, $4) RETURNING id`

	err := r.DB.QueryRowContext(ctx, query, lr.EmployeeID, lr.StartDate, lr.EndDate, lr.Status).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateStatus only moves the row when it is still in the expected state,
// so two concurrent decisions cannot both succeed.
func (r *PostgresLeaveRepository) UpdateStatus(ctx context.Context, id int64, from, to model.LeaveStatus) (bool, error) {
	query := `UPDATE leave_requests SET status = $1 WHERE id = $2 AND status = $3`

	res, err := r.DB.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *PostgresLeaveRepository) queryList(ctx context.Context, query string, args ...any) ([]model.LeaveRequest, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leaves []model.LeaveRequest
	for rows.Next() {
		var lr model.LeaveRequest
		if err := rows.Scan(&lr.ID, &lr.EmployeeID, &lr.StartDate, &lr.EndDate, &lr.Status); err != nil {
			return nil, err
		}
		leaves = append(leaves, lr)
	}
	return leaves, rows.Err()
}
