package repository

import (
	"context"
	"database/sql"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"workforce.service/internal/core/model"
)

// PostgresAttendanceRepository is the concrete implementation for a PostgreSQL database.
// The attendances table carries a UNIQUE (employee_id, date) constraint;
// Upsert leans on it.
type PostgresAttendanceRepository struct {
	DB *sql.DB
}

func NewAttendanceRepository(db *sql.DB) AttendanceRepository {
	return &PostgresAttendanceRepository{DB: db}
}

func (r *PostgresAttendanceRepository) RecordsForRange(ctx context.Context, employeeID int64, start, end time.Time) ([]model.Attendance, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int64("app.employee_id", employeeID))

	query := `SELECT id, employee_id, date, status
              FROM attendances
              WHERE employee_id = $1 AND date BETWEEN $2 AND $3
              ORDER BY date`

	rows, err := r.DB.QueryContext(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.Attendance
	for rows.Next() {
		var a model.Attendance
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Date, &a.Status); err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

func (r *PostgresAttendanceRepository) RecordForDate(ctx context.Context, employeeID int64, date time.Time) (*model.Attendance, error) {
	query := `SELECT id, employee_id, date, status
              FROM attendances WHERE employee_id = $1 AND date = $2`

	a := &model.Attendance{}
	err := r.DB.QueryRowContext(ctx, query, employeeID, date).Scan(&a.ID, &a.EmployeeID, &a.Date, &a.Status)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *PostgresAttendanceRepository) Upsert(ctx context.Context, a *model.Attendance) (int64, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int64("app.employee_id", a.EmployeeID))

	var id int64
	query := `INSERT INTO attendances (employee_id, date, status)
              VALUES ($1, $2, $3)
              ON CONFLICT (employee_id, date) DO UPDATE SET status = EXCLUDED.status
              RETURNING id`

	err := r.DB.QueryRowContext(ctx, query, a.EmployeeID, a.Date, a.Status).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
