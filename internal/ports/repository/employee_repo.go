package repository

import (
	"context"
	"database/sql"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"workforce.service/internal/core/model"
)

// PostgresEmployeeRepository is the concrete implementation for a PostgreSQL database.
type PostgresEmployeeRepository struct {
	DB *sql.DB
}

func NewEmployeeRepository(db *sql.DB) EmployeeRepository {
	return &PostgresEmployeeRepository{DB: db}
}

func (r *PostgresEmployeeRepository) Get(ctx context.Context, id int64) (*model.Employee, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int64("app.employee_id", id))

	query := `SELECT id, manager_id, name, email, password, basic_salary, daily_wage, status
              FROM employees WHERE id = $1`

	e := &model.Employee{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.ManagerID, &e.Name, &e.Email, &e.Password, &e.BasicSalary, &e.DailyWage, &e.Status,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *PostgresEmployeeRepository) FindByEmail(ctx context.Context, email string) (*model.Employee, error) {
	query := `SELECT id, manager_id, name, email, password, basic_salary, daily_wage, status
              FROM employees WHERE email = $1`

	e := &model.Employee{}
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&e.ID, &e.ManagerID, &e.Name, &e.Email, &e.Password, &e.BasicSalary, &e.DailyWage, &e.Status,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *PostgresEmployeeRepository) FindByManager(ctx context.Context, managerID int64) ([]model.Employee, error) {
	query := `SELECT id, manager_id, name, email, password, basic_salary, daily_wage, status
              FROM employees WHERE manager_id = $1 ORDER BY id`

	rows, err := r.DB.QueryContext(ctx, query, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []model.Employee
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.ID, &e.ManagerID, &e.Name, &e.Email, &e.Password, &e.BasicSalary, &e.DailyWage, &e.Status); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *PostgresEmployeeRepository) Create(ctx context.Context, e *model.Employee) (int64, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int64("app.manager_id", e.ManagerID))

	var id int64
	query := `INSERT INTO employees (manager_id, name, email, password, basic_salary, daily_wage, status)
              VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`

	err := r.DB.QueryRowContext(ctx, query,
		e.ManagerID, e.Name, e.Email, e.Password, e.BasicSalary, e.DailyWage, e.Status,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresEmployeeRepository) UpdateProfile(ctx context.Context, e *model.Employee) (bool, error) {
	query := `UPDATE employees
              SET name = $1,
                  email = $2,
                  basic_salary = $3,
                  daily_wage = $4
              WHERE id = $5`

	res, err := r.DB.ExecContext(ctx, query, e.Name, e.Email, e.BasicSalary, e.DailyWage, e.ID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// UpdateStatus is the compare-and-set serialization point for the approval
// machine: the row only changes when it is still in the expected state.
func (r *PostgresEmployeeRepository) UpdateStatus(ctx context.Context, id int64, from, to model.ApprovalStatus) (bool, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int64("app.employee_id", id))

	query := `UPDATE employees SET status = $1 WHERE id = $2 AND status = $3`

	res, err := r.DB.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
