package core

import (
	"context"
	"fmt"
	"time"

	"workforce.service/internal/core/model"
	"workforce.service/internal/ports/repository"
)

// AttendanceService marks daily attendance and exposes the ledger reads.
// Marking the same (employee, date) twice replaces the earlier status so
// the one-record-per-day invariant the payroll calculation relies on
// always holds.
type AttendanceService struct {
	attendance repository.AttendanceRepository
	employees  repository.EmployeeRepository
}

func NewAttendanceService(attendance repository.AttendanceRepository, employees repository.EmployeeRepository) *AttendanceService {
	return &AttendanceService{
		attendance: attendance,
		employees:  employees,
	}
}

// Mark records the attendance status for one employee and date.
func (s *AttendanceService) Mark(ctx context.Context, employeeID int64, date time.Time, rawStatus string) (*model.Attendance, error) {
	status, ok := model.ParseAttendanceStatus(rawStatus)
	if !ok {
		return nil, ErrInvalidStatus
	}

	e, err := s.employees.Get(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve employee: %w", err)
	}
	if e == nil {
		return nil, ErrEmployeeNotFound
	}

	a := model.Attendance{
		EmployeeID: e.ID,
		Date:       date,
		Status:     status,
	}
	id, err := s.attendance.Upsert(ctx, &a)
	if err != nil {
		return nil, fmt.Errorf("failed to record attendance: %w", err)
	}
	a.ID = id
	return &a, nil
}

// ForRange returns an employee's attendance records ordered by date.
func (s *AttendanceService) ForRange(ctx context.Context, employeeID int64, start, end time.Time) ([]model.Attendance, error) {
	if end.Before(start) {
		return nil, ErrInvalidRange
	}
	return s.attendance.RecordsForRange(ctx, employeeID, start, end)
}
