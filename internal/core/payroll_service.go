package core

import (
	"context"
	"fmt"
	"time"

	"workforce.service/internal/core/model"
	"workforce.service/internal/ports/repository"
)

// monthLayout is the payroll period specifier, e.g. "2024-03".
const monthLayout = "2006-01"

// PayrollService derives a monthly salary summary from the attendance
// ledger and approved leave. It is a pure read: nothing is persisted and
// repeated calls over unchanged data yield identical summaries.
type PayrollService struct {
	employees repository.EmployeeRepository
	ledger    repository.AttendanceLedger
	leaves    repository.LeaveRepository
}

func NewPayrollService(employees repository.EmployeeRepository, ledger repository.AttendanceLedger, leaves repository.LeaveRepository) *PayrollService {
	return &PayrollService{
		employees: employees,
		ledger:    ledger,
		leaves:    leaves,
	}
}

// ComputeMonthlySummary classifies every calendar day of the month exactly
// once. Priority per day: the attendance record if one exists, else an
// approved leave request covering the day, else absent. Each absent day
// deducts one day's wage; leave days are never deducted.
func (s *PayrollService) ComputeMonthlySummary(ctx context.Context, employeeID int64, month string) (*model.PayrollSummary, error) {
	first, err := time.Parse(monthLayout, month)
	if err != nil {
		return nil, ErrInvalidMonth
	}
	last := first.AddDate(0, 1, -1)

	e, err := s.employees.Get(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve employee: %w", err)
	}
	if e == nil {
		return nil, ErrEmployeeNotFound
	}

	records, err := s.ledger.RecordsForRange(ctx, e.ID, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}
	recordByDay := make(map[int]model.AttendanceStatus, len(records))
	for _, r := range records {
		recordByDay[r.Date.Day()] = r.Status
	}

	leaves, err := s.leaves.FindApprovedInRange(ctx, e.ID, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to query approved leave: %w", err)
	}

	summary := model.PayrollSummary{
		Month:       month,
		DailyWage:   e.DailyWage,
		BasicSalary: e.BasicSalary,
	}

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		status, marked := recordByDay[day.Day()]
		switch {
		case marked && status == model.AttendancePresent:
			summary.PresentDays++
		case marked && status == model.AttendanceOnLeave:
			summary.LeaveDays++
		case marked:
			summary.AbsentDays++
		case coveredByLeave(leaves, day):
			summary.LeaveDays++
		default:
			summary.AbsentDays++
		}
	}

	summary.TotalDeductions = float64(summary.AbsentDays) * e.DailyWage
	summary.NetSalary = e.BasicSalary - summary.TotalDeductions

	return &summary, nil
}

// coveredByLeave reports whether any approved request includes the day.
// Leave ranges are inclusive on both ends.
func coveredByLeave(leaves []model.LeaveRequest, day time.Time) bool {
	for _, lr := range leaves {
		if !day.Before(lr.StartDate) && !day.After(lr.EndDate) {
			return true
		}
	}
	return false
}
