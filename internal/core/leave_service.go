package core

import (
	"context"
	"fmt"
	"time"

	"workforce.service/internal/core/model"
	"workforce.service/internal/ports/repository"
)

// LeaveService owns leave requests and the leave-approval machine.
// Overlap against already-approved leave is rejected at request time to
// avoid wasted review cycles, and re-checked at approval time in case an
// overlapping request was approved in between.
type LeaveService struct {
	leaves    repository.LeaveRepository
	employees repository.EmployeeRepository
}

func NewLeaveService(leaves repository.LeaveRepository, employees repository.EmployeeRepository) *LeaveService {
	return &LeaveService{
		leaves:    leaves,
		employees: employees,
	}
}

// Request files a new leave request over the inclusive range [start, end].
func (s *LeaveService) Request(ctx context.Context, employeeID int64, start, end time.Time) (*model.LeaveRequest, error) {
	if end.Before(start) {
		return nil, ErrInvalidRange
	}

	e, err := s.employees.Get(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve employee: %w", err)
	}
	if e == nil {
		return nil, ErrEmployeeNotFound
	}

	overlap, err := s.leaves.ExistsApprovedOverlap(ctx, e.ID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to check leave overlap: %w", err)
	}
	if overlap {
		return nil, ErrOverlappingLeave
	}

	lr := model.LeaveRequest{
		EmployeeID: e.ID,
		StartDate:  start,
		EndDate:    end,
		Status:     model.LeavePending,
	}
	id, err := s.leaves.Create(ctx, &lr)
	if err != nil {
		return nil, fmt.Errorf("failed to create leave request: %w", err)
	}
	lr.ID = id
	return &lr, nil
}

// Decide approves or rejects a pending leave request. APPROVED and
// REJECTED are terminal; a second decision fails.
func (s *LeaveService) Decide(ctx context.Context, leaveID int64, approve bool) (*model.LeaveRequest, error) {
	lr, err := s.leaves.Get(ctx, leaveID)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave request: %w", err)
	}
	if lr == nil {
		return nil, ErrLeaveNotFound
	}

	if lr.Status != model.LeavePending {
		return nil, ErrInvalidTransition
	}

	target := model.LeaveRejected
	if approve {
		target = model.LeaveApproved

		// A sibling request may have been approved since this one was
		// filed; the no-overlapping-approved-leave invariant holds at
		// approval time too.
		overlap, err := s.leaves.ExistsApprovedOverlap(ctx, lr.EmployeeID, lr.StartDate, lr.EndDate)
		if err != nil {
			return nil, fmt.Errorf("failed to check leave overlap: %w", err)
		}
		if overlap {
			return nil, ErrOverlappingLeave
		}
	}

	updated, err := s.leaves.UpdateStatus(ctx, lr.ID, model.LeavePending, target)
	if err != nil {
		return nil, fmt.Errorf("failed to update leave status: %w", err)
	}
	if !updated {
		// A concurrent decision got there first.
		return nil, ErrInvalidTransition
	}
	lr.Status = target
	return lr, nil
}

// ByEmployee lists an employee's leave requests.
func (s *LeaveService) ByEmployee(ctx context.Context, employeeID int64) ([]model.LeaveRequest, error) {
	return s.leaves.FindByEmployee(ctx, employeeID)
}

// ByStatus lists leave requests in a given review state.
func (s *LeaveService) ByStatus(ctx context.Context, rawStatus string) ([]model.LeaveRequest, error) {
	status, ok := model.ParseLeaveStatus(rawStatus)
	if !ok {
		return nil, ErrInvalidStatus
	}
	return s.leaves.FindByStatus(ctx, status)
}
