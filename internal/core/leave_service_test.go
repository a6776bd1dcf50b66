package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"workforce.service/internal/core/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newLeaveFixture(t *testing.T) (*LeaveService, *fakeLeaveRepo, int64) {
	t.Helper()
	leaves := newFakeLeaveRepo()
	employees := newFakeEmployeeRepo()
	id, _ := employees.Create(context.Background(), &model.Employee{Name: "Alice", Status: model.ApprovalAccepted})
	return NewLeaveService(leaves, employees), leaves, id
}

func TestRequestLeave(t *testing.T) {
	t.Parallel()
	svc, _, employeeID := newLeaveFixture(t)

	lr, err := svc.Request(context.Background(), employeeID, day(2024, 3, 11), day(2024, 3, 15))
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if lr.Status != model.LeavePending {
		t.Errorf("new request status = %s, want %s", lr.Status, model.LeavePending)
	}
}

func TestRequestLeaveInvertedRange(t *testing.T) {
	t.Parallel()
	svc, leaves, employeeID := newLeaveFixture(t)

	_, err := svc.Request(context.Background(), employeeID, day(2024, 3, 15), day(2024, 3, 11))
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("Request() error = %v, want ErrInvalidRange", err)
	}
	if len(leaves.rows) != 0 {
		t.Errorf("request was created despite inverted range")
	}
}

func TestRequestLeaveUnknownEmployee(t *testing.T) {
	t.Parallel()
	svc, _, _ := newLeaveFixture(t)

	_, err := svc.Request(context.Background(), 404, day(2024, 3, 11), day(2024, 3, 15))
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("Request() error = %v, want ErrEmployeeNotFound", err)
	}
}

func TestRequestOverlappingApprovedLeave(t *testing.T) {
	t.Parallel()
	svc, _, employeeID := newLeaveFixture(t)
	ctx := context.Background()

	first, err := svc.Request(ctx, employeeID, day(2024, 3, 11), day(2024, 3, 15))
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if _, err := svc.Decide(ctx, first.ID, true); err != nil {
		t.Fatalf("Decide() error = %v", err)
	}

	// Shares a single day with the approved range.
	_, err = svc.Request(ctx, employeeID, day(2024, 3, 15), day(2024, 3, 20))
	if !errors.Is(err, ErrOverlappingLeave) {
		t.Fatalf("Request() error = %v, want ErrOverlappingLeave", err)
	}

	// A pending-only overlap is still allowed; only approved leave blocks.
	if _, err := svc.Request(ctx, employeeID, day(2024, 3, 16), day(2024, 3, 20)); err != nil {
		t.Fatalf("adjacent non-overlapping request: error = %v", err)
	}
}

func TestDecideApproveRechecksOverlap(t *testing.T) {
	t.Parallel()
	svc, _, employeeID := newLeaveFixture(t)
	ctx := context.Background()

	// Two pending requests over the same window both pass the request-time
	// check; approving the second must fail once the first is approved.
	a, _ := svc.Request(ctx, employeeID, day(2024, 3, 11), day(2024, 3, 15))
	b, _ := svc.Request(ctx, employeeID, day(2024, 3, 13), day(2024, 3, 18))

	if _, err := svc.Decide(ctx, a.ID, true); err != nil {
		t.Fatalf("Decide(a) error = %v", err)
	}
	if _, err := svc.Decide(ctx, b.ID, true); !errors.Is(err, ErrOverlappingLeave) {
		t.Fatalf("Decide(b) error = %v, want ErrOverlappingLeave", err)
	}

	// Rejecting it is still fine.
	rejected, err := svc.Decide(ctx, b.ID, false)
	if err != nil {
		t.Fatalf("Decide(b, reject) error = %v", err)
	}
	if rejected.Status != model.LeaveRejected {
		t.Errorf("status = %s, want %s", rejected.Status, model.LeaveRejected)
	}
}

func TestDecideTwice(t *testing.T) {
	t.Parallel()
	svc, _, employeeID := newLeaveFixture(t)
	ctx := context.Background()

	lr, _ := svc.Request(ctx, employeeID, day(2024, 3, 11), day(2024, 3, 15))

	approved, err := svc.Decide(ctx, lr.ID, true)
	if err != nil {
		t.Fatalf("first Decide() error = %v", err)
	}
	if approved.Status != model.LeaveApproved {
		t.Fatalf("status = %s, want %s", approved.Status, model.LeaveApproved)
	}

	if _, err := svc.Decide(ctx, lr.ID, false); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("second Decide() error = %v, want ErrInvalidTransition", err)
	}
}

func TestDecideUnknownLeave(t *testing.T) {
	t.Parallel()
	svc, _, _ := newLeaveFixture(t)

	_, err := svc.Decide(context.Background(), 404, true)
	if !errors.Is(err, ErrLeaveNotFound) {
		t.Fatalf("Decide() error = %v, want ErrLeaveNotFound", err)
	}
}

func TestLeavesByStatusRejectsUnknownEnum(t *testing.T) {
	t.Parallel()
	svc, _, _ := newLeaveFixture(t)

	_, err := svc.ByStatus(context.Background(), "MAYBE")
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("ByStatus() error = %v, want ErrInvalidStatus", err)
	}
}
