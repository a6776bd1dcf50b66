package repository

import (
	"context"
	"time"

	"workforce.service/internal/core/model"
)

// Lookup methods return (nil, nil) when no row matches; callers translate
// that into their own not-found errors.

// EmployeeRepository contract
type EmployeeRepository interface {
	Get(ctx context.Context, id int64) (*model.Employee, error)
	FindByEmail(ctx context.Context, email string) (*model.Employee, error)
	FindByManager(ctx context.Context, managerID int64) ([]model.Employee, error)
	Create(ctx context.Context, e *model.Employee) (int64, error)
	UpdateProfile(ctx context.Context, e *model.Employee) (bool, error)
	// UpdateStatus performs a compare-and-set on the status column so that
	// two concurrent transitions from the same starting state cannot both
	// succeed. It reports whether a row was updated.
	UpdateStatus(ctx context.Context, id int64, from, to model.ApprovalStatus) (bool, error)
}

// ManagerRepository contract
type ManagerRepository interface {
	Get(ctx context.Context, id int64) (*model.Manager, error)
	FindByEmail(ctx context.Context, email string) (*model.Manager, error)
	Create(ctx context.Context, m *model.Manager) (int64, error)
	List(ctx context.Context) ([]model.Manager, error)
}

// SuperAdminRepository contract
type SuperAdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.SuperAdmin, error)
}

// TaskRepository contract
type TaskRepository interface {
	Get(ctx context.Context, id int64) (*model.Task, error)
	FindByEmployee(ctx context.Context, employeeID int64) ([]model.Task, error)
	Create(ctx context.Context, t *model.Task) (int64, error)
	UpdateStatus(ctx context.Context, id int64, from, to model.TaskStatus) (bool, error)
}

// LeaveRepository contract
type LeaveRepository interface {
	Get(ctx context.Context, id int64) (*model.LeaveRequest, error)
	FindByEmployee(ctx context.Context, employeeID int64) ([]model.LeaveRequest, error)
	FindByStatus(ctx context.Context, status model.LeaveStatus) ([]model.LeaveRequest, error)
	// FindApprovedInRange returns approved requests whose inclusive date
	// range intersects [start, end].
	FindApprovedInRange(ctx context.Context, employeeID int64, start, end time.Time) ([]model.LeaveRequest, error)
	ExistsApprovedOverlap(ctx context.Context, employeeID int64, start, end time.Time) (bool, error)
	Create(ctx context.Context, lr *model.LeaveRequest) (int64, error)
	UpdateStatus(ctx context.Context, id int64, from, to model.LeaveStatus) (bool, error)
}

// AttendanceLedger is the read-only query surface the payroll calculation
// consumes. RecordsForRange returns records ordered by date; at most one
// record exists per (employee, date).
type AttendanceLedger interface {
	RecordsForRange(ctx context.Context, employeeID int64, start, end time.Time) ([]model.Attendance, error)
	RecordForDate(ctx context.Context, employeeID int64, date time.Time) (*model.Attendance, error)
}

// AttendanceRepository adds the marking side on top of the ledger. Upsert
// keeps the one-record-per-day invariant by replacing the status for an
// already-marked date.
type AttendanceRepository interface {
	AttendanceLedger
	Upsert(ctx context.Context, a *model.Attendance) (int64, error)
}

// AnnouncementRepository contract
type AnnouncementRepository interface {
	Create(ctx context.Context, a *model.Announcement) (int64, error)
	List(ctx context.Context) ([]model.Announcement, error)
}

// NotificationRepository tracks the delivery state of outbound status
// emails so the worker can skip already-delivered events on redelivery.
type NotificationRepository interface {
	Create(ctx context.Context, eventID string, employeeID int64) error
	GetStatus(ctx context.Context, eventID string) (model.NotificationStatus, int, error)
	UpdateStatus(ctx context.Context, eventID string, status model.NotificationStatus, retryCount int) error
}
