package model

import (
	"time"
)

// ApprovalStatus defines the onboarding/account state of an employee.
// Only ACCEPTED employees may log in.
type ApprovalStatus string

const (
	ApprovalPending     ApprovalStatus = "PENDING"
	ApprovalAccepted    ApprovalStatus = "ACCEPTED"
	ApprovalRejected    ApprovalStatus = "REJECTED"
	ApprovalDeactivated ApprovalStatus = "DEACTIVATED"
)

// ParseApprovalStatus maps a raw status string to a recognized enumerator.
func ParseApprovalStatus(s string) (ApprovalStatus, bool) {
	switch ApprovalStatus(s) {
	case ApprovalPending, ApprovalAccepted, ApprovalRejected, ApprovalDeactivated:
		return ApprovalStatus(s), true
	}
	return "", false
}

// TaskStatus defines the progress state of an assigned task.
type TaskStatus string

const (
	TaskNotStarted TaskStatus = "NOT_STARTED"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskCompleted  TaskStatus = "COMPLETED"
)

func ParseTaskStatus(s string) (TaskStatus, bool) {
	switch TaskStatus(s) {
	case TaskNotStarted, TaskInProgress, TaskCompleted:
		return TaskStatus(s), true
	}
	return "", false
}

// LeaveStatus defines the review state of a leave request.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "PENDING"
	LeaveApproved LeaveStatus = "APPROVED"
	LeaveRejected LeaveStatus = "REJECTED"
)

func ParseLeaveStatus(s string) (LeaveStatus, bool) {
	switch LeaveStatus(s) {
	case LeavePending, LeaveApproved, LeaveRejected:
		return LeaveStatus(s), true
	}
	return "", false
}

// AttendanceStatus defines how a single calendar day was recorded.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
	AttendanceOnLeave AttendanceStatus = "ON_LEAVE"
)

func ParseAttendanceStatus(s string) (AttendanceStatus, bool) {
	switch AttendanceStatus(s) {
	case AttendancePresent, AttendanceAbsent, AttendanceOnLeave:
		return AttendanceStatus(s), true
	}
	return "", false
}

// NotificationStatus defines the state of an outbound email job.
type NotificationStatus string

const (
	NotificationPending   NotificationStatus = "PENDING"
	NotificationCompleted NotificationStatus = "COMPLETED"
	NotificationFailed    NotificationStatus = "FAILED"
)

type Employee struct {
	ID          int64          `json:"id"`
	ManagerID   int64          `json:"managerId"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Password    string         `json:"-"`
	BasicSalary float64        `json:"basicSalary"`
	DailyWage   float64        `json:"dailyWage"`
	Status      ApprovalStatus `json:"status"`
}

type Manager struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

type SuperAdmin struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

type Task struct {
	ID          int64      `json:"id"`
	EmployeeID  int64      `json:"employeeId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     time.Time  `json:"dueDate"`
	Status      TaskStatus `json:"status"`
}

// LeaveRequest covers the inclusive date range [StartDate, EndDate].
type LeaveRequest struct {
	ID         int64       `json:"id"`
	EmployeeID int64       `json:"employeeId"`
	StartDate  time.Time   `json:"startDate"`
	EndDate    time.Time   `json:"endDate"`
	Status     LeaveStatus `json:"status"`
}

// Attendance is unique per (employee, date); the payroll calculation
// depends on that constraint.
type Attendance struct {
	ID         int64            `json:"id"`
	EmployeeID int64            `json:"employeeId"`
	Date       time.Time        `json:"date"`
	Status     AttendanceStatus `json:"status"`
}

type Announcement struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// PayrollSummary is a derived value, recomputed on every request and
// never persisted.
type PayrollSummary struct {
	Month           string  `json:"month"`
	PresentDays     int     `json:"presentDays"`
	LeaveDays       int     `json:"leaveDays"`
	AbsentDays      int     `json:"absentDays"`
	DailyWage       float64 `json:"dailyWage"`
	BasicSalary     float64 `json:"basicSalary"`
	TotalDeductions float64 `json:"totalDeductions"`
	NetSalary       float64 `json:"netSalary"`
}
