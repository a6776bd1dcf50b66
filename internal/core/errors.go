package core

import "errors"

// Lookup errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrManagerNotFound  = errors.New("manager not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrLeaveNotFound    = errors.New("leave request not found")
)

// Validation errors
var (
	ErrInvalidStatus = errors.New("invalid status value")
	ErrInvalidRange  = errors.New("end date before start date")
	ErrInvalidMonth  = errors.New("invalid month specifier")
)

// Workflow errors
var (
	ErrInvalidTransition = errors.New("status transition not permitted")
	ErrOverlappingLeave  = errors.New("overlapping approved leave")
)

// Login errors. ErrAccountNotActive carries the pending-specific message
// shown to employees whose account has not been accepted; it must stay
// distinguishable from ErrInvalidCredentials.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotActive   = errors.New("your account is pending/rejected, contact admin")
)
