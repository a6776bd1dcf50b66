package messaging

import (
	"time"

	"workforce.service/internal/core/model"
)

// StatusChangedEvent is the JSON payload fanned out after a successful
// employee approval transition. The same payload feeds both the email
// queue and the directory-sync queue; EventID is the idempotency key.
type StatusChangedEvent struct {
	EventID       string               `json:"eventId"`
	EmployeeID    int64                `json:"employeeId"`
	EmployeeName  string               `json:"employeeName"`
	EmployeeEmail string               `json:"employeeEmail"`
	NewStatus     model.ApprovalStatus `json:"newStatus"`
	OccurredAt    time.Time            `json:"occurredAt"`
}
