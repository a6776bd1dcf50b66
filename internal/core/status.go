package core

import (
	"workforce.service/internal/core/model"
)

// approvalGraph is the directed transition graph for employee approval.
// The permissive any-to-any overrides of the legacy system are gone:
// PENDING is decided once, and only ACCEPTED accounts can be deactivated.
var approvalGraph = map[model.ApprovalStatus][]model.ApprovalStatus{
	model.ApprovalPending:  {model.ApprovalAccepted, model.ApprovalRejected},
	model.ApprovalAccepted: {model.ApprovalDeactivated},
}

// taskGraph enforces forward-only task progress. Skipping IN_PROGRESS is
// allowed; moving backwards or out of COMPLETED is not.
var taskGraph = map[model.TaskStatus][]model.TaskStatus{
	model.TaskNotStarted: {model.TaskInProgress, model.TaskCompleted},
	model.TaskInProgress: {model.TaskCompleted},
}

// CanTransitionApproval reports whether the approval machine permits
// moving from one status to another.
func CanTransitionApproval(from, to model.ApprovalStatus) bool {
	for _, next := range approvalGraph[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanTransitionTask reports whether the task-progress machine permits
// moving from one status to another.
func CanTransitionTask(from, to model.TaskStatus) bool {
	for _, next := range taskGraph[from] {
		if next == to {
			return true
		}
	}
	return false
}
