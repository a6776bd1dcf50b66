package core

import (
	"context"
	"fmt"

	"workforce.service/internal/core/model"
	"workforce.service/internal/ports/repository"
)

// TaskService owns task assignment and the task-progress status machine.
type TaskService struct {
	tasks     repository.TaskRepository
	employees repository.EmployeeRepository
}

func NewTaskService(tasks repository.TaskRepository, employees repository.EmployeeRepository) *TaskService {
	return &TaskService{
		tasks:     tasks,
		employees: employees,
	}
}

// Assign creates a task for an employee. The employee must resolve first,
// and the task is always initialized to NOT_STARTED regardless of any
// caller-supplied status.
func (s *TaskService) Assign(ctx context.Context, employeeID int64, t model.Task) (*model.Task, error) {
	e, err := s.employees.Get(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve employee: %w", err)
	}
	if e == nil {
		return nil, ErrEmployeeNotFound
	}

	t.EmployeeID = e.ID
	t.Status = model.TaskNotStarted

	id, err := s.tasks.Create(ctx, &t)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	t.ID = id
	return &t, nil
}

// UpdateStatus moves a task through the forward-only progress graph.
func (s *TaskService) UpdateStatus(ctx context.Context, taskID int64, rawStatus string) (*model.Task, error) {
	target, ok := model.ParseTaskStatus(rawStatus)
	if !ok {
		return nil, ErrInvalidStatus
	}

	t, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to query task: %w", err)
	}
	if t == nil {
		return nil, ErrTaskNotFound
	}

	if !CanTransitionTask(t.Status, target) {
		return nil, ErrInvalidTransition
	}

	updated, err := s.tasks.UpdateStatus(ctx, t.ID, t.Status, target)
	if err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}
	if !updated {
		return nil, ErrInvalidTransition
	}
	t.Status = target
	return t, nil
}

// ByEmployee lists an employee's tasks.
func (s *TaskService) ByEmployee(ctx context.Context, employeeID int64) ([]model.Task, error) {
	return s.tasks.FindByEmployee(ctx, employeeID)
}
