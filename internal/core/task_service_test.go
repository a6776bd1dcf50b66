package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"workforce.service/internal/core/model"
)

func newTaskFixture() (*TaskService, *fakeTaskRepo, *fakeEmployeeRepo) {
	tasks := newFakeTaskRepo()
	employees := newFakeEmployeeRepo()
	return NewTaskService(tasks, employees), tasks, employees
}

func TestAssignForcesNotStarted(t *testing.T) {
	t.Parallel()
	svc, _, employees := newTaskFixture()
	ctx := context.Background()
	employeeID, _ := employees.Create(ctx, &model.Employee{Name: "Alice", Status: model.ApprovalAccepted})

	created, err := svc.Assign(ctx, employeeID, model.Task{
		Title:   "Quarterly report",
		DueDate: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		Status:  model.TaskCompleted, // must be ignored
	})
	if err != nil {
		t.Fatalf("Assign() error = %v", err)
	}
	if created.Status != model.TaskNotStarted {
		t.Errorf("new task status = %s, want %s", created.Status, model.TaskNotStarted)
	}
	if created.EmployeeID != employeeID {
		t.Errorf("new task employeeID = %d, want %d", created.EmployeeID, employeeID)
	}
}

func TestAssignUnknownEmployeeCreatesNothing(t *testing.T) {
	t.Parallel()
	svc, tasks, _ := newTaskFixture()

	_, err := svc.Assign(context.Background(), 42, model.Task{Title: "Orphan"})
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("Assign() error = %v, want ErrEmployeeNotFound", err)
	}
	if len(tasks.rows) != 0 {
		t.Errorf("task was created despite missing employee")
	}
}

func TestTaskProgressForwardOnly(t *testing.T) {
	t.Parallel()
	svc, _, employees := newTaskFixture()
	ctx := context.Background()
	employeeID, _ := employees.Create(ctx, &model.Employee{Name: "Alice", Status: model.ApprovalAccepted})
	created, _ := svc.Assign(ctx, employeeID, model.Task{Title: "Report"})

	inProgress, err := svc.UpdateStatus(ctx, created.ID, "IN_PROGRESS")
	if err != nil {
		t.Fatalf("UpdateStatus(IN_PROGRESS) error = %v", err)
	}
	if inProgress.Status != model.TaskInProgress {
		t.Fatalf("status = %s, want IN_PROGRESS", inProgress.Status)
	}

	if _, err := svc.UpdateStatus(ctx, created.ID, "NOT_STARTED"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("moving backwards: error = %v, want ErrInvalidTransition", err)
	}

	completed, err := svc.UpdateStatus(ctx, created.ID, "COMPLETED")
	if err != nil {
		t.Fatalf("UpdateStatus(COMPLETED) error = %v", err)
	}
	if completed.Status != model.TaskCompleted {
		t.Fatalf("status = %s, want COMPLETED", completed.Status)
	}

	if _, err := svc.UpdateStatus(ctx, created.ID, "IN_PROGRESS"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("leaving COMPLETED: error = %v, want ErrInvalidTransition", err)
	}
}

func TestTaskStatusUnknownEnumLeavesStatusUnchanged(t *testing.T) {
	t.Parallel()
	svc, tasks, employees := newTaskFixture()
	ctx := context.Background()
	employeeID, _ := employees.Create(ctx, &model.Employee{Name: "Alice", Status: model.ApprovalAccepted})
	created, _ := svc.Assign(ctx, employeeID, model.Task{Title: "Report"})

	_, err := svc.UpdateStatus(ctx, created.ID, "DONEISH")
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("UpdateStatus() error = %v, want ErrInvalidStatus", err)
	}

	stored, _ := tasks.Get(ctx, created.ID)
	if stored.Status != model.TaskNotStarted {
		t.Errorf("stored status = %s, want untouched %s", stored.Status, model.TaskNotStarted)
	}
}

func TestTaskStatusUnknownTask(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTaskFixture()

	_, err := svc.UpdateStatus(context.Background(), 404, "IN_PROGRESS")
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("UpdateStatus() error = %v, want ErrTaskNotFound", err)
	}
}
