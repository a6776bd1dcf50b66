package core

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"workforce.service/internal/core/model"
	"workforce.service/internal/ports/messaging"
	"workforce.service/internal/ports/repository"
)

// EmployeeService owns employee registration, profile access and the
// approval status machine. Successful transitions fan out a status-changed
// event to the email and directory queues; publish failures are logged and
// never fail the committed transition.
type EmployeeService struct {
	employees repository.EmployeeRepository
	managers  repository.ManagerRepository
	producer  messaging.EventProducer
}

func NewEmployeeService(employees repository.EmployeeRepository, managers repository.ManagerRepository, producer messaging.EventProducer) *EmployeeService {
	return &EmployeeService{
		employees: employees,
		managers:  managers,
		producer:  producer,
	}
}

// Register creates a new employee under a manager. The manager must
// resolve first, and the new account always starts PENDING regardless of
// any caller-supplied status.
func (s *EmployeeService) Register(ctx context.Context, managerID int64, e model.Employee) (*model.Employee, error) {
	manager, err := s.managers.Get(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve manager: %w", err)
	}
	if manager == nil {
		return nil, ErrManagerNotFound
	}

	e.ManagerID = manager.ID
	e.Status = model.ApprovalPending

	id, err := s.employees.Create(ctx, &e)
	if err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	e.ID = id
	return &e, nil
}

// Profile fetches a single employee by id.
func (s *EmployeeService) Profile(ctx context.Context, id int64) (*model.Employee, error) {
	e, err := s.employees.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee: %w", err)
	}
	if e == nil {
		return nil, ErrEmployeeNotFound
	}
	return e, nil
}

// UpdateProfile rewrites the mutable profile fields. Status is not
// touched here; it only moves through TransitionStatus.
func (s *EmployeeService) UpdateProfile(ctx context.Context, e model.Employee) (*model.Employee, error) {
	ok, err := s.employees.UpdateProfile(ctx, &e)
	if err != nil {
		return nil, fmt.Errorf("failed to update employee profile: %w", err)
	}
	if !ok {
		return nil, ErrEmployeeNotFound
	}
	return s.Profile(ctx, e.ID)
}

// ByManager lists the employees grouped under a manager.
func (s *EmployeeService) ByManager(ctx context.Context, managerID int64) ([]model.Employee, error) {
	return s.employees.FindByManager(ctx, managerID)
}

// TransitionStatus runs the approval status machine. The raw status must
// parse to a recognized enumerator, the move must be on the transition
// graph, and the store-level compare-and-set must win; otherwise the
// stored status stays untouched.
func (s *EmployeeService) TransitionStatus(ctx context.Context, id int64, rawStatus string) (*model.Employee, error) {
	target, ok := model.ParseApprovalStatus(rawStatus)
	if !ok {
		return nil, ErrInvalidStatus
	}

	e, err := s.employees.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee: %w", err)
	}
	if e == nil {
		return nil, ErrEmployeeNotFound
	}

	if !CanTransitionApproval(e.Status, target) {
		return nil, ErrInvalidTransition
	}

	updated, err := s.employees.UpdateStatus(ctx, e.ID, e.Status, target)
	if err != nil {
		return nil, fmt.Errorf("failed to update employee status: %w", err)
	}
	if !updated {
		// Lost the race against a concurrent transition.
		return nil, ErrInvalidTransition
	}
	e.Status = target

	s.publishStatusChanged(ctx, e)

	return e, nil
}

// publishStatusChanged emits the post-commit events. Best effort: a queue
// outage must not surface as a failure of the transition itself.
func (s *EmployeeService) publishStatusChanged(ctx context.Context, e *model.Employee) {
	event := messaging.StatusChangedEvent{
		EventID:       uuid.NewString(),
		EmployeeID:    e.ID,
		EmployeeName:  e.Name,
		EmployeeEmail: e.Email,
		NewStatus:     e.Status,
		OccurredAt:    time.Now().UTC(),
	}

	if err := s.producer.PublishNotification(ctx, event); err != nil {
		log.Ctx(ctx).Error().Err(err).Int64("employee_id", e.ID).Msg("Failed to publish notification event")
	}
	if err := s.producer.PublishDirectorySync(ctx, event); err != nil {
		log.Ctx(ctx).Error().Err(err).Int64("employee_id", e.ID).Msg("Failed to publish directory sync event")
	}
}
