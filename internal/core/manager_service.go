package core

import (
	"context"
	"fmt"

	"workforce.service/internal/core/model"
	"workforce.service/internal/ports/repository"
)

// ManagerService is plain directory CRUD for managers.
type ManagerService struct {
	managers repository.ManagerRepository
}

func NewManagerService(managers repository.ManagerRepository) *ManagerService {
	return &ManagerService{managers: managers}
}

func (s *ManagerService) Register(ctx context.Context, m model.Manager) (*model.Manager, error) {
	id, err := s.managers.Create(ctx, &m)
	if err != nil {
		return nil, fmt.Errorf("failed to create manager: %w", err)
	}
	m.ID = id
	return &m, nil
}

func (s *ManagerService) List(ctx context.Context) ([]model.Manager, error) {
	return s.managers.List(ctx)
}
