package core

import (
	"context"
	"fmt"
	"time"

	"workforce.service/internal/core/model"
	"workforce.service/internal/ports/repository"
)

// AnnouncementService is plain pass-through CRUD for org-wide notices.
type AnnouncementService struct {
	announcements repository.AnnouncementRepository
}

func NewAnnouncementService(announcements repository.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{announcements: announcements}
}

func (s *AnnouncementService) Create(ctx context.Context, a model.Announcement) (*model.Announcement, error) {
	a.CreatedAt = time.Now().UTC()
	id, err := s.announcements.Create(ctx, &a)
	if err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}
	a.ID = id
	return &a, nil
}

func (s *AnnouncementService) List(ctx context.Context) ([]model.Announcement, error) {
	return s.announcements.List(ctx)
}
