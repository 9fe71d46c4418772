package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/atelierhq/studio-api/internal/core/domain"
	"github.com/atelierhq/studio-api/internal/core/ports"
)

// AnnouncementService manages the site-wide banner.
type AnnouncementService struct {
	repo     ports.AnnouncementRepository
	activity ports.ActivityRepository
	logger   zerolog.Logger
}

func NewAnnouncementService(repo ports.AnnouncementRepository, activity ports.ActivityRepository, logger zerolog.Logger) *AnnouncementService {
	return &AnnouncementService{repo: repo, activity: activity, logger: logger}
}

// Latest returns the current banner for the public site.
func (s *AnnouncementService) Latest(ctx context.Context) (*domain.Announcement, error) {
	return s.repo.LatestActive(ctx)
}

// Set creates a new announcement. Latest-wins: earlier records stay as
// history and simply stop being the latest.
func (s *AnnouncementService) Set(ctx context.Context, caller ports.Caller, text string, active bool) (*domain.Announcement, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Announcement{
		Text:      text,
		Active:    active,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	recordActivity(ctx, s.activity, s.logger, caller, "announcement.set", map[string]string{"id": created.ID})
	return created, nil
}

func (s *AnnouncementService) List(ctx context.Context, caller ports.Caller) ([]*domain.Announcement, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

func (s *AnnouncementService) Delete(ctx context.Context, caller ports.Caller, id string) error {
	if err := requireIdentity(caller); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	recordActivity(ctx, s.activity, s.logger, caller, "announcement.delete", map[string]string{"id": id})
	return nil
}
