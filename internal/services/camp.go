package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"corecodecamp/internal/domain"
)

type campService struct {
	campRepo       domain.CampRepository
	emailService   domain.EmailService
	announceTo     []string
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewCampService returns a CampService backed by campRepo. When announceTo is non-empty,
// every created camp is announced to those addresses through emailService.
func NewCampService(campRepo domain.CampRepository,
	emailService domain.EmailService,
	announceTo []string,
	logger *slog.Logger,
	timeout time.Duration,
) domain.CampService {
	return &campService{
		campRepo:       campRepo,
		emailService:   emailService,
		announceTo:     announceTo,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *campService) ListCamps(ctx context.Context, includeTalks bool) ([]*domain.Camp, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	camps, err := s.campRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list camps: %w", err)
	}
	if camps == nil {
		camps = []*domain.Camp{}
	}
	if includeTalks {
		if err := s.attachTalks(ctx, camps); err != nil {
			return nil, err
		}
	}
	return camps, nil
}

func (s *campService) SearchCampsByDate(ctx context.Context, date time.Time, includeTalks bool) ([]*domain.Camp, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	camps, err := s.campRepo.ListByEventDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list camps by event date: %w", err)
	}
	if len(camps) == 0 {
		return nil, domain.ErrNotFound
	}
	if includeTalks {
		if err := s.attachTalks(ctx, camps); err != nil {
			return nil, err
		}
	}
	return camps, nil
}

func (s *campService) GetCamp(ctx context.Context, moniker string, includeTalks bool) (*domain.Camp, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	camp, err := s.getCamp(ctx, moniker)
	if err != nil {
		return nil, err
	}
	if includeTalks {
		if err := s.attachTalks(ctx, []*domain.Camp{camp}); err != nil {
			return nil, err
		}
	}
	return camp, nil
}

func (s *campService) CreateCamp(ctx context.Context, camp *domain.Camp) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if camp.Moniker == "" || camp.Name == "" {
		return domain.ErrInvalidInput
	}
	if camp.EndDate.Before(camp.StartDate) {
		return domain.ErrEndBeforeStart
	}

	// The unique constraint on camps.moniker is the real guard; this lookup only
	// avoids a round trip for the common case.
	_, err := s.campRepo.GetByMoniker(ctx, camp.Moniker)
	if err == nil {
		return domain.ErrMonikerTaken
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("get camp: %w", err)
	}

	if err := s.campRepo.Create(ctx, camp); err != nil {
		if errors.Is(err, domain.ErrMonikerTaken) {
			return domain.ErrMonikerTaken
		}
		return fmt.Errorf("create camp: %w", err)
	}

	s.announce(ctx, camp)
	return nil
}

func (s *campService) UpdateCamp(ctx context.Context, moniker string, patch domain.CampPatch) (*domain.Camp, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if patch.Moniker != nil && *patch.Moniker != moniker {
		return nil, domain.ErrInvalidInput
	}

	current, err := s.getCamp(ctx, moniker)
	if err != nil {
		return nil, err
	}
	updated := patch.Apply(current)
	if updated.EndDate.Before(updated.StartDate) {
		return nil, domain.ErrEndBeforeStart
	}
	if domain.SameFields(current, updated) {
		return nil, domain.ErrNoChanges
	}

	if err := s.campRepo.Update(ctx, updated); err != nil {
		if errors.Is(err, domain.ErrNoChanges) {
			return nil, domain.ErrNoChanges
		}
		return nil, fmt.Errorf("update camp: %w", err)
	}
	return updated, nil
}

func (s *campService) DeleteCamp(ctx context.Context, moniker string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	camp, err := s.getCamp(ctx, moniker)
	if err != nil {
		return err
	}
	if err := s.campRepo.Delete(ctx, camp.ID); err != nil {
		if errors.Is(err, domain.ErrNoChanges) || errors.Is(err, domain.ErrCampHasTalks) {
			return err
		}
		return fmt.Errorf("delete camp: %w", err)
	}
	return nil
}

func (s *campService) ListTalks(ctx context.Context, moniker string) ([]*domain.Talk, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	camp, err := s.getCamp(ctx, moniker)
	if err != nil {
		return nil, err
	}
	talks, err := s.campRepo.ListTalksByCampIDs(ctx, []int64{camp.ID})
	if err != nil {
		return nil, fmt.Errorf("list talks: %w", err)
	}
	if talks == nil {
		talks = []*domain.Talk{}
	}
	return talks, nil
}

func (s *campService) GetTalk(ctx context.Context, moniker string, talkID int64) (*domain.Talk, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	camp, err := s.getCamp(ctx, moniker)
	if err != nil {
		return nil, err
	}
	talk, err := s.campRepo.GetTalk(ctx, camp.ID, talkID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get talk: %w", err)
	}
	return talk, nil
}

func (s *campService) getCamp(ctx context.Context, moniker string) (*domain.Camp, error) {
	camp, err := s.campRepo.GetByMoniker(ctx, moniker)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get camp: %w", err)
	}
	return camp, nil
}

// attachTalks loads the talks of all camps in one query and assigns them to their owners.
// Camps without talks get an empty, non-nil slice.
func (s *campService) attachTalks(ctx context.Context, camps []*domain.Camp) error {
	byID := make(map[int64]*domain.Camp, len(camps))
	ids := make([]int64, 0, len(camps))
	for _, c := range camps {
		c.Talks = []*domain.Talk{}
		byID[c.ID] = c
		ids = append(ids, c.ID)
	}
	talks, err := s.campRepo.ListTalksByCampIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("list talks: %w", err)
	}
	for _, t := range talks {
		if c, ok := byID[t.CampID]; ok {
			c.Talks = append(c.Talks, t)
		}
	}
	return nil
}

// announce sends the new camp announcement. Failures are logged and never fail the create.
func (s *campService) announce(ctx context.Context, camp *domain.Camp) {
	if s.emailService == nil {
		return
	}
	for _, to := range s.announceTo {
		err := s.emailService.SendCampAnnouncement(ctx, &domain.CampAnnouncementEmailData{
			To:        to,
			Moniker:   camp.Moniker,
			Name:      camp.Name,
			Venue:     camp.Location.VenueName,
			StartDate: camp.StartDate,
			EndDate:   camp.EndDate,
		})
		if err != nil {
			s.logger.WarnContext(ctx, "camp announcement failed", "moniker", camp.Moniker, "to", to, "err", err)
		}
	}
}
