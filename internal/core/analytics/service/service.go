package analyticsapp

import (
	"context"
	"time"

	"cuff/internal/core/analytics"
	analyticsPort "cuff/internal/ports/analytics"
)

// AnalyticsService records and serves usage events. It has no
// interaction with the publish workflow beyond receiving events from it.
type AnalyticsService struct {
	AnalyticsRepository analyticsPort.AnalyticsRepository
}

func NewAnalyticsService(repo analyticsPort.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{
		AnalyticsRepository: repo,
	}
}

func (s *AnalyticsService) RecordEvent(ctx context.Context, in analyticsPort.RecordEventInput) (*analyticsPort.EventDTO, error) {
	e := &analytics.Event{
		MetricType: in.MetricType,
		PostID:     in.PostID,
		UserID:     in.UserID,
		Location:   in.Location,
		Timestamp:  time.Now(),
		Metadata:   in.Metadata,
	}

	created, err := s.AnalyticsRepository.Create(ctx, e)
	if err != nil {
		return nil, err
	}
	return toDTO(created), nil
}

func (s *AnalyticsService) GetEventByID(ctx context.Context, id uint) (*analyticsPort.EventDTO, error) {
	e, err := s.AnalyticsRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(e), nil
}

func (s *AnalyticsService) ListEvents(ctx context.Context) ([]*analyticsPort.EventDTO, error) {
	events, err := s.AnalyticsRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]*analyticsPort.EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, toDTO(e))
	}
	return dtos, nil
}

func (s *AnalyticsService) DeleteEvent(ctx context.Context, id uint) error {
	return s.AnalyticsRepository.DeleteByID(ctx, id)
}

func toDTO(e *analytics.Event) *analyticsPort.EventDTO {
	return &analyticsPort.EventDTO{
		ID:         e.ID,
		MetricType: e.MetricType,
		PostID:     e.PostID,
		UserID:     e.UserID,
		Location:   e.Location,
		Timestamp:  e.Timestamp,
		Metadata:   e.Metadata,
	}
}
