package analytics

import (
	"context"
	"errors"
	"time"

	"cuff/internal/core/analytics"
)

// ErrNotFound is returned by lookups when no event matches.
var ErrNotFound = errors.New("analytics event not found")

// AnalyticsRepository is the outbound port for analytics storage.
type AnalyticsRepository interface {
	Create(ctx context.Context, e *analytics.Event) (*analytics.Event, error)
	FindByID(ctx context.Context, id uint) (*analytics.Event, error)
	FindAll(ctx context.Context) ([]*analytics.Event, error)
	DeleteByID(ctx context.Context, id uint) error
}

type EventDTO struct {
	ID         uint      `json:"id"`
	MetricType string    `json:"metricType"`
	PostID     *uint     `json:"postId,omitempty"`
	UserID     *uint     `json:"userId,omitempty"`
	Location   string    `json:"location,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	Metadata   string    `json:"metadata,omitempty"`
}

type RecordEventInput struct {
	MetricType string
	PostID     *uint
	UserID     *uint
	Location   string
	Metadata   string
}
