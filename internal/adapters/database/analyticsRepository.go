package database

import (
	"context"
	"errors"

	"cuff/internal/config"
	"cuff/internal/core/analytics"
	analyticsPort "cuff/internal/ports/analytics"

	"gorm.io/gorm"
)

// AnalyticsRepositoryDatabase implements AnalyticsRepository on MySQL.
type AnalyticsRepositoryDatabase struct{}

func NewAnalyticsRepositoryDatabase() *AnalyticsRepositoryDatabase {
	return &AnalyticsRepositoryDatabase{}
}

func (repo *AnalyticsRepositoryDatabase) Create(ctx context.Context, e *analytics.Event) (*analytics.Event, error) {
	if err := config.DB.WithContext(ctx).Create(e).Error; err != nil {
		return nil, err
	}
	return e, nil
}

func (repo *AnalyticsRepositoryDatabase) FindByID(ctx context.Context, id uint) (*analytics.Event, error) {
	var e analytics.Event
	if err := config.DB.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, analyticsPort.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (repo *AnalyticsRepositoryDatabase) FindAll(ctx context.Context) ([]*analytics.Event, error) {
	var events []*analytics.Event
	if err := config.DB.WithContext(ctx).Order("timestamp DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (repo *AnalyticsRepositoryDatabase) DeleteByID(ctx context.Context, id uint) error {
	return config.DB.WithContext(ctx).Delete(&analytics.Event{}, "id = ?", id).Error
}
