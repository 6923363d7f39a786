package database

import (
	"context"
	"errors"

	"cuff/internal/config"
	"cuff/internal/core/notification"
	notificationPort "cuff/internal/ports/notification"

	"gorm.io/gorm"
)

// NotificationRepositoryDatabase implements NotificationRepository on MySQL.
type NotificationRepositoryDatabase struct{}

func NewNotificationRepositoryDatabase() *NotificationRepositoryDatabase {
	return &NotificationRepositoryDatabase{}
}

func (repo *NotificationRepositoryDatabase) Create(ctx context.Context, n *notification.Notification) (*notification.Notification, error) {
	if err := config.DB.WithContext(ctx).Create(n).Error; err != nil {
		return nil, err
	}
	return n, nil
}

func (repo *NotificationRepositoryDatabase) FindByID(ctx context.Context, id uint) (*notification.Notification, error) {
	var n notification.Notification
	if err := config.DB.WithContext(ctx).First(&n, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notificationPort.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (repo *NotificationRepositoryDatabase) FindAll(ctx context.Context) ([]*notification.Notification, error) {
	var notifications []*notification.Notification
	if err := config.DB.WithContext(ctx).Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (repo *NotificationRepositoryDatabase) FindByUserID(ctx context.Context, userID uint) ([]*notification.Notification, error) {
	var notifications []*notification.Notification
	if err := config.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sent_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (repo *NotificationRepositoryDatabase) DeleteByID(ctx context.Context, id uint) error {
	return config.DB.WithContext(ctx).Delete(&notification.Notification{}, "id = ?", id).Error
}
