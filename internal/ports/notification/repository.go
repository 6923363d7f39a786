package notification

import (
	"context"
	"errors"
	"time"

	"cuff/internal/core/notification"
)

// ErrNotFound is returned by lookups when no notification matches.
var ErrNotFound = errors.New("notification not found")

// NotificationRepository is the outbound port for notification storage.
type NotificationRepository interface {
	Create(ctx context.Context, n *notification.Notification) (*notification.Notification, error)
	FindByID(ctx context.Context, id uint) (*notification.Notification, error)
	FindAll(ctx context.Context) ([]*notification.Notification, error)
	FindByUserID(ctx context.Context, userID uint) ([]*notification.Notification, error)
	DeleteByID(ctx context.Context, id uint) error
}

type NotificationDTO struct {
	ID               uint      `json:"id"`
	PostID           uint      `json:"postId"`
	UserID           uint      `json:"userId"`
	NotificationType string    `json:"notificationType"`
	MessageContent   string    `json:"messageContent"`
	SentAt           time.Time `json:"sentAt"`
	Status           string    `json:"status"`
}
