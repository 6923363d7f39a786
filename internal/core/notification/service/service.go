package notificationapp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cuff/internal/core/notification"
	"cuff/internal/core/user"
	notificationPort "cuff/internal/ports/notification"
	userPort "cuff/internal/ports/user"

	"go.uber.org/zap"
)

// NotificationService creates notification records, either fanned out to
// every opted-in user after a post is published or sent directly to one
// user.
type NotificationService struct {
	NotificationRepository notificationPort.NotificationRepository
	UserRepository         userPort.UserRepository
	Logger                 *zap.Logger
}

func NewNotificationService(
	notificationRepo notificationPort.NotificationRepository,
	userRepo userPort.UserRepository,
	logger *zap.Logger,
) *NotificationService {
	return &NotificationService{
		NotificationRepository: notificationRepo,
		UserRepository:         userRepo,
		Logger:                 logger,
	}
}

// BroadcastNewPost creates one unread notification per opted-in user.
// The recipient set is a snapshot taken at call time. A failed write for
// one recipient is logged and skipped; the rest of the batch proceeds.
// Returns the number of notifications actually created.
func (s *NotificationService) BroadcastNewPost(ctx context.Context, postID uint, message string) (int, error) {
	recipients, err := s.UserRepository.FindAllOptedIn(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load opted-in users: %w", err)
	}

	created := 0
	for _, recipient := range recipients {
		n := &notification.Notification{
			PostID:           postID,
			UserID:           recipient.ID,
			NotificationType: channelFor(recipient),
			MessageContent:   message,
			SentAt:           time.Now(),
			Status:           notification.StatusUnread,
		}

		if _, err := s.NotificationRepository.Create(ctx, n); err != nil {
			s.Logger.Warn("⚠️ Could not create notification, skipping recipient",
				zap.Uint("userID", recipient.ID),
				zap.Uint("postID", postID),
				zap.Error(err))
			continue
		}
		created++
	}

	s.Logger.Info("Broadcast finished",
		zap.Uint("postID", postID),
		zap.Int("recipients", len(recipients)),
		zap.Int("created", created))

	return created, nil
}

// SendToUser creates a single unread notification not derived from a
// post (PostID stays 0). There is no authorization check on this path.
func (s *NotificationService) SendToUser(ctx context.Context, userID uint, message string) (*notificationPort.NotificationDTO, error) {
	channel := user.ChannelEmail
	target, err := s.UserRepository.FindByID(ctx, userID)
	switch {
	case err == nil:
		channel = channelFor(target)
	case errors.Is(err, userPort.ErrNotFound):
		// Keep the default channel; the row is still created.
	default:
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	n := &notification.Notification{
		PostID:           0,
		UserID:           userID,
		NotificationType: channel,
		MessageContent:   message,
		SentAt:           time.Now(),
		Status:           notification.StatusUnread,
	}

	createdNotification, err := s.NotificationRepository.Create(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return toDTO(createdNotification), nil
}

func (s *NotificationService) GetNotificationByID(ctx context.Context, id uint) (*notificationPort.NotificationDTO, error) {
	n, err := s.NotificationRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(n), nil
}

func (s *NotificationService) ListNotifications(ctx context.Context) ([]*notificationPort.NotificationDTO, error) {
	notifications, err := s.NotificationRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(notifications), nil
}

func (s *NotificationService) ListNotificationsByUser(ctx context.Context, userID uint) ([]*notificationPort.NotificationDTO, error) {
	notifications, err := s.NotificationRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toDTOs(notifications), nil
}

func (s *NotificationService) DeleteNotification(ctx context.Context, id uint) error {
	return s.NotificationRepository.DeleteByID(ctx, id)
}

func channelFor(u *user.User) string {
	if u.NotificationType == "" {
		return user.ChannelEmail
	}
	return u.NotificationType
}

func toDTO(n *notification.Notification) *notificationPort.NotificationDTO {
	return &notificationPort.NotificationDTO{
		ID:               n.ID,
		PostID:           n.PostID,
		UserID:           n.UserID,
		NotificationType: n.NotificationType,
		MessageContent:   n.MessageContent,
		SentAt:           n.SentAt,
		Status:           n.Status,
	}
}

func toDTOs(notifications []*notification.Notification) []*notificationPort.NotificationDTO {
	dtos := make([]*notificationPort.NotificationDTO, 0, len(notifications))
	for _, n := range notifications {
		dtos = append(dtos, toDTO(n))
	}
	return dtos
}
