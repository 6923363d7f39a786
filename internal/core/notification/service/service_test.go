package notificationapp

import (
	"context"
	"errors"
	"testing"

	"cuff/internal/core/notification"
	"cuff/internal/core/user"
	notificationPort "cuff/internal/ports/notification"
	userPort "cuff/internal/ports/user"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserRepo struct {
	users      map[uint]*user.User
	optedInErr error
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) (*user.User, error) {
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userPort.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, userPort.ErrNotFound
}

func (f *fakeUserRepo) FindAllOptedIn(ctx context.Context) ([]*user.User, error) {
	if f.optedInErr != nil {
		return nil, f.optedInErr
	}
	var optedIn []*user.User
	for _, u := range f.users {
		if u.NotificationsEnabled {
			optedIn = append(optedIn, u)
		}
	}
	return optedIn, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]*user.User, error) {
	var all []*user.User
	for _, u := range f.users {
		all = append(all, u)
	}
	return all, nil
}

func (f *fakeUserRepo) Save(ctx context.Context, u *user.User) (*user.User, error) {
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) DeleteByID(ctx context.Context, id uint) error {
	delete(f.users, id)
	return nil
}

type fakeNotificationRepo struct {
	notifications []*notification.Notification
	nextID        uint
	failForUser   map[uint]bool
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n *notification.Notification) (*notification.Notification, error) {
	if f.failForUser[n.UserID] {
		return nil, errors.New("write failed")
	}
	f.nextID++
	n.ID = f.nextID
	f.notifications = append(f.notifications, n)
	return n, nil
}

func (f *fakeNotificationRepo) FindByID(ctx context.Context, id uint) (*notification.Notification, error) {
	for _, n := range f.notifications {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, notificationPort.ErrNotFound
}

func (f *fakeNotificationRepo) FindAll(ctx context.Context) ([]*notification.Notification, error) {
	return f.notifications, nil
}

func (f *fakeNotificationRepo) FindByUserID(ctx context.Context, userID uint) ([]*notification.Notification, error) {
	var result []*notification.Notification
	for _, n := range f.notifications {
		if n.UserID == userID {
			result = append(result, n)
		}
	}
	return result, nil
}

func (f *fakeNotificationRepo) DeleteByID(ctx context.Context, id uint) error {
	for i, n := range f.notifications {
		if n.ID == id {
			f.notifications = append(f.notifications[:i], f.notifications[i+1:]...)
			return nil
		}
	}
	return nil
}

func directory() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*user.User{
		1: {ID: 1, Email: "admin@example.com", IsAdmin: true, NotificationsEnabled: false},
		2: {ID: 2, Email: "a@example.com", NotificationType: "email", NotificationsEnabled: true},
		3: {ID: 3, Email: "b@example.com", NotificationType: "sms", NotificationsEnabled: true},
		4: {ID: 4, Email: "c@example.com", NotificationsEnabled: true},
		5: {ID: 5, Email: "d@example.com", NotificationsEnabled: false},
	}}
}

func TestBroadcastNewPostFansOutToOptedInUsers(t *testing.T) {
	users := directory()
	notifications := &fakeNotificationRepo{failForUser: map[uint]bool{}}
	svc := NewNotificationService(notifications, users, zap.NewNop())

	created, err := svc.BroadcastNewPost(context.Background(), 42, "New post: Free bread")
	require.NoError(t, err)
	require.Equal(t, 3, created)
	require.Len(t, notifications.notifications, 3)

	targets := map[uint]bool{}
	for _, n := range notifications.notifications {
		targets[n.UserID] = true
		require.Equal(t, uint(42), n.PostID)
		require.Equal(t, notification.StatusUnread, n.Status)
		require.Equal(t, "New post: Free bread", n.MessageContent)
		require.False(t, n.SentAt.IsZero())
	}
	require.Equal(t, map[uint]bool{2: true, 3: true, 4: true}, targets)
}

func TestBroadcastUsesRecipientChannel(t *testing.T) {
	users := directory()
	notifications := &fakeNotificationRepo{failForUser: map[uint]bool{}}
	svc := NewNotificationService(notifications, users, zap.NewNop())

	_, err := svc.BroadcastNewPost(context.Background(), 42, "msg")
	require.NoError(t, err)

	channels := map[uint]string{}
	for _, n := range notifications.notifications {
		channels[n.UserID] = n.NotificationType
	}
	require.Equal(t, "email", channels[2])
	require.Equal(t, "sms", channels[3])
	// User 4 set no channel; the default applies.
	require.Equal(t, "email", channels[4])
}

func TestBroadcastContinuesPastFailedWrite(t *testing.T) {
	users := directory()
	notifications := &fakeNotificationRepo{failForUser: map[uint]bool{3: true}}
	svc := NewNotificationService(notifications, users, zap.NewNop())

	created, err := svc.BroadcastNewPost(context.Background(), 7, "msg")
	require.NoError(t, err)
	require.Equal(t, 2, created)

	for _, n := range notifications.notifications {
		require.NotEqual(t, uint(3), n.UserID)
	}
}

func TestBroadcastFailsWhenDirectoryUnavailable(t *testing.T) {
	users := directory()
	users.optedInErr = errors.New("directory down")
	notifications := &fakeNotificationRepo{failForUser: map[uint]bool{}}
	svc := NewNotificationService(notifications, users, zap.NewNop())

	created, err := svc.BroadcastNewPost(context.Background(), 7, "msg")
	require.Error(t, err)
	require.Zero(t, created)
	require.Empty(t, notifications.notifications)
}

func TestSendToUserCreatesDirectNotification(t *testing.T) {
	users := directory()
	notifications := &fakeNotificationRepo{failForUser: map[uint]bool{}}
	svc := NewNotificationService(notifications, users, zap.NewNop())

	n, err := svc.SendToUser(context.Background(), 3, "hello")
	require.NoError(t, err)
	require.Equal(t, uint(0), n.PostID)
	require.Equal(t, uint(3), n.UserID)
	require.Equal(t, "sms", n.NotificationType)
	require.Equal(t, notification.StatusUnread, n.Status)
	require.NotZero(t, n.ID)
}

func TestSendToUnknownUserDefaultsChannel(t *testing.T) {
	users := directory()
	notifications := &fakeNotificationRepo{failForUser: map[uint]bool{}}
	svc := NewNotificationService(notifications, users, zap.NewNop())

	n, err := svc.SendToUser(context.Background(), 999, "hello")
	require.NoError(t, err)
	require.Equal(t, "email", n.NotificationType)
	require.Equal(t, uint(999), n.UserID)
}
