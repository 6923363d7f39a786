package user

import (
	"context"
	"errors"

	"cuff/internal/core/user"
)

// ErrNotFound is returned by lookups when no user matches.
var ErrNotFound = errors.New("user not found")

// UserRepository is the outbound port for the user directory.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) (*user.User, error)
	FindByID(ctx context.Context, id uint) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindAllOptedIn(ctx context.Context) ([]*user.User, error)
	FindAll(ctx context.Context) ([]*user.User, error)
	Save(ctx context.Context, u *user.User) (*user.User, error)
	DeleteByID(ctx context.Context, id uint) error
}

type UserDTO struct {
	ID                   uint   `json:"id"`
	FirstName            string `json:"firstName"`
	LastName             string `json:"lastName"`
	Email                string `json:"email"`
	NotificationType     string `json:"notificationType"`
	DietaryPreferences   string `json:"dietaryPreferences"`
	IsAdmin              bool   `json:"isAdmin"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
}

type RegisterInput struct {
	FirstName            string
	LastName             string
	Email                string
	Password             string
	NotificationType     string
	DietaryPreferences   string
	NotificationsEnabled bool
}

type PreferencesDTO struct {
	NotificationType   string `json:"notificationType"`
	DietaryPreferences string `json:"dietaryPreferences"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
	User      UserDTO `json:"user"`
}
