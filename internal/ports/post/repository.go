package post

import (
	"context"
	"errors"
	"time"

	"cuff/internal/core/post"
)

// ErrNotFound is returned by lookups when no post matches.
var ErrNotFound = errors.New("post not found")

// PostRepository is the outbound port for post storage.
type PostRepository interface {
	Create(ctx context.Context, p *post.Post) (*post.Post, error)
	FindByID(ctx context.Context, id uint) (*post.Post, error)
	FindAllActive(ctx context.Context) ([]*post.Post, error)
	Save(ctx context.Context, p *post.Post) (*post.Post, error)
}

// PostFeed is the outbound port for the Redis recent-posts feed. All
// feed writes are best-effort: the database row is the source of truth.
type PostFeed interface {
	PushActivePost(ctx context.Context, postID uint, createdAt time.Time) error
	RemovePost(ctx context.Context, postID uint) error
	RecentPostIDs(ctx context.Context, limit int64) ([]uint, error)
}

type PostDTO struct {
	ID                   uint      `json:"id"`
	UserID               uint      `json:"userId"`
	Title                string    `json:"title"`
	Location             string    `json:"location"`
	Description          string    `json:"description"`
	DietarySpecification string    `json:"dietarySpecification"`
	AvailableFrom        time.Time `json:"availableFrom"`
	AvailableUntil       time.Time `json:"availableUntil"`
	ImageURL             string    `json:"imageUrl"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

type CreatePostInput struct {
	UserID               uint
	Title                string
	Location             string
	Description          string
	DietarySpecification string
	AvailableFrom        time.Time
	AvailableUntil       time.Time
	ImageURL             string
}

type UpdatePostInput struct {
	Title                string
	Location             string
	Description          string
	DietarySpecification string
	AvailableFrom        time.Time
	AvailableUntil       time.Time
	ImageURL             string
	Status               string
}
