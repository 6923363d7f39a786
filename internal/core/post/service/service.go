package postapp

import (
	"context"
	"errors"
	"fmt"

	"cuff/internal/core/analytics"
	postEntity "cuff/internal/core/post"
	analyticsPort "cuff/internal/ports/analytics"
	postPort "cuff/internal/ports/post"
	userPort "cuff/internal/ports/user"

	"go.uber.org/zap"
)

var (
	ErrUnauthorized  = errors.New("only administrators can create posts")
	ErrInvalidWindow = errors.New("available_from must not be after available_until")
)

// Broadcaster fans a published post out to every opted-in user.
type Broadcaster interface {
	BroadcastNewPost(ctx context.Context, postID uint, message string) (int, error)
}

// EventRecorder records usage analytics events.
type EventRecorder interface {
	RecordEvent(ctx context.Context, in analyticsPort.RecordEventInput) (*analyticsPort.EventDTO, error)
}

// PostService publishes and manages food posts. Publication is gated on
// the owning user being an administrator, checked against the directory
// at call time rather than a cached role.
type PostService struct {
	PostRepository postPort.PostRepository
	UserRepository userPort.UserRepository
	Broadcaster    Broadcaster
	Feed           postPort.PostFeed
	Recorder       EventRecorder
	Logger         *zap.Logger
}

func NewPostService(
	postRepo postPort.PostRepository,
	userRepo userPort.UserRepository,
	broadcaster Broadcaster,
	feed postPort.PostFeed,
	recorder EventRecorder,
	logger *zap.Logger,
) *PostService {
	return &PostService{
		PostRepository: postRepo,
		UserRepository: userRepo,
		Broadcaster:    broadcaster,
		Feed:           feed,
		Recorder:       recorder,
		Logger:         logger,
	}
}

// CreatePost persists a new active post and synchronously notifies every
// opted-in user. The post is the unit of consistency: a failed post
// write aborts everything, while broadcast and feed failures never roll
// the post back.
func (s *PostService) CreatePost(ctx context.Context, in postPort.CreatePostInput) (*postPort.PostDTO, error) {
	owner, err := s.UserRepository.FindByID(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, userPort.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to resolve owning user: %w", err)
	}
	if !owner.IsAdmin {
		return nil, ErrUnauthorized
	}

	if in.AvailableFrom.After(in.AvailableUntil) {
		return nil, ErrInvalidWindow
	}

	p := &postEntity.Post{
		UserID:               in.UserID,
		Title:                in.Title,
		Location:             in.Location,
		Description:          in.Description,
		DietarySpecification: in.DietarySpecification,
		AvailableFrom:        in.AvailableFrom,
		AvailableUntil:       in.AvailableUntil,
		ImageURL:             in.ImageURL,
		Status:               postEntity.StatusActive,
	}

	created, err := s.PostRepository.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	message := fmt.Sprintf("New post: %s", created.Title)
	notified, err := s.Broadcaster.BroadcastNewPost(ctx, created.ID, message)
	if err != nil {
		s.Logger.Warn("⚠️ Broadcast failed, post stands without notifications",
			zap.Uint("postID", created.ID),
			zap.Error(err))
	}

	if err := s.Feed.PushActivePost(ctx, created.ID, created.CreatedAt); err != nil {
		s.Logger.Warn("Could not push post to recent feed", zap.Uint("postID", created.ID), zap.Error(err))
	}

	// Makes the post-saved/notifications-sent boundary observable.
	if _, err := s.Recorder.RecordEvent(ctx, analyticsPort.RecordEventInput{
		MetricType: analytics.MetricPostPublished,
		PostID:     &created.ID,
		UserID:     &created.UserID,
		Location:   created.Location,
		Metadata:   fmt.Sprintf(`{"notified": %d}`, notified),
	}); err != nil {
		s.Logger.Warn("Could not record publish event", zap.Uint("postID", created.ID), zap.Error(err))
	}

	s.Logger.Info("Post published",
		zap.Uint("postID", created.ID),
		zap.Uint("userID", created.UserID),
		zap.Int("notified", notified))

	return toDTO(created), nil
}

func (s *PostService) GetPostByID(ctx context.Context, id uint) (*postPort.PostDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

func (s *PostService) ListActivePosts(ctx context.Context) ([]*postPort.PostDTO, error) {
	posts, err := s.PostRepository.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, toDTO(p))
	}
	return dtos, nil
}

// ListRecentPosts reads the Redis feed and resolves each id against the
// database, skipping entries that no longer resolve to an active post.
func (s *PostService) ListRecentPosts(ctx context.Context, limit int64) ([]*postPort.PostDTO, error) {
	ids, err := s.Feed.RecentPostIDs(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read recent feed: %w", err)
	}

	dtos := make([]*postPort.PostDTO, 0, len(ids))
	for _, id := range ids {
		p, err := s.PostRepository.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, postPort.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if p.Status != postEntity.StatusActive {
			continue
		}
		dtos = append(dtos, toDTO(p))
	}
	return dtos, nil
}

func (s *PostService) UpdatePost(ctx context.Context, id uint, in postPort.UpdatePostInput) (*postPort.PostDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.AvailableFrom.After(in.AvailableUntil) {
		return nil, ErrInvalidWindow
	}

	p.Title = in.Title
	p.Location = in.Location
	p.Description = in.Description
	p.DietarySpecification = in.DietarySpecification
	p.AvailableFrom = in.AvailableFrom
	p.AvailableUntil = in.AvailableUntil
	p.ImageURL = in.ImageURL
	if in.Status != "" {
		p.Status = in.Status
	}

	saved, err := s.PostRepository.Save(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return toDTO(saved), nil
}

// DeletePost soft-deletes: the row stays, status flips to deleted.
func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	p, err := s.PostRepository.FindByID(ctx, id)
	if err != nil {
		return err
	}

	p.Status = postEntity.StatusDeleted
	if _, err := s.PostRepository.Save(ctx, p); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if err := s.Feed.RemovePost(ctx, id); err != nil {
		s.Logger.Warn("Could not remove post from recent feed", zap.Uint("postID", id), zap.Error(err))
	}
	return nil
}

func toDTO(p *postEntity.Post) *postPort.PostDTO {
	return &postPort.PostDTO{
		ID:                   p.ID,
		UserID:               p.UserID,
		Title:                p.Title,
		Location:             p.Location,
		Description:          p.Description,
		DietarySpecification: p.DietarySpecification,
		AvailableFrom:        p.AvailableFrom,
		AvailableUntil:       p.AvailableUntil,
		ImageURL:             p.ImageURL,
		Status:               p.Status,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}
