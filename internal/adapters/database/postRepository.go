package database

import (
	"context"
	"errors"

	"cuff/internal/config"
	"cuff/internal/core/post"
	postPort "cuff/internal/ports/post"

	"gorm.io/gorm"
)

// PostRepositoryDatabase implements PostRepository on MySQL.
type PostRepositoryDatabase struct{}

func NewPostRepositoryDatabase() *PostRepositoryDatabase {
	return &PostRepositoryDatabase{}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := config.DB.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id uint) (*post.Post, error) {
	var p post.Post
	if err := config.DB.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, postPort.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) FindAllActive(ctx context.Context) ([]*post.Post, error) {
	var posts []*post.Post
	if err := config.DB.WithContext(ctx).
		Where("status = ?", post.StatusActive).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) Save(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := config.DB.WithContext(ctx).Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}
