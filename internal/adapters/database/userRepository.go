package database

import (
	"context"
	"errors"

	"cuff/internal/config"
	"cuff/internal/core/user"
	userPort "cuff/internal/ports/user"

	"gorm.io/gorm"
)

// UserRepositoryDatabase implements UserRepository on MySQL.
type UserRepositoryDatabase struct{}

func NewUserRepositoryDatabase() *UserRepositoryDatabase {
	return &UserRepositoryDatabase{}
}

func (repo *UserRepositoryDatabase) Create(ctx context.Context, u *user.User) (*user.User, error) {
	if err := config.DB.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (repo *UserRepositoryDatabase) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var u user.User
	if err := config.DB.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userPort.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	if err := config.DB.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userPort.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) FindAllOptedIn(ctx context.Context) ([]*user.User, error) {
	var users []*user.User
	if err := config.DB.WithContext(ctx).Where("notifications_enabled = ?", true).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (repo *UserRepositoryDatabase) FindAll(ctx context.Context) ([]*user.User, error) {
	var users []*user.User
	if err := config.DB.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (repo *UserRepositoryDatabase) Save(ctx context.Context, u *user.User) (*user.User, error) {
	if err := config.DB.WithContext(ctx).Save(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (repo *UserRepositoryDatabase) DeleteByID(ctx context.Context, id uint) error {
	return config.DB.WithContext(ctx).Delete(&user.User{}, "id = ?", id).Error
}
