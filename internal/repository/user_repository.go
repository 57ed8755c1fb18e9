package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"museum-api/internal/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user failed: %w", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("update user failed: %w", err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Delete(user).Error; err != nil {
		return fmt.Errorf("delete user failed: %w", err)
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context, offset, limit int) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("id ASC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users failed: %w", err)
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by id failed: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by username failed: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by email failed: %w", err)
	}
	return &user, nil
}

// GetByLogin matches a user owning either the email or the username.
func (r *UserRepository) GetByLogin(ctx context.Context, email, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ? OR username = ?", email, username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by login failed: %w", err)
	}
	return &user, nil
}
