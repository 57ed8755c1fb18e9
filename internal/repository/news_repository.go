package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"museum-api/internal/model"
)

type NewsRepository struct {
	db *gorm.DB
}

// NewsFilter narrows List. An empty Category matches every category.
type NewsFilter struct {
	PublishedOnly bool
	Category      string
	Offset        int
	Limit         int
}

func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) Create(ctx context.Context, news *model.News) error {
	if err := r.db.WithContext(ctx).Create(news).Error; err != nil {
		return fmt.Errorf("create news failed: %w", err)
	}
	return nil
}

func (r *NewsRepository) Update(ctx context.Context, news *model.News) error {
	if err := r.db.WithContext(ctx).Save(news).Error; err != nil {
		return fmt.Errorf("update news failed: %w", err)
	}
	return nil
}

func (r *NewsRepository) Delete(ctx context.Context, news *model.News) error {
	if err := r.db.WithContext(ctx).Delete(news).Error; err != nil {
		return fmt.Errorf("delete news failed: %w", err)
	}
	return nil
}

func (r *NewsRepository) GetByID(ctx context.Context, id uint) (*model.News, error) {
	var news model.News
	if err := r.db.WithContext(ctx).First(&news, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query news by id failed: %w", err)
	}
	return &news, nil
}

func (r *NewsRepository) List(ctx context.Context, filter NewsFilter) ([]model.News, error) {
	q := r.db.WithContext(ctx)
	if filter.PublishedOnly {
		q = q.Where("is_published = ?", true)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	var list []model.News
	if err := q.Order("created_at DESC").Offset(filter.Offset).Limit(filter.Limit).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list news failed: %w", err)
	}
	return list, nil
}
