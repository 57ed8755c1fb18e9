package app

import (
	"context"
	"strings"
	"time"

	"museum-api/internal/model"
	"museum-api/internal/repository"
)

type NewsService struct {
	news NewsStore
	now  func() time.Time
}

type ListNewsInput struct {
	PublishedOnly bool
	Category      string
	Skip          int
	Limit         int
}

type CreateNewsInput struct {
	Title       string
	Content     string
	Summary     *string
	Category    *string
	ImageURL    *string
	IsPublished bool
}

type UpdateNewsInput struct {
	Title       *string
	Content     *string
	Summary     *string
	Category    *string
	ImageURL    *string
	IsPublished *bool
}

func NewNewsService(news NewsStore) *NewsService {
	return &NewsService{
		news: news,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *NewsService) List(ctx context.Context, input ListNewsInput) ([]model.News, error) {
	skip, limit := normalizePage(input.Skip, input.Limit)
	return s.news.List(ctx, repository.NewsFilter{
		PublishedOnly: input.PublishedOnly,
		Category:      strings.TrimSpace(input.Category),
		Offset:        skip,
		Limit:         limit,
	})
}

func (s *NewsService) Get(ctx context.Context, id uint) (*model.News, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}
	news, err := s.news.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if news == nil {
		return nil, ErrNewsNotFound
	}
	return news, nil
}

func (s *NewsService) Create(ctx context.Context, author *model.User, input CreateNewsInput) (*model.News, error) {
	if author == nil {
		return nil, ErrUnauthenticated
	}
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" || content == "" {
		return nil, ErrInvalidInput
	}

	authorID := author.ID
	news := &model.News{
		Title:    title,
		Content:  content,
		Summary:  normalizeOptional(input.Summary),
		Category: normalizeOptional(input.Category),
		ImageURL: normalizeOptional(input.ImageURL),
		AuthorID: &authorID,
	}
	s.setPublished(news, input.IsPublished)

	if err := s.news.Create(ctx, news); err != nil {
		return nil, err
	}
	return news, nil
}

func (s *NewsService) Update(ctx context.Context, id uint, input UpdateNewsInput) (*model.News, error) {
	news, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrInvalidInput
		}
		news.Title = title
	}
	if input.Content != nil {
		content := strings.TrimSpace(*input.Content)
		if content == "" {
			return nil, ErrInvalidInput
		}
		news.Content = content
	}
	if input.Summary != nil {
		news.Summary = normalizeOptional(input.Summary)
	}
	if input.Category != nil {
		news.Category = normalizeOptional(input.Category)
	}
	if input.ImageURL != nil {
		news.ImageURL = normalizeOptional(input.ImageURL)
	}
	if input.IsPublished != nil {
		s.setPublished(news, *input.IsPublished)
	}

	if err := s.news.Update(ctx, news); err != nil {
		return nil, err
	}
	return news, nil
}

func (s *NewsService) Delete(ctx context.Context, id uint) error {
	news, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.news.Delete(ctx, news)
}

// setPublished stamps PublishedAt on the first false->true transition only.
func (s *NewsService) setPublished(news *model.News, published bool) {
	if published && !news.IsPublished && news.PublishedAt == nil {
		now := s.now()
		news.PublishedAt = &now
	}
	news.IsPublished = published
}
