package app

import (
	"context"
	"time"

	"museum-api/internal/model"
	"museum-api/internal/repository"
)

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, user *model.User) error
	List(ctx context.Context, offset, limit int) ([]model.User, error)
	GetByID(ctx context.Context, id uint) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByLogin(ctx context.Context, email, username string) (*model.User, error)
}

type NewsStore interface {
	Create(ctx context.Context, news *model.News) error
	Update(ctx context.Context, news *model.News) error
	Delete(ctx context.Context, news *model.News) error
	GetByID(ctx context.Context, id uint) (*model.News, error)
	List(ctx context.Context, filter repository.NewsFilter) ([]model.News, error)
}

type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

type TokenIssuer interface {
	Issue(subject string) (string, time.Time, error)
}

type TokenVerifier interface {
	Verify(token string) (string, error)
}

const (
	defaultPageLimit = 100
	maxPageLimit     = 100
)

func normalizePage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > maxPageLimit {
		limit = defaultPageLimit
	}
	return skip, limit
}
