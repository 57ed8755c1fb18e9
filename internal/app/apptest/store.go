// Package apptest provides in-memory stores for exercising services and
// handlers without a database.
package apptest

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"museum-api/internal/model"
	"museum-api/internal/repository"
)

var ErrDuplicate = errors.New("duplicate key")

type UserStore struct {
	mu      sync.Mutex
	nextID  uint
	rows    map[uint]model.User
	Inserts int
}

func NewUserStore(users ...model.User) *UserStore {
	s := &UserStore{rows: make(map[uint]model.User)}
	for _, u := range users {
		u := u
		if err := s.Create(context.Background(), &u); err != nil {
			panic(err)
		}
	}
	s.Inserts = 0
	return s
}

func (s *UserStore) Create(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range s.rows {
		if row.Email == user.Email || row.Username == user.Username {
			return ErrDuplicate
		}
	}
	if user.ID == 0 {
		s.nextID++
		user.ID = s.nextID
	} else if user.ID > s.nextID {
		s.nextID = user.ID
	}
	now := time.Now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now
	s.rows[user.ID] = *user
	s.Inserts++
	return nil
}

func (s *UserStore) Update(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, row := range s.rows {
		if id != user.ID && (row.Email == user.Email || row.Username == user.Username) {
			return ErrDuplicate
		}
	}
	user.UpdatedAt = time.Now().UTC()
	s.rows[user.ID] = *user
	return nil
}

func (s *UserStore) Delete(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rows, user.ID)
	return nil
}

func (s *UserStore) List(_ context.Context, offset, limit int) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.User, 0, len(s.rows))
	for _, row := range s.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return page(out, offset, limit), nil
}

func (s *UserStore) GetByID(_ context.Context, id uint) (*model.User, error) {
	return s.find(func(u model.User) bool { return u.ID == id }), nil
}

func (s *UserStore) GetByUsername(_ context.Context, username string) (*model.User, error) {
	return s.find(func(u model.User) bool { return u.Username == username }), nil
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	return s.find(func(u model.User) bool { return u.Email == email }), nil
}

func (s *UserStore) GetByLogin(_ context.Context, email, username string) (*model.User, error) {
	return s.find(func(u model.User) bool { return u.Email == email || u.Username == username }), nil
}

func (s *UserStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

func (s *UserStore) find(match func(model.User) bool) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.rows {
		if match(row) {
			u := row
			return &u
		}
	}
	return nil
}

type NewsStore struct {
	mu     sync.Mutex
	nextID uint
	rows   map[uint]model.News
}

func NewNewsStore(items ...model.News) *NewsStore {
	s := &NewsStore{rows: make(map[uint]model.News)}
	for _, n := range items {
		n := n
		_ = s.Create(context.Background(), &n)
	}
	return s
}

func (s *NewsStore) Create(_ context.Context, news *model.News) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	news.ID = s.nextID
	now := time.Now().UTC()
	news.CreatedAt, news.UpdatedAt = now, now
	s.rows[news.ID] = *news
	return nil
}

func (s *NewsStore) Update(_ context.Context, news *model.News) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	news.UpdatedAt = time.Now().UTC()
	s.rows[news.ID] = *news
	return nil
}

func (s *NewsStore) Delete(_ context.Context, news *model.News) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rows, news.ID)
	return nil
}

func (s *NewsStore) GetByID(_ context.Context, id uint) (*model.News, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (s *NewsStore) List(_ context.Context, filter repository.NewsFilter) ([]model.News, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.News, 0, len(s.rows))
	for _, row := range s.rows {
		if filter.PublishedOnly && !row.IsPublished {
			continue
		}
		if filter.Category != "" && (row.Category == nil || *row.Category != filter.Category) {
			continue
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return page(out, filter.Offset, filter.Limit), nil
}

func page[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
