package app

import (
	"context"
	"fmt"
	"strings"

	"museum-api/internal/model"
)

// Gate resolves bearer tokens to users and enforces the active/admin
// predicates. It only reads from the store.
type Gate struct {
	users  UserStore
	tokens TokenVerifier
}

func NewGate(users UserStore, tokens TokenVerifier) *Gate {
	return &Gate{users: users, tokens: tokens}
}

func (g *Gate) RequireActiveUser(ctx context.Context, token string) (*model.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrUnauthenticated
	}

	username, err := g.tokens.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	user, err := g.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrSubjectNotFound
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}
	return user, nil
}

func (g *Gate) RequireAdmin(ctx context.Context, token string) (*model.User, error) {
	user, err := g.RequireActiveUser(ctx, token)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin {
		return nil, ErrForbidden
	}
	return user, nil
}
