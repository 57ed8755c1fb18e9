package app

import (
	"context"
	"strings"
	"time"

	"museum-api/internal/model"
)

const TokenTypeBearer = "bearer"

type AuthService struct {
	users  UserStore
	hasher PasswordHasher
	tokens TokenIssuer
}

// LoginInput.Login is matched against both email and username.
type LoginInput struct {
	Login    string
	Password string
}

type AuthResult struct {
	Token     string
	TokenType string
	ExpiresAt time.Time
	User      *model.User
}

func NewAuthService(users UserStore, hasher PasswordHasher, tokens TokenIssuer) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	login := strings.TrimSpace(input.Login)
	if login == "" || input.Password == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.users.GetByLogin(ctx, normalizeEmail(login), login)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	token, expiresAt, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		Token:     token,
		TokenType: TokenTypeBearer,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}
