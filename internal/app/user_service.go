package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"museum-api/internal/model"
	"museum-api/internal/pkg/password"
)

type UserService struct {
	users  UserStore
	hasher PasswordHasher
}

type CreateUserInput struct {
	Email    string
	Username string
	FullName *string
	Password string
	IsAdmin  bool
}

// UpdateUserInput follows "set if provided": nil fields are left unchanged.
// IsActive and IsAdmin may only be set by an admin.
type UpdateUserInput struct {
	FullName *string
	Email    *string
	Password *string
	IsActive *bool
	IsAdmin  *bool
}

type AdminSeed struct {
	Email    string
	Username string
	Password string
	FullName string
}

func NewUserService(users UserStore, hasher PasswordHasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

func (s *UserService) List(ctx context.Context, skip, limit int) ([]model.User, error) {
	skip, limit = normalizePage(skip, limit)
	return s.users.List(ctx, skip, limit)
}

func (s *UserService) Get(ctx context.Context, caller *model.User, id uint) (*model.User, error) {
	if err := authorizeSelfOrAdmin(caller, id); err != nil {
		return nil, err
	}
	return s.mustGet(ctx, id)
}

func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*model.User, error) {
	email := normalizeEmail(input.Email)
	username := strings.TrimSpace(input.Username)
	if email == "" || username == "" || input.Password == "" {
		return nil, ErrInvalidInput
	}

	if err := s.ensureEmailFree(ctx, email, 0); err != nil {
		return nil, err
	}
	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameExists
	}

	hash, err := s.hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        email,
		Username:     username,
		FullName:     normalizeOptional(input.FullName),
		PasswordHash: hash,
		IsActive:     true,
		IsAdmin:      input.IsAdmin,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, caller *model.User, id uint, input UpdateUserInput) (*model.User, error) {
	if err := authorizeSelfOrAdmin(caller, id); err != nil {
		return nil, err
	}
	if (input.IsActive != nil || input.IsAdmin != nil) && !caller.IsAdmin {
		return nil, ErrForbidden
	}

	user, err := s.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		if email == "" {
			return nil, ErrInvalidInput
		}
		if email != user.Email {
			if err := s.ensureEmailFree(ctx, email, user.ID); err != nil {
				return nil, err
			}
			user.Email = email
		}
	}
	if input.FullName != nil {
		user.FullName = normalizeOptional(input.FullName)
	}
	if input.Password != nil {
		if *input.Password == "" {
			return nil, ErrInvalidInput
		}
		hash, err := s.hashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.IsAdmin != nil {
		user.IsAdmin = *input.IsAdmin
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	user, err := s.mustGet(ctx, id)
	if err != nil {
		return err
	}
	return s.users.Delete(ctx, user)
}

// EnsureAdmin creates the seed administrator unless a user with its email
// already exists. It reports whether a user was created.
func (s *UserService) EnsureAdmin(ctx context.Context, seed AdminSeed) (bool, error) {
	existing, err := s.users.GetByEmail(ctx, normalizeEmail(seed.Email))
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	fullName := seed.FullName
	if _, err := s.Create(ctx, CreateUserInput{
		Email:    seed.Email,
		Username: seed.Username,
		FullName: &fullName,
		Password: seed.Password,
		IsAdmin:  true,
	}); err != nil {
		return false, fmt.Errorf("seed admin failed: %w", err)
	}
	return true, nil
}

func (s *UserService) mustGet(ctx context.Context, id uint) (*model.User, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ensureEmailFree fails with ErrEmailExists when email belongs to a user other than ownerID.
func (s *UserService) ensureEmailFree(ctx context.Context, email string, ownerID uint) error {
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != ownerID {
		return ErrEmailExists
	}
	return nil
}

// hashPassword reports passwords the hasher refuses as invalid input.
func (s *UserService) hashPassword(plaintext string) (string, error) {
	hash, err := s.hasher.Hash(plaintext)
	if errors.Is(err, password.ErrPasswordTooLong) || errors.Is(err, password.ErrEmptyPassword) {
		return "", fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return hash, err
}

func authorizeSelfOrAdmin(caller *model.User, targetID uint) error {
	if caller == nil {
		return ErrUnauthenticated
	}
	if caller.ID != targetID && !caller.IsAdmin {
		return ErrForbidden
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
