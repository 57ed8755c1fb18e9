package app

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"museum-api/internal/app/apptest"
	"museum-api/internal/model"
	"museum-api/internal/pkg/password"
)

var ctx = context.Background()

func newUserFixture() (*UserService, *apptest.UserStore, model.User, model.User, model.User) {
	admin := apptest.NewUser(1, "admin", true, true)
	ana := apptest.NewUser(2, "ana", true, false)
	bruno := apptest.NewUser(3, "bruno", true, false)
	store := apptest.NewUserStore(admin, ana, bruno)
	return NewUserService(store, apptest.PlainHasher{}), store, admin, ana, bruno
}

func TestUserService_CreateDuplicateEmailInsertsNothing(t *testing.T) {
	svc, store, _, _, _ := newUserFixture()
	before := store.Count()

	_, err := svc.Create(ctx, CreateUserInput{
		Email:    "ANA@museu.com",
		Username: "another-ana",
		Password: "password123",
	})

	assert.ErrorIs(t, err, ErrEmailExists)
	assert.Equal(t, before, store.Count())
	assert.Zero(t, store.Inserts)
}

func TestUserService_CreateDuplicateUsername(t *testing.T) {
	svc, store, _, _, _ := newUserFixture()

	_, err := svc.Create(ctx, CreateUserInput{
		Email:    "fresh@museu.com",
		Username: "bruno",
		Password: "password123",
	})

	assert.ErrorIs(t, err, ErrUsernameExists)
	assert.Zero(t, store.Inserts)
}

func TestUserService_Create(t *testing.T) {
	svc, store, _, _, _ := newUserFixture()

	user, err := svc.Create(ctx, CreateUserInput{
		Email:    " Guide@Museu.com ",
		Username: "guide",
		FullName: apptest.StrPtr("  Museum Guide "),
		Password: "password123",
	})
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, "guide@museu.com", user.Email)
	assert.Equal(t, "Museum Guide", *user.FullName)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsAdmin)
	assert.Equal(t, "plain:password123", user.PasswordHash)
	assert.Equal(t, 1, store.Inserts)
}

func TestUserService_UpdatePermissions(t *testing.T) {
	svc, _, admin, ana, bruno := newUserFixture()

	testCases := []struct {
		name    string
		caller  model.User
		target  uint
		input   UpdateUserInput
		wantErr error
	}{
		{name: "self updates full name", caller: ana, target: ana.ID, input: UpdateUserInput{FullName: apptest.StrPtr("Ana Lima")}},
		{name: "other non-admin profile", caller: ana, target: bruno.ID, input: UpdateUserInput{FullName: apptest.StrPtr("Hacked")}, wantErr: ErrForbidden},
		{name: "admin updates anyone", caller: admin, target: bruno.ID, input: UpdateUserInput{FullName: apptest.StrPtr("Bruno Reis")}},
		{name: "self cannot grant admin", caller: ana, target: ana.ID, input: UpdateUserInput{IsAdmin: apptest.BoolPtr(true)}, wantErr: ErrForbidden},
		{name: "admin deactivates user", caller: admin, target: bruno.ID, input: UpdateUserInput{IsActive: apptest.BoolPtr(false)}},
		{name: "missing target", caller: admin, target: 99, input: UpdateUserInput{FullName: apptest.StrPtr("x")}, wantErr: ErrUserNotFound},
		{name: "email taken", caller: ana, target: ana.ID, input: UpdateUserInput{Email: apptest.StrPtr("bruno@museu.com")}, wantErr: ErrEmailExists},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			caller := tc.caller
			_, err := svc.Update(ctx, &caller, tc.target, tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUserService_UpdateSetIfProvided(t *testing.T) {
	svc, store, _, ana, _ := newUserFixture()
	caller := ana

	updated, err := svc.Update(ctx, &caller, ana.ID, UpdateUserInput{FullName: apptest.StrPtr("Ana Lima")})
	require.NoError(t, err)
	assert.Equal(t, "Ana Lima", *updated.FullName)
	assert.Equal(t, ana.Email, updated.Email)
	assert.Equal(t, ana.PasswordHash, updated.PasswordHash)

	updated, err = svc.Update(ctx, &caller, ana.ID, UpdateUserInput{
		Email:    apptest.StrPtr("ana.lima@museu.com"),
		Password: apptest.StrPtr("new-password"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Lima", *updated.FullName)
	assert.Equal(t, "ana.lima@museu.com", updated.Email)

	stored, err := store.GetByID(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, "plain:new-password", stored.PasswordHash)
}

func TestUserService_GetAndList(t *testing.T) {
	svc, _, admin, ana, bruno := newUserFixture()

	caller := ana
	got, err := svc.Get(ctx, &caller, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana", got.Username)

	_, err = svc.Get(ctx, &caller, bruno.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	adminCaller := admin
	_, err = svc.Get(ctx, &adminCaller, 42)
	assert.ErrorIs(t, err, ErrUserNotFound)

	list, err := svc.List(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "ana", list[0].Username)
}

func TestUserService_Delete(t *testing.T) {
	svc, store, _, ana, _ := newUserFixture()

	require.NoError(t, svc.Delete(ctx, ana.ID))
	assert.Equal(t, 2, store.Count())
	assert.ErrorIs(t, svc.Delete(ctx, ana.ID), ErrUserNotFound)
}

func TestUserService_EnsureAdmin(t *testing.T) {
	store := apptest.NewUserStore()
	svc := NewUserService(store, apptest.PlainHasher{})
	seed := AdminSeed{Email: "admin@museu.com", Username: "admin", Password: "Admin@123", FullName: "Administrador do Museu"}

	created, err := svc.EnsureAdmin(ctx, seed)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureAdmin(ctx, seed)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 1, store.Count())

	admin, err := store.GetByEmail(ctx, "admin@museu.com")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.True(t, admin.IsAdmin)
	assert.True(t, admin.IsActive)
	assert.Equal(t, "Administrador do Museu", *admin.FullName)
}

func TestUserService_PasswordOverBcryptLimit(t *testing.T) {
	admin := apptest.NewUser(1, "admin", true, true)
	store := apptest.NewUserStore(admin)
	svc := NewUserService(store, password.NewHasher(4))
	long := strings.Repeat("x", password.MaxBytes+1)

	_, err := svc.Create(ctx, CreateUserInput{
		Email:    "long@museu.com",
		Username: "long",
		Password: long,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, password.ErrPasswordTooLong)
	assert.Zero(t, store.Inserts)

	_, err = svc.Update(ctx, &admin, admin.ID, UpdateUserInput{Password: &long})
	assert.ErrorIs(t, err, ErrInvalidInput)

	stored, err := store.GetByID(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, admin.PasswordHash, stored.PasswordHash)
}
