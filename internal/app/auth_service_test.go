package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"museum-api/internal/app/apptest"
)

func TestAuthService_Login(t *testing.T) {
	tokens := newTokens(t)
	users := apptest.NewUserStore(
		apptest.NewUser(1, "admin", true, true),
		apptest.NewUser(2, "former", false, false),
	)
	svc := NewAuthService(users, apptest.PlainHasher{}, tokens)

	testCases := []struct {
		name     string
		input    LoginInput
		wantErr  error
		wantUser string
	}{
		{name: "by username", input: LoginInput{Login: "admin", Password: "admin-password"}, wantUser: "admin"},
		{name: "by email", input: LoginInput{Login: " admin@museu.com ", Password: "admin-password"}, wantUser: "admin"},
		{name: "by email in mixed case", input: LoginInput{Login: "Admin@Museu.COM", Password: "admin-password"}, wantUser: "admin"},
		{name: "wrong password", input: LoginInput{Login: "admin", Password: "nope"}, wantErr: ErrInvalidCredentials},
		{name: "unknown user", input: LoginInput{Login: "ghost", Password: "admin-password"}, wantErr: ErrInvalidCredentials},
		{name: "inactive user", input: LoginInput{Login: "former", Password: "former-password"}, wantErr: ErrInactiveUser},
		{name: "empty login", input: LoginInput{Login: " ", Password: "x"}, wantErr: ErrInvalidInput},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := svc.Login(context.Background(), tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, TokenTypeBearer, result.TokenType)
			assert.Equal(t, tc.wantUser, result.User.Username)

			subject, err := tokens.Verify(result.Token)
			require.NoError(t, err)
			assert.Equal(t, tc.wantUser, subject)
		})
	}
}
