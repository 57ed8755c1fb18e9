package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"museum-api/internal/app/apptest"
	"museum-api/internal/pkg/jwtutil"
)

func newTokens(t *testing.T) *jwtutil.Manager {
	t.Helper()
	m, err := jwtutil.New(jwtutil.Config{Secret: "test-secret", Algorithm: "HS256", TTL: 30 * time.Minute})
	require.NoError(t, err)
	return m
}

func issue(t *testing.T, m *jwtutil.Manager, subject string) string {
	t.Helper()
	tok, _, err := m.Issue(subject)
	require.NoError(t, err)
	return tok
}

func TestGate(t *testing.T) {
	tokens := newTokens(t)
	users := apptest.NewUserStore(
		apptest.NewUser(1, "admin", true, true),
		apptest.NewUser(2, "curator", true, false),
		apptest.NewUser(3, "former", false, false),
	)
	gate := NewGate(users, tokens)

	expired, _, err := tokens.IssueWithTTL("admin", -time.Minute)
	require.NoError(t, err)

	testCases := []struct {
		name       string
		token      string
		adminOnly  bool
		wantErr    error
		wantUserID uint
	}{
		{name: "missing token", token: "", wantErr: ErrUnauthenticated},
		{name: "garbage token", token: "not-a-token", wantErr: ErrUnauthenticated},
		{name: "expired token", token: expired, wantErr: jwtutil.ErrTokenExpired},
		{name: "unknown subject", token: issue(t, tokens, "ghost"), wantErr: ErrSubjectNotFound},
		{name: "inactive user", token: issue(t, tokens, "former"), wantErr: ErrInactiveUser},
		{name: "active user", token: issue(t, tokens, "curator"), wantUserID: 2},
		{name: "admin as active user", token: issue(t, tokens, "admin"), wantUserID: 1},
		{name: "non-admin on admin gate", token: issue(t, tokens, "curator"), adminOnly: true, wantErr: ErrForbidden},
		{name: "inactive on admin gate", token: issue(t, tokens, "former"), adminOnly: true, wantErr: ErrInactiveUser},
		{name: "admin on admin gate", token: issue(t, tokens, "admin"), adminOnly: true, wantUserID: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			check := gate.RequireActiveUser
			if tc.adminOnly {
				check = gate.RequireAdmin
			}

			user, err := check(context.Background(), tc.token)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantUserID, user.ID)
		})
	}
}

func TestGate_TokenFailureAndMissingUserAreDistinct(t *testing.T) {
	tokens := newTokens(t)
	gate := NewGate(apptest.NewUserStore(), tokens)

	_, badToken := gate.RequireActiveUser(context.Background(), "bad")
	_, noUser := gate.RequireActiveUser(context.Background(), issue(t, tokens, "nobody"))

	assert.ErrorIs(t, badToken, ErrUnauthenticated)
	assert.False(t, errors.Is(badToken, ErrSubjectNotFound))
	assert.ErrorIs(t, noUser, ErrSubjectNotFound)
	assert.False(t, errors.Is(noUser, ErrUnauthenticated))
}
