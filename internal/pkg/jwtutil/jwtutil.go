// Package jwtutil issues and verifies the HMAC-signed bearer tokens handed
// out at login. Tokens carry the username as subject and an absolute expiry;
// they are never stored or revoked server-side.
package jwtutil

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidConfig = errors.New("invalid token config")
	ErrInvalidToken  = errors.New("invalid token")
	// ErrTokenExpired also matches ErrInvalidToken.
	ErrTokenExpired = fmt.Errorf("%w: token expired", ErrInvalidToken)
)

type Config struct {
	Secret    string
	Algorithm string
	TTL       time.Duration
}

type Manager struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	now    func() time.Time
}

type Option func(*Manager)

// WithClock replaces time.Now for both issuing and verifying.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

func New(cfg Config, opts ...Option) (*Manager, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, fmt.Errorf("%w: empty secret", ErrInvalidConfig)
	}
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("%w: ttl must be positive", ErrInvalidConfig)
	}
	method, ok := jwt.GetSigningMethod(cfg.Algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported algorithm %q", ErrInvalidConfig, cfg.Algorithm)
	}

	m := &Manager{
		secret: []byte(cfg.Secret),
		method: method,
		ttl:    cfg.TTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

func (m *Manager) Issue(subject string) (string, time.Time, error) {
	return m.IssueWithTTL(subject, m.ttl)
}

func (m *Manager) IssueWithTTL(subject string, ttl time.Duration) (string, time.Time, error) {
	if subject == "" {
		return "", time.Time{}, fmt.Errorf("issue token failed: empty subject")
	}

	issuedAt := m.now()
	expiresAt := issuedAt.Add(ttl)
	token := jwt.NewWithClaims(m.method, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token failed: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify returns the subject of a token signed by this manager.
func (m *Manager) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{m.method.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims.Subject, nil
}
