// Package password hashes and verifies account passwords with bcrypt.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxBytes is the longest password bcrypt accepts.
const MaxBytes = 72

var (
	ErrEmptyPassword   = errors.New("password must not be empty")
	ErrPasswordTooLong = fmt.Errorf("password must not exceed %d bytes", MaxBytes)
)

type Hasher struct {
	cost int
}

// NewHasher falls back to bcrypt.DefaultCost when cost is out of bcrypt's range.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}
	if len(plaintext) > MaxBytes {
		return "", ErrPasswordTooLong
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password failed: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A malformed digest never matches.
func (h *Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
