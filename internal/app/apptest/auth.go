package apptest

import (
	"museum-api/internal/model"
)

// PlainHasher stores passwords with a visible prefix so tests stay fast.
type PlainHasher struct{}

func (PlainHasher) Hash(plaintext string) (string, error) {
	return "plain:" + plaintext, nil
}

func (PlainHasher) Verify(plaintext, digest string) bool {
	return digest == "plain:"+plaintext
}

func NewUser(id uint, username string, active, admin bool) model.User {
	return model.User{
		ID:           id,
		Email:        username + "@museu.com",
		Username:     username,
		PasswordHash: "plain:" + username + "-password",
		IsActive:     active,
		IsAdmin:      admin,
	}
}

func StrPtr(s string) *string { return &s }

func BoolPtr(b bool) *bool { return &b }
