package app

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrUnauthenticated covers an absent token or one that fails verification.
	ErrUnauthenticated = errors.New("could not validate credentials")
	// ErrSubjectNotFound is returned for a well-signed token whose user no longer exists.
	ErrSubjectNotFound = errors.New("token subject not found")
	ErrInactiveUser    = errors.New("inactive user")
	ErrForbidden       = errors.New("not enough permissions")

	ErrUserNotFound   = errors.New("user not found")
	ErrEmailExists    = errors.New("email already registered")
	ErrUsernameExists = errors.New("username already registered")

	ErrNewsNotFound = errors.New("news not found")
)
