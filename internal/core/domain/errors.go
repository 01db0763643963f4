package domain

import "errors"

var (
	// ErrUserExists signals a duplicate registration for an email that
	// already has an account.
	ErrUserExists = errors.New("user already exists")

	// ErrUserNotFound is returned by the directory when no account matches.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionNotFound is returned when a session id does not resolve,
	// whether it never existed, was destroyed, or expired.
	ErrSessionNotFound = errors.New("session not found")

	// ErrForbidden signals an authenticated request denied by route policy.
	ErrForbidden = errors.New("access forbidden")

	// ErrInvalidInput signals malformed or missing request fields.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPhoneNotFound is returned when a catalog id does not exist.
	ErrPhoneNotFound = errors.New("phone not found")
)
