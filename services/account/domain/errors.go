package domain

import "errors"

// Sentinel errors for the account domain. Use errors.Is() to check these.
var (
	// ErrInvalidCredentials indicates a sign-in with an unknown email or
	// wrong password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken indicates a sign-up with an already-registered email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUserNotFound indicates no user row matches the given ID.
	ErrUserNotFound = errors.New("user not found")
)
