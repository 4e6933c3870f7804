package domain

import "errors"

// Sentinel errors for the item domain. Use errors.Is() to check these.
var (
	// ErrNotAuthenticated indicates the request carries no authenticated identity.
	// The router-level guard rejects these upstream; services re-check defensively.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNameRequired indicates a create request with an empty or missing name.
	ErrNameRequired = errors.New("name is required")

	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrNotOwner indicates the item exists but belongs to a different user.
	ErrNotOwner = errors.New("not the item owner")
)
