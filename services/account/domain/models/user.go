package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an authenticated principal. The item bounded context never sees
// this type; it consumes only the user ID from the request context.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string // stored lowercased, unique
	PasswordHash string // bcrypt; never serialized to clients
	CreatedAt    time.Time
}

// NewUser constructs a User with a generated ID and normalized email.
func NewUser(name, email, passwordHash string) *User {
	return &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        NormalizeEmail(email),
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}

// NormalizeEmail lowercases and trims an email address so uniqueness checks
// and sign-in lookups agree.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
