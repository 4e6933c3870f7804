package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/account/domain/models"
)

// UserRepository is the persistence interface for the User aggregate.
type UserRepository interface {
	// Insert persists a new User. Returns ErrEmailTaken when the email
	// unique constraint is violated.
	Insert(ctx context.Context, user *models.User) error

	// GetByEmail retrieves a user by normalized email.
	// Returns ErrUserNotFound if no row matches.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID retrieves a user by ID.
	// Returns ErrUserNotFound if no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
