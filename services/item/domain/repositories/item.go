package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/item/domain/models"
)

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// No ownership logic lives here — implementations are pure keyed storage.
// Existence and ownership checks belong to the application service so the
// 404-before-403 contract stays in one place.
type ItemRepository interface {
	// Insert persists a new Item. IDs are generated by the caller, so a
	// constraint violation indicates a programming error, not user input.
	Insert(ctx context.Context, item *models.Item) error

	// ListByOwner retrieves every item owned by userID, newest first
	// (CreatedAt descending).
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]*models.Item, error)

	// GetByID retrieves an Item by ID regardless of owner.
	// Returns ErrItemNotFound if no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error)

	// Update overwrites the mutable fields and UpdatedAt of an existing Item.
	// Returns ErrItemNotFound if the row vanished since it was loaded.
	Update(ctx context.Context, item *models.Item) error

	// Delete hard-removes an item by ID.
	// Returns ErrItemNotFound if the row vanished since it was loaded.
	Delete(ctx context.Context, id uuid.UUID) error
}
