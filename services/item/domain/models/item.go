package models

import (
	"time"

	"github.com/google/uuid"
)

// Item is the core aggregate for this bounded context: one priced, quantified
// inventory row owned by exactly one user.
type Item struct {
	ID          uuid.UUID
	UserID      uuid.UUID // owner — immutable, never transferred
	Name        string
	Description string
	Price       float64 // never negative after normalization
	Quantity    int64   // never negative after normalization
	CreatedAt   time.Time
	UpdatedAt   time.Time // refreshed on every successful mutation
}

// NewItem constructs an Item aggregate with a generated ID and both timestamps
// set to the same instant. Callers normalize price and quantity beforehand.
func NewItem(userID uuid.UUID, name, description string, price float64, quantity int64) *Item {
	now := time.Now().UTC()
	return &Item{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    quantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ItemPatch is a partial update: one optional field per mutable attribute.
// A nil field means "keep the stored value". UserID, ID, and CreatedAt are
// not patchable.
type ItemPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Quantity    *int64
}

// Apply merges the patch into the item. Omitted fields keep their stored
// values; UpdatedAt is always refreshed to now.
func (i *Item) Apply(p ItemPatch, now time.Time) {
	if p.Name != nil {
		i.Name = *p.Name
	}
	if p.Description != nil {
		i.Description = *p.Description
	}
	if p.Price != nil {
		i.Price = *p.Price
	}
	if p.Quantity != nil {
		i.Quantity = *p.Quantity
	}
	i.UpdatedAt = now
}
