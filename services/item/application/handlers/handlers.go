// Package handlers contains the HTTP handlers for the item CRUD surface.
//
// The router-level guard already rejects anonymous requests; every handler
// still re-checks the context identity and answers 401 on its own, so the
// contract holds even if a route is ever mounted without the guard.
package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/auth"
	"github.com/ghuser/stockroom/pkg/errhttp"
	itemdomain "github.com/ghuser/stockroom/services/item/domain"
	"github.com/ghuser/stockroom/services/item/domain/models"
)

// ItemResponse is the wire representation of an Item.
type ItemResponse struct {
	ID          uuid.UUID `json:"id"          example:"123e4567-e89b-12d3-a456-426614174000"`
	UserID      uuid.UUID `json:"userId"      example:"550e8400-e29b-41d4-a716-446655440000"`
	Name        string    `json:"name"        example:"Widget"`
	Description string    `json:"description" example:"A blue widget"`
	Price       float64   `json:"price"       example:"9.99"`
	Quantity    int64     `json:"quantity"    example:"5"`
	CreatedAt   time.Time `json:"createdAt"   example:"2024-01-15T10:30:00Z"`
	UpdatedAt   time.Time `json:"updatedAt"   example:"2024-01-15T10:30:00Z"`
} // @name ItemResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"Item not found"`
} // @name ErrorResponse

// SuccessResponse is returned on successful deletes.
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
} // @name SuccessResponse

func toItemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		UserID:      item.UserID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Quantity:    item.Quantity,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// callerID extracts the authenticated user from the request context, writing
// the 401 response itself when the request is anonymous.
func callerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, itemdomain.ErrNotAuthenticated)
		return uuid.Nil, false
	}
	return userID, true
}

// itemIDParam parses the {id} path parameter. A malformed id cannot match any
// row, so it reports not-found rather than a validation error.
func itemIDParam(w http.ResponseWriter, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		errhttp.WriteError(w, itemdomain.ErrItemNotFound)
		return uuid.Nil, false
	}
	return id, true
}
