// Package handlers contains the HTTP handlers for the authentication surface
// under /auth. These routes sit outside the authentication guard.
package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/account/domain/models"
)

// UserResponse is the wire representation of a user. The password hash never
// leaves the account service.
type UserResponse struct {
	ID        uuid.UUID `json:"id"        example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string    `json:"name"      example:"Kim"`
	Email     string    `json:"email"     example:"kim@example.com"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-15T10:30:00Z"`
} // @name UserResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid email or password"`
} // @name AccountErrorResponse

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
