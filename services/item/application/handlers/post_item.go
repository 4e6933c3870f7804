package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/item/application/services"
)

// CreateItemRequest is the request body for POST /items. Price and quantity
// accept either a JSON number or a numeric string; anything unparsable is
// coerced to 0 rather than rejected.
type CreateItemRequest struct {
	Name        string          `json:"name"        example:"Widget"`
	Description *string         `json:"description" example:"A blue widget"`
	Price       json.RawMessage `json:"price"       swaggertype:"number" example:"9.99"`
	Quantity    json.RawMessage `json:"quantity"    swaggertype:"integer" example:"5"`
} // @name CreateItemRequest

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc *appsvcs.ItemService
}

// NewPostItemHandler returns a PostItemHandler backed by the given service.
func NewPostItemHandler(svc *appsvcs.ItemService) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new item owned by the caller.
//
//	@Summary		Create item
//	@Description	Creates a new inventory item owned by the authenticated user
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item creation request"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	item, err := h.svc.Create(r.Context(), userID, appsvcs.CreateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toItemResponse(item))
}
