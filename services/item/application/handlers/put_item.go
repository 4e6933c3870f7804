package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/item/application/services"
)

// UpdateItemRequest is the partial request body for PUT /items/{id}.
// Omitted fields keep their stored values; price and quantity fall back to
// the stored value (not zero) when unparsable.
type UpdateItemRequest struct {
	Name        *string         `json:"name"        example:"Widget"`
	Description *string         `json:"description" example:"A blue widget"`
	Price       json.RawMessage `json:"price"       swaggertype:"number" example:"9.99"`
	Quantity    json.RawMessage `json:"quantity"    swaggertype:"integer" example:"10"`
} // @name UpdateItemRequest

// PutItemHandler handles PUT /items/{id} requests.
type PutItemHandler struct {
	svc *appsvcs.ItemService
}

// NewPutItemHandler returns a PutItemHandler backed by the given service.
func NewPutItemHandler(svc *appsvcs.ItemService) *PutItemHandler {
	return &PutItemHandler{svc: svc}
}

// Execute applies a partial update to an item the caller owns.
//
//	@Summary		Update item
//	@Description	Partially updates an item; omitted fields keep their stored values
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Item ID"
//	@Param			request	body		UpdateItemRequest	true	"Partial item update"
//	@Success		200		{object}	ItemResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/items/{id} [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := itemIDParam(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	item, err := h.svc.Update(r.Context(), userID, id, appsvcs.UpdateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}
