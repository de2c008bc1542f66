package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/itemshelf-backend/internal/domain"
	"github.com/heartmarshall/itemshelf-backend/internal/service/item"
)

// itemService defines the minimal interface needed by ItemHandler.
type itemService interface {
	ListItems(ctx context.Context) ([]*domain.Item, error)
	GetItem(ctx context.Context, itemID int) (*domain.Item, error)
	CreateItem(ctx context.Context, input item.CreateItemInput) (*domain.Item, error)
	UpdateItem(ctx context.Context, input item.UpdateItemInput) (*domain.Item, error)
	DeleteItem(ctx context.Context, itemID int) (*domain.Item, error)
}

// ItemHandler serves /items endpoints.
type ItemHandler struct {
	svc itemService
	errorHandler
}

// NewItemHandler creates an ItemHandler. exposeDetail controls whether
// unexpected error messages reach the client.
func NewItemHandler(svc itemService, logger *slog.Logger, exposeDetail bool) *ItemHandler {
	return &ItemHandler{
		svc:          svc,
		errorHandler: errorHandler{log: logger.With("handler", "item"), exposeDetail: exposeDetail},
	}
}

// List handles GET /items.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListItems(r.Context())
	if err != nil {
		h.handleError(w, r, err, errCtx{})
		return
	}
	writeList(w, toItemResponses(items), len(items))
}

// Get handles GET /items/{id}.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("id")

	it, err := h.svc.GetItem(r.Context(), parseID(raw))
	if err != nil {
		h.handleError(w, r, err, errCtx{itemID: raw})
		return
	}
	writeData(w, http.StatusOK, toItemResponse(it), "")
}

// Create handles POST /items.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeBody(w, r, &req, req.fromForm); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	it, err := h.svc.CreateItem(r.Context(), item.CreateItemInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(w, r, err, errCtx{validation: itemValidationMessage})
		return
	}
	writeData(w, http.StatusCreated, toItemResponse(it), "Item created successfully")
}

// Update handles PUT /items/{id}.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("id")

	var req itemRequest
	if err := decodeBody(w, r, &req, req.fromForm); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	it, err := h.svc.UpdateItem(r.Context(), item.UpdateItemInput{
		ItemID:      parseID(raw),
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(w, r, err, errCtx{validation: itemValidationMessage, itemID: raw})
		return
	}
	writeData(w, http.StatusOK, toItemResponse(it), "Item updated successfully")
}

// Delete handles DELETE /items/{id}.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("id")

	it, err := h.svc.DeleteItem(r.Context(), parseID(raw))
	if err != nil {
		h.handleError(w, r, err, errCtx{itemID: raw})
		return
	}
	writeData(w, http.StatusOK, toItemResponse(it), "Item deleted successfully")
}
