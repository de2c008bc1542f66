package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/itemshelf-backend/internal/domain"
	"github.com/heartmarshall/itemshelf-backend/internal/service/collection"
)

// collectionService defines the minimal interface needed by CollectionHandler.
type collectionService interface {
	ListCollections(ctx context.Context) ([]*domain.CollectionView, error)
	GetCollection(ctx context.Context, collectionID int) (*domain.CollectionView, error)
	CreateCollection(ctx context.Context, input collection.CreateCollectionInput) (*domain.Collection, error)
	UpdateCollection(ctx context.Context, input collection.UpdateCollectionInput) (*domain.Collection, error)
	DeleteCollection(ctx context.Context, collectionID int) (*domain.Collection, error)
	AddItem(ctx context.Context, input collection.MembershipInput) (*collection.AddItemResult, error)
	RemoveItem(ctx context.Context, input collection.MembershipInput) (*domain.Collection, error)
}

// CollectionHandler serves /collections endpoints, including membership.
type CollectionHandler struct {
	svc collectionService
	errorHandler
}

// NewCollectionHandler creates a CollectionHandler.
func NewCollectionHandler(svc collectionService, logger *slog.Logger, exposeDetail bool) *CollectionHandler {
	return &CollectionHandler{
		svc:          svc,
		errorHandler: errorHandler{log: logger.With("handler", "collection"), exposeDetail: exposeDetail},
	}
}

// List handles GET /collections.
func (h *CollectionHandler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.ListCollections(r.Context())
	if err != nil {
		h.handleError(w, r, err, errCtx{})
		return
	}

	out := make([]collectionViewResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toCollectionViewResponse(v))
	}
	writeList(w, out, len(out))
}

// Get handles GET /collections/{id}.
func (h *CollectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("id")

	view, err := h.svc.GetCollection(r.Context(), parseID(raw))
	if err != nil {
		h.handleError(w, r, err, errCtx{collectionID: raw})
		return
	}
	writeData(w, http.StatusOK, toCollectionViewResponse(view), "")
}

// Create handles POST /collections.
func (h *CollectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req collectionRequest
	if err := decodeBody(w, r, &req, req.fromForm); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	c, err := h.svc.CreateCollection(r.Context(), collection.CreateCollectionInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(w, r, err, errCtx{validation: collectionValidationMessage})
		return
	}
	writeData(w, http.StatusCreated, toCollectionResponse(c), "Collection created successfully")
}

// Update handles PUT /collections/{id}.
func (h *CollectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("id")

	var req collectionRequest
	if err := decodeBody(w, r, &req, req.fromForm); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	c, err := h.svc.UpdateCollection(r.Context(), collection.UpdateCollectionInput{
		CollectionID: parseID(raw),
		Name:         req.Name,
		Description:  req.Description,
	})
	if err != nil {
		h.handleError(w, r, err, errCtx{validation: collectionValidationMessage, collectionID: raw})
		return
	}
	writeData(w, http.StatusOK, toCollectionResponse(c), "Collection updated successfully")
}

// Delete handles DELETE /collections/{id}.
func (h *CollectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("id")

	c, err := h.svc.DeleteCollection(r.Context(), parseID(raw))
	if err != nil {
		h.handleError(w, r, err, errCtx{collectionID: raw})
		return
	}
	writeData(w, http.StatusOK, toCollectionResponse(c), "Collection deleted successfully")
}

// AddItem handles POST /collections/{id}/items/{itemId}.
func (h *CollectionHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ec := errCtx{collectionID: r.PathValue("id"), itemID: r.PathValue("itemId")}

	res, err := h.svc.AddItem(r.Context(), collection.MembershipInput{
		CollectionID: parseID(ec.collectionID),
		ItemID:       parseID(ec.itemID),
	})
	if err != nil {
		h.handleError(w, r, err, ec)
		return
	}
	writeData(w, http.StatusOK, addItemResponse{
		Collection: toCollectionResponse(res.Collection),
		Item:       toItemResponse(res.Item),
	}, "Item added to collection successfully")
}

// RemoveItem handles DELETE /collections/{id}/items/{itemId}.
func (h *CollectionHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ec := errCtx{collectionID: r.PathValue("id"), itemID: r.PathValue("itemId")}

	c, err := h.svc.RemoveItem(r.Context(), collection.MembershipInput{
		CollectionID: parseID(ec.collectionID),
		ItemID:       parseID(ec.itemID),
	})
	if err != nil {
		h.handleError(w, r, err, ec)
		return
	}
	writeData(w, http.StatusOK, toCollectionResponse(c), "Item removed from collection successfully")
}
