package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/itemshelf-backend/internal/domain"
)

// timeLayout renders timestamps with millisecond precision in UTC.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// envelope is the success response body.
type envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data"`
	Count     *int   `json:"count,omitempty"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp"`
}

// errorEnvelope is the failure response body.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeData(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, envelope{
		Success:   true,
		Data:      data,
		Message:   message,
		Timestamp: formatTime(time.Now()),
	})
}

func writeList(w http.ResponseWriter, data any, count int) {
	writeJSON(w, http.StatusOK, envelope{
		Success:   true,
		Data:      data,
		Count:     &count,
		Timestamp: formatTime(time.Now()),
	})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorEnvelope{Success: false, Error: code, Message: message})
}

// Validation messages per entity.
const (
	itemValidationMessage       = "Name and description are required"
	collectionValidationMessage = "Name is required"
)

// errCtx carries what handleError needs to render a failure for one route:
// the validation message and the raw path ids, so that messages echo the
// request even when an id did not parse.
type errCtx struct {
	validation   string
	itemID       string
	collectionID string
}

func (c errCtx) raw(entity domain.EntityType, id int) string {
	switch {
	case entity == domain.EntityTypeItem && c.itemID != "":
		return c.itemID
	case entity == domain.EntityTypeCollection && c.collectionID != "":
		return c.collectionID
	}
	return strconv.Itoa(id)
}

// errorHandler maps domain errors to HTTP responses.
type errorHandler struct {
	log          *slog.Logger
	exposeDetail bool
}

func (h errorHandler) handleError(w http.ResponseWriter, r *http.Request, err error, ec errCtx) {
	var (
		membership *domain.MembershipError
		notFound   *domain.NotFoundError
	)

	switch {
	case errors.As(err, &membership):
		item := ec.raw(domain.EntityTypeItem, membership.ItemID)
		coll := ec.raw(domain.EntityTypeCollection, membership.CollectionID)
		if errors.Is(membership, domain.ErrConflict) {
			writeError(w, http.StatusBadRequest, "Item already in collection",
				fmt.Sprintf("Item %s is already in collection %s", item, coll))
			return
		}
		writeError(w, http.StatusNotFound, "Item not in collection",
			fmt.Sprintf("Item %s is not in collection %s", item, coll))
	case errors.As(err, &notFound):
		writeNotFound(w, notFound.Entity, ec.raw(notFound.Entity, notFound.ID))
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "Validation error", ec.validation)
	default:
		h.log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		message := "Internal server error"
		if h.exposeDetail {
			message = err.Error()
		}
		writeError(w, http.StatusInternalServerError, "Something went wrong!", message)
	}
}

func writeNotFound(w http.ResponseWriter, entity domain.EntityType, rawID string) {
	switch entity {
	case domain.EntityTypeCollection:
		writeError(w, http.StatusNotFound, "Collection not found", "No collection found with id "+rawID)
	default:
		writeError(w, http.StatusNotFound, "Item not found", "No item found with id "+rawID)
	}
}
