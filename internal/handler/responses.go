package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/wynnforge/wynnforge/internal/catalog"
	"github.com/wynnforge/wynnforge/internal/domain"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries per-field validation failures
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, nothing left to do but log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// mapServiceErrorToUserMessage converts service errors to HTTP status codes
// and messages safe to show to API consumers. Errors that wrap a name the
// caller supplied (item lookups, slot labels) keep their text since it only
// echoes the caller's own input.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUnknownClass),
		errors.Is(err, domain.ErrUnknownPlaystyle),
		errors.Is(err, domain.ErrUnknownElement),
		errors.Is(err, domain.ErrUnknownSlot),
		errors.Is(err, domain.ErrUnknownTier),
		errors.Is(err, domain.ErrInvalidLevel),
		errors.Is(err, domain.ErrInvalidTopN),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrBuildIncomplete),
		errors.Is(err, domain.ErrInvalidScoringExpr):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrNoBuildsFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrCatalogNotLoaded),
		errors.Is(err, domain.ErrCatalogEmpty):
		return http.StatusServiceUnavailable, ErrMsgCatalogUnavailable
	case errors.Is(err, catalog.ErrNoFetcher):
		return http.StatusBadRequest, catalog.ErrNoFetcher.Error()
	case errors.Is(err, catalog.ErrNoUsableItems):
		return http.StatusBadGateway, catalog.ErrNoUsableItems.Error()
	case errors.Is(err, catalog.ErrAllSourcesFailed):
		return http.StatusBadGateway, catalog.ErrAllSourcesFailed.Error()
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
