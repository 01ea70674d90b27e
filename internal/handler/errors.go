package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

// Generic HTTP error messages for client responses.
// These intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest    = "Invalid request"
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInternal          = "Internal server error"
)

// ErrorResponse is the JSON body for error replies
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps domain sentinel errors to HTTP status codes. Unknown
// errors become a generic 500 so internals never leak to clients.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrPlayerNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrDungeonNotFound),
		errors.Is(err, domain.ErrListingNotFound),
		errors.Is(err, domain.ErrNotInShop):
		respondJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrInsufficientQuantity),
		errors.Is(err, domain.ErrInsufficientStamina),
		errors.Is(err, domain.ErrOutOfStock),
		errors.Is(err, domain.ErrDungeonActive),
		errors.Is(err, domain.ErrDungeonResolved):
		respondJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: ErrMsgInternal})
	}
}
