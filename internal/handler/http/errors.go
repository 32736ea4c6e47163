package http

import (
	"errors"
	"net/http"

	"github.com/festivize/festivize/internal/service"
	"github.com/festivize/festivize/internal/store"
	"github.com/festivize/festivize/internal/utils"
)

// writeMessage sends a bare {message} envelope.
func writeMessage(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteMessage(w, message, statusCode)
}

// writeServiceError maps service and store sentinel errors to HTTP responses.
// Anything unmapped is reported as a 500 with a generic message so internals
// never leak to clients.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidDataProvided):
		writeMessage(w, "invalid data provided", http.StatusBadRequest)
	case errors.Is(err, service.ErrWrongPassword):
		writeMessage(w, "wrong email or password", http.StatusUnauthorized)
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		writeMessage(w, "token is expired or invalid", http.StatusUnauthorized)
	case errors.Is(err, service.ErrYearClosed):
		writeMessage(w, "year is closed", http.StatusForbidden)
	case errors.Is(err, store.ErrEmailAlreadyExists):
		writeMessage(w, "email already registered", http.StatusConflict)
	case errors.Is(err, store.ErrYearAlreadyExists):
		writeMessage(w, "year already exists", http.StatusConflict)
	case errors.Is(err, store.ErrYearNotFound):
		writeMessage(w, "year not found", http.StatusNotFound)
	case errors.Is(err, store.ErrRecordNotFound):
		writeMessage(w, "record not found", http.StatusNotFound)
	default:
		writeMessage(w, "internal server error", http.StatusInternalServerError)
	}
}
