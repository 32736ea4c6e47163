package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized is returned when the server rejects a request with 401.
// The session layer treats it as a signal that the stored credential is no
// longer usable.
var ErrUnauthorized = errors.New("client unauthorized")

// APIError carries the HTTP status and the human-readable message the server
// put in the {message} envelope of a non-2xx response. Error() returns only
// the message so that callers can surface it to the operator as-is.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("http %d: %s", e.Status, http.StatusText(e.Status))
}
