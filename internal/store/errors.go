package store

import "errors"

// Sentinel errors surfaced by the repositories. Handlers map them to HTTP
// status codes and user-facing messages.
var (
	// ErrEmailAlreadyExists is returned when registering with an email that
	// is already taken.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrNoUserWasFound is returned when a login lookup matches no account.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrYearAlreadyExists is returned when creating a fiscal year that is
	// already present.
	ErrYearAlreadyExists = errors.New("year already exists")

	// ErrYearNotFound is returned when a status update targets an unknown
	// fiscal year.
	ErrYearNotFound = errors.New("year not found")

	// ErrRecordNotFound is returned when a ledger record lookup matches
	// nothing.
	ErrRecordNotFound = errors.New("record not found")
)
