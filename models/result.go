package models

// Result is the outcome every user-triggered core operation (login, register,
// create year, toggle year status) reports back to its caller.
//
// Failures are carried as a human-readable message instead of an error value:
// nothing at this boundary is fatal, and the only recovery is the operator
// retrying the action.
type Result struct {
	// OK reports whether the operation succeeded.
	OK bool `json:"ok"`

	// Message is the server-supplied (or transport-level) status text.
	// Populated on both success and failure.
	Message string `json:"message"`
}

// Failure builds a failed Result with the given message.
func Failure(message string) Result {
	return Result{OK: false, Message: message}
}

// Success builds a successful Result with the given message.
func Success(message string) Result {
	return Result{OK: true, Message: message}
}
