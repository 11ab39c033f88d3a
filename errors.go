package pollinations

import "fmt"

// APIError is returned when the remote API rejects a request. It is built
// only from a validator decision and never mutated afterwards.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// ValidationError is returned when arguments violate an operation's
// preconditions. It always fires before any network call.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}
