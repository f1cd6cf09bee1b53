package session

import (
	"errors"
	"fmt"
)

// ErrBusy is returned when an operation is invoked while another gateway
// call is still in flight. Only one call may be outstanding at a time.
var ErrBusy = errors.New("session: an operation is already in flight")

// ValidationError reports an unmet precondition. It never reaches the
// network and is surfaced to the user immediately.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s", e.Reason)
}

// User-visible messages for the three failure modes. The underlying cause
// is logged, not shown.
const (
	msgRoleRequired    = "Please select a role"
	msgNoQuestion      = "No question loaded"
	msgFetchFailed     = "Failed to fetch question. Make sure the backend is running."
	msgSubmitFailed    = "Failed to submit answer. Please try again."
	msgNextFetchFailed = "Failed to fetch next question."
	msgUnknownRole     = "Unknown role"
)
