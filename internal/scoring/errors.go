package scoring

import (
	"errors"
	"fmt"
)

// Kind categorizes failures of the remote scoring service so the UI can
// choose a banner: connectivity errors get a retry affordance, fetch and
// submission errors keep the previous view intact.
type Kind int

const (
	// KindUnknown is the default when no kind was assigned.
	KindUnknown Kind = iota
	// KindConnectivity means the service was unreachable (health probe or
	// transport failure). User-retriable via an explicit retry action.
	KindConnectivity
	// KindFetch means a leads/stats call failed after the service was
	// reachable. Previous in-memory state is retained.
	KindFetch
	// KindSubmission means the server rejected or failed a scoring request.
	KindSubmission
)

// Error is a typed client error with an operation tag and wrapped cause.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, op, message string, err error) *Error {
	return &Error{Kind: kind, Op: op, Message: message, Err: err}
}

// KindOf extracts the Kind from an error chain, KindUnknown if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Detail returns the human-readable message carried by a client error, or
// the plain error text for anything else.
func Detail(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
