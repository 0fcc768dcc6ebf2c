package service

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound signals a lookup for a quiz id that does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError covers missing or malformed admin-creation input,
// including a quiz file that cannot be parsed into the expected structure.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// DeliveryError reports a failed bulk mail dispatch. Sends are
// all-or-nothing: one failed recipient fails the whole batch.
type DeliveryError struct {
	Errs []error
}

func (e *DeliveryError) Error() string {
	msgs := make([]string, 0, len(e.Errs))
	for _, err := range e.Errs {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("sending results failed for %d recipient(s): %s", len(e.Errs), strings.Join(msgs, "; "))
}
