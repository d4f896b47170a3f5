package submission

import (
	"errors"
	"fmt"

	"parcelo/models"
)

var (
	// ErrDraftNotFound is returned when a draft id is unknown or expired.
	ErrDraftNotFound = errors.New("submission draft not found")
	// ErrInvalidStep is returned when an operation targets the wrong
	// wizard step; transitions are strictly linear.
	ErrInvalidStep = errors.New("operation not allowed in current step")
)

// ValidationError carries per-field messages. The step does not advance and
// the draft is left untouched; clients display the messages inline.
type ValidationError struct {
	Fields models.FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}
