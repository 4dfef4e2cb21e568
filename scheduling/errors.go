package scheduling

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCompletionDate is returned when a screening completion is
	// recorded with a date later than the evaluation time.
	ErrInvalidCompletionDate = errors.New("completion date must not be in the future")

	// ErrInvalidPagination is returned for a non-positive page or page size.
	ErrInvalidPagination = errors.New("page and page size must be at least 1")

	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrStatusConflict is returned when a guarded status write loses the
	// race against a concurrent transition on the same record.
	ErrStatusConflict = errors.New("status changed concurrently")
)

// InvalidTransitionError reports an appointment status change that is not
// present in the transition table.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %q to %q", e.From, e.To)
}
