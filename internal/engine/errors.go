package engine

import "fmt"

// ErrInvalidInput indicates a submission failed validation. Nothing is
// persisted when this is returned.
type ErrInvalidInput struct {
	Field  string
	Reason string
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid submission: %s %s", e.Field, e.Reason)
}

// ErrDependencyUnavailable indicates the backing store could not serve
// the submission in time. The submission may be retried as a whole.
type ErrDependencyUnavailable struct {
	Err error
}

func (e *ErrDependencyUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("store unavailable: %v", e.Err)
	}
	return "store unavailable"
}

func (e *ErrDependencyUnavailable) Unwrap() error { return e.Err }
