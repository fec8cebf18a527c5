package spatial

import "fmt"

// IndexError is the base error type returned by this package.
type IndexError struct {
	Message string
	Cause   error
}

func (e *IndexError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *IndexError) Unwrap() error {
	return e.Cause
}

// CorruptIndexError is returned when a persisted index file fails magic,
// version, or structural validation on load.
type CorruptIndexError struct {
	*IndexError
}

func NewCorruptIndexError(message string) *CorruptIndexError {
	return &CorruptIndexError{IndexError: &IndexError{Message: message}}
}

// IndexIOError wraps an underlying filesystem failure.
type IndexIOError struct {
	*IndexError
}

func NewIndexIOError(cause error) *IndexIOError {
	return &IndexIOError{IndexError: &IndexError{Message: "spatial index io error", Cause: cause}}
}
