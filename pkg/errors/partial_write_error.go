package custom_error

import "fmt"

// PartialWriteError reports that an asset row was written but the paired
// assignment write did not complete, leaving the asset status without a
// backing assignment. The transactional create path rolls both writes back,
// so this surfaces only when compensation itself fails.
type PartialWriteError struct {
	message string
	cause   error
}

func NewPartialWriteError(message string, cause error) *PartialWriteError {
	return &PartialWriteError{message: message, cause: cause}
}

func (e *PartialWriteError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *PartialWriteError) Unwrap() error {
	return e.cause
}
