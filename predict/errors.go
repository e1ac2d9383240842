package predict

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable wraps transport failures reaching the service.
	ErrUnavailable = errors.New("predict: service unavailable")
	// ErrStatus is matched by every *StatusError.
	ErrStatus = errors.New("predict: unexpected status")
	// ErrMalformedResponse signals a body that is not the expected JSON shape.
	ErrMalformedResponse = errors.New("predict: malformed response")
)

// StatusError reports a non-2xx answer from the service.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("predict: service returned status %d: %s", e.Code, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrStatus
}
