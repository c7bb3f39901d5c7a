package translate

import (
	"errors"
	"fmt"
)

// APIError is returned when the server answered with success=false. Message
// is the server-supplied text and is shown to the user as is.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("translation rejected: %s", e.Message)
}

// NetworkError is returned when no usable answer came back: the request
// failed in transport, or the body could not be read or parsed.
type NetworkError struct {
	Cause error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("translation request failed: %v", e.Cause)
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// IsAPIError reports whether err is, or wraps, an *APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

// IsNetworkError reports whether err is, or wraps, a *NetworkError.
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}
