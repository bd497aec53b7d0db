package api

import (
	"errors"
	"fmt"
)

// APIError is returned for any response outside the 2xx range.
// Body carries the raw response text for diagnostics; callers own the
// user-facing messaging.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s %s returned %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// AsAPIError unwraps err into an *APIError, or returns nil.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}
