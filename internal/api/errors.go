package api

import (
	"context"
	"errors"
	"fmt"
)

// RequestError captures transport failures and non-2xx responses from the
// backend.
type RequestError struct {
	Op         string
	URL        string
	RequestID  string
	StatusCode int
	Body       string // first bytes of an error response
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode > 0 {
		if e.Body != "" {
			return fmt.Sprintf("%s: unexpected status %d from %s: %s", e.Op, e.StatusCode, e.URL, e.Body)
		}
		return fmt.Sprintf("%s: unexpected status %d from %s", e.Op, e.StatusCode, e.URL)
	}
	return fmt.Sprintf("%s: request to %s failed: %v", e.Op, e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Message returns the short transport-level description shown to users.
func (e *RequestError) Message() string {
	switch {
	case e.StatusCode > 0:
		return fmt.Sprintf("Request failed with status code %d", e.StatusCode)
	case errors.Is(e.Err, context.DeadlineExceeded):
		return "timeout exceeded"
	case errors.Is(e.Err, context.Canceled):
		return "canceled"
	default:
		return "Network Error"
	}
}

// AsRequestError attempts to unwrap an error into a RequestError.
func AsRequestError(err error) (*RequestError, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr, true
	}
	return nil, false
}

// ErrEmptyResponse is returned when a 2xx response is missing the expected payload.
var ErrEmptyResponse = errors.New("empty response payload")
