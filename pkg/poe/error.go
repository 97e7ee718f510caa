package poe

import (
	"errors"
	"fmt"
)

// ErrNoContent indicates a well-formed 200 response whose choices array
// was empty. There is nothing to render or persist, but the exchange
// itself did not fail.
var ErrNoContent = errors.New("no response content")

// HTTPError is returned when the endpoint rejects the request
// (authentication failure, unknown model, rate limit, and so on).
type HTTPError struct {
	StatusCode int
	Reason     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("endpoint returned %d: %s", e.StatusCode, e.Reason)
}

// TransportError is returned when the request never produced an HTTP
// response: DNS failure, TLS failure, timeout, connection reset.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a 200 response body is not the expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "decode response: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
