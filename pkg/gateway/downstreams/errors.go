package downstreams

import (
	"fmt"
)

// TransportError means the call never produced an http response: dns, connection refused,
// cancelled context, open circuit breaker. The cause is available through errors.Is / errors.As.
type TransportError struct {
	Method string
	Url    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("downstream %s %s failed: %v", e.Method, e.Url, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ApiError means the gateway answered with a non-2xx status.
type ApiError struct {
	Method string
	Url    string
	Status int
	Body   []byte
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("downstream %s %s returned status %d: %s", e.Method, e.Url, e.Status, string(e.Body))
}

// ParseError means the gateway answered with a 2xx status, but the body was not well-formed json.
type ParseError struct {
	Status int
	Body   []byte
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse response body (status %d): %v", e.Status, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
