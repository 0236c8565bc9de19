package advisor

import "fmt"

// TransportError means the request never produced a response: dial failure,
// connection reset, context cancellation.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("calculation service unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServiceError means the service answered with a non-success status. The
// body is never parsed as a recommendation in this case.
type ServiceError struct {
	StatusCode int
	Body       string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("calculation service returned status %d: %s", e.StatusCode, e.Body)
}

// MalformedResponseError means a success status carried a body that is not
// valid JSON or is missing the required advice/allocation shape. Payload is
// kept for diagnostic logging.
type MalformedResponseError struct {
	Reason  string
	Payload []byte
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed calculation response: %s", e.Reason)
}
