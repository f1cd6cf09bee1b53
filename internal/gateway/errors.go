package gateway

import "fmt"

// NetworkError indicates a transport failure or a non-success HTTP status.
// Status is 0 when the request never reached the backend; Body holds a
// truncated response body for log context.
type NetworkError struct {
	Op     string // "fetch question" or "submit answer"
	Status int
	Body   string
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: backend returned HTTP %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError indicates the backend responded 2xx but the body did not
// match the expected shape.
type DecodeError struct {
	Op   string
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: malformed response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// snippet truncates a response body for error context.
func snippet(body []byte) string {
	const limit = 256
	if len(body) > limit {
		return string(body[:limit]) + "..."
	}
	return string(body)
}
