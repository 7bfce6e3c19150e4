package guardian

import "errors"

var (
	// ErrTransport wraps network-level failures (DNS, connect, TLS, timeout).
	ErrTransport = errors.New("request failed")
	// ErrDecode wraps response bodies that do not match the expected JSON shape.
	ErrDecode = errors.New("decode response")
	// ErrMissingSearchTerm is returned when the single-item endpoint is
	// dispatched without a search term. No network call is made.
	ErrMissingSearchTerm = errors.New("single-item endpoint requires a search term")
)

// APIError is a failure reported by the API itself, either through the
// top-level envelope message or through an inner error status.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return "api error: " + e.Message
}
