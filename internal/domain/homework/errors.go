package homework

import (
	"fmt"

	"github.com/pkg/errors"
)

// Failures raised by one poll cycle. All of them are recoverable: the watcher
// reports them to the operator and tries again on the next cycle.
var (
	ErrEndpointUnavailable = errors.New("endpoint unavailable")
	ErrMalformedPayload    = errors.New("malformed payload")
	ErrSchema              = errors.New("unexpected API response")
	ErrMissingField        = errors.New("missing homework field")
	ErrUnknownStatus       = errors.New("unknown homework status")
)

// EndpointError describes a request that did not produce a 200 response.
// StatusCode is zero when the request failed before a response arrived.
type EndpointError struct {
	StatusCode int
	Cause      error
}

func (e *EndpointError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s, HTTP status: %d", ErrEndpointUnavailable, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", ErrEndpointUnavailable, e.Cause)
}

func (e *EndpointError) Unwrap() error { return e.Cause }

func (e *EndpointError) Is(target error) bool { return target == ErrEndpointUnavailable }
