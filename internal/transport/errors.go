package transport

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated means no access token was available. The caller should
// send the user back through login; the adapter never retries this.
var ErrUnauthenticated = errors.New("transport: no access token available")

// RequestError is a reachable server rejecting the call. Message carries the
// server's human-readable explanation when one was parseable.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Message)
}

// AsRequestError unwraps err into a *RequestError if it is one.
func AsRequestError(err error) (*RequestError, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr, true
	}
	return nil, false
}
