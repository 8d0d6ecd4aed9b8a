// Package aprsis delivers payload lines to an APRS-IS server over the
// plaintext login/publish protocol.
package aprsis

import (
	"errors"
	"fmt"
)

// NetworkError wraps a transient transport failure (refused, reset,
// timeout). Only this class of error is retried by the Publisher.
type NetworkError struct {
	Op   string
	Addr string
	Err  error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Addr, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsNetworkError reports whether err is a retryable network failure.
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}
