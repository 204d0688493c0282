package sessiontransport

import "errors"

var (
	// ErrInvalidToken is returned when asked to embed an empty token.
	ErrInvalidToken = errors.New("sessiontransport: invalid token")
)
