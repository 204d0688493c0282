package redis

import "errors"

// Connection errors. Use errors.Is to check them.
var (
	ErrEmptyURL   = errors.New("redis: empty connection URL")
	ErrInvalidURL = errors.New("redis: invalid connection URL")
	ErrNotReady   = errors.New("redis: not ready before retries ran out")
	ErrUnhealthy  = errors.New("redis: healthcheck failed")
)
