package middleware

import (
	"errors"
	"fmt"
	"io"

	"github.com/dmitrymomot/newslens/core/handler"
	"github.com/dmitrymomot/newslens/core/outcome"
	"github.com/dmitrymomot/newslens/core/response"
)

// ErrBodyTooLarge is reported when a request body exceeds the configured limit.
var ErrBodyTooLarge = errors.New("request body too large")

// Common size constants for convenience.
const (
	KB int64 = 1024
	MB       = 1024 * KB
)

// BodyLimitConfig configures the request body limit middleware.
type BodyLimitConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool

	// MaxSize is the maximum allowed size in bytes (default: 1MB)
	MaxSize int64

	// DisableContentLengthCheck skips the declared Content-Length check
	// and only enforces the limit during body reading
	DisableContentLengthCheck bool
}

// BodyLimit creates a body limit middleware with the default 1MB limit.
func BodyLimit[C handler.Context]() handler.Middleware[C] {
	return BodyLimitWithConfig[C](BodyLimitConfig{})
}

// BodyLimitWithSize creates a body limit middleware with a specified size limit.
func BodyLimitWithSize[C handler.Context](maxSize int64) handler.Middleware[C] {
	return BodyLimitWithConfig[C](BodyLimitConfig{MaxSize: maxSize})
}

// BodyLimitWithConfig restricts the size of incoming request bodies.
// Oversized requests fail as BadRequest: immediately when Content-Length
// announces too much, otherwise on the read that crosses the limit.
func BodyLimitWithConfig[C handler.Context](cfg BodyLimitConfig) handler.Middleware[C] {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = MB
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			req := ctx.Request()

			if !cfg.DisableContentLengthCheck && req.ContentLength > cfg.MaxSize {
				return response.Error(outcome.New(outcome.BadRequest,
					fmt.Errorf("%w: %d bytes, limit %d", ErrBodyTooLarge, req.ContentLength, cfg.MaxSize)))
			}

			if req.Body != nil {
				req.Body = &limitedReader{reader: req.Body, limit: cfg.MaxSize}
			}

			return next(ctx)
		}
	}
}

// limitedReader fails once more than limit bytes have been read.
type limitedReader struct {
	reader io.ReadCloser
	limit  int64
	read   int64
}

func (lr *limitedReader) Read(p []byte) (int, error) {
	if lr.read > lr.limit {
		return 0, outcome.New(outcome.BadRequest,
			fmt.Errorf("%w: limit %d", ErrBodyTooLarge, lr.limit))
	}

	// Allow one byte past the limit so an exact-size body still reaches EOF.
	if remaining := lr.limit - lr.read + 1; int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err := lr.reader.Read(p)
	lr.read += int64(n)
	if lr.read > lr.limit {
		return n, outcome.New(outcome.BadRequest,
			fmt.Errorf("%w: limit %d", ErrBodyTooLarge, lr.limit))
	}
	return n, err
}

func (lr *limitedReader) Close() error {
	return lr.reader.Close()
}
