package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/newslens/core/handler"
	"github.com/dmitrymomot/newslens/core/outcome"
)

var (
	ErrNoContextFactory = errors.New("no context factory provided")
	ErrInvalidPattern   = errors.New("invalid route path pattern")
)

// Request failures produced by the router itself. They carry their outcome
// category so middlewares can classify them without app-specific hooks.
var (
	ErrMethodNotAllowed = outcome.New(outcome.BadRequest, errors.New("method not allowed"))
	ErrNotFound         = outcome.New(outcome.NotFound, errors.New("not found"))
	ErrNilResponse      = outcome.New(outcome.InternalFailure, errors.New("nil response"))
)

// statusCode lets errors choose the status written by the default error handler.
type statusCode interface {
	StatusCode() int
}

func defaultErrorHandler[C handler.Context](ctx C, err error) {
	w := ctx.ResponseWriter()

	// Prevent double-writing responses which causes HTTP protocol errors
	if ww, ok := w.(*responseWriter); ok && ww.Written() {
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrMethodNotAllowed):
		status = http.StatusMethodNotAllowed
	default:
		var sc statusCode
		if errors.As(err, &sc) {
			status = sc.StatusCode()
		}
	}

	http.Error(w, err.Error(), status)
}

// PanicError is passed to the error handler when a handler panics.
type PanicError interface {
	error
	Value() any
	Stack() []byte
}

type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

func (e *panicError) Value() any {
	return e.value
}

func (e *panicError) Stack() []byte {
	return e.stack
}

// Unwrap allows errors.Is/As to see an error value that was panicked with.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
