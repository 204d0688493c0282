package handler

import (
	"context"
	"net/http"
	"time"
)

// Context defines the contract for request contexts in the framework.
// Use *Ctx for the default implementation.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetValue(key, val any)
}

// Ctx is the default Context implementation. It delegates cancellation and
// values to the request's context and reads path parameters from the
// request's wildcard values.
type Ctx struct {
	w http.ResponseWriter
	r *http.Request
}

// NewContext creates the default request context.
func NewContext(w http.ResponseWriter, r *http.Request) *Ctx {
	return &Ctx{w: w, r: r}
}

// Deadline returns the time when work done on behalf of this context should be canceled.
func (c *Ctx) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done returns a channel that's closed when work done on behalf of this context should be canceled.
func (c *Ctx) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err returns a non-nil error value after Done is closed.
func (c *Ctx) Err() error {
	return c.r.Context().Err()
}

// Value returns the value associated with this context for key.
func (c *Ctx) Value(key any) any {
	return c.r.Context().Value(key)
}

// SetValue stores a value in the request's context.
func (c *Ctx) SetValue(key, val any) {
	c.r = c.r.WithContext(context.WithValue(c.r.Context(), key, val))
}

// Request returns the HTTP request associated with this context.
func (c *Ctx) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the HTTP response writer associated with this context.
func (c *Ctx) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Param returns the value of the path wildcard with the given name.
func (c *Ctx) Param(key string) string {
	return c.r.PathValue(key)
}
