package health

import (
	"github.com/dmitrymomot/newslens/core/handler"
	"github.com/dmitrymomot/newslens/core/response"
)

// Liveness indicates if the service process is running.
// Always returns "ALIVE" with 200 OK. No dependency checks.
//
// Example:
//
//	r.Get("/health/live", health.Liveness[*handler.Ctx])
func Liveness[C handler.Context](C) handler.Response {
	return response.String("ALIVE")
}
