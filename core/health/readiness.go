package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/newslens/core/handler"
	"github.com/dmitrymomot/newslens/core/logger"
	"github.com/dmitrymomot/newslens/core/response"
)

// DefaultCheckTimeout bounds each readiness probe run.
const DefaultCheckTimeout = 3 * time.Second

// Check is a named dependency probe.
type Check struct {
	Name string
	Fn   func(context.Context) error
}

// Readiness verifies all service dependencies are functioning.
// Checks run concurrently under DefaultCheckTimeout. Returns "READY" if all
// pass and 503 "NOT READY" if any fail; failures are logged, not exposed.
//
// Example:
//
//	r.Get("/health/ready", health.Readiness[*handler.Ctx](log,
//		health.Check{Name: "redis", Fn: redis.Healthcheck(client)},
//		health.Check{Name: "backend", Fn: backend.Ping},
//	))
func Readiness[C handler.Context](log *slog.Logger, checks ...Check) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		probeCtx, cancel := context.WithTimeout(ctx, DefaultCheckTimeout)
		defer cancel()

		g, gctx := errgroup.WithContext(probeCtx)
		for _, c := range checks {
			g.Go(func() error {
				if err := c.Fn(gctx); err != nil {
					log.ErrorContext(ctx, "readiness check failed",
						logger.Component(c.Name),
						logger.Error(err),
					)
					return err
				}
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return response.StringWithStatus("NOT READY", http.StatusServiceUnavailable)
		}
		return response.String("READY")
	}
}
