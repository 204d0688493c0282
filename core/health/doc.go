// Package health provides HTTP handlers for service health monitoring.
//
// Handlers:
//   - Liveness: process is running, no dependency checks
//   - Readiness: every registered dependency answers
//
// Usage:
//
//	r.Get("/health/live", health.Liveness[*handler.Ctx])
//	r.Get("/health/ready", health.Readiness[*handler.Ctx](log,
//		health.Check{Name: "redis", Fn: redis.Healthcheck(client)},
//	))
package health
