package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/newslens/core/handler"
	"github.com/dmitrymomot/newslens/core/logger"
	"github.com/dmitrymomot/newslens/core/outcome"
	"github.com/dmitrymomot/newslens/core/response"
)

type identityKey struct{}

// TokenExtractor reads the session token a request presents.
// An empty string means none was presented.
type TokenExtractor interface {
	Extract(r *http.Request) string
}

// IdentityResolver maps a presented token to a user identity.
type IdentityResolver interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// SessionConfig configures the session guard middleware.
type SessionConfig[C handler.Context] struct {
	// Transport reads the token from the request (required)
	Transport TokenExtractor
	// Guard resolves the token (required)
	Guard IdentityResolver
	// Logger for structured logging (default: slog with io.Discard)
	Logger *slog.Logger
	// ErrorHandler renders guard failures.
	// Default: response.Error(err), leaving the redirect to the router's error handler.
	ErrorHandler func(ctx C, err error) handler.Response
}

// RequireSession guards routes behind a valid session. Requests without a
// registered token never reach the handler.
//
//	r.With(middleware.RequireSession[*handler.Ctx](transport, guard)).Get("/home", home)
func RequireSession[C handler.Context](transport TokenExtractor, guard IdentityResolver) handler.Middleware[C] {
	return RequireSessionWithConfig(SessionConfig[C]{
		Transport: transport,
		Guard:     guard,
	})
}

// RequireSessionWithConfig creates the session guard middleware with custom configuration.
// On success the identity is available through GetIdentity.
func RequireSessionWithConfig[C handler.Context](cfg SessionConfig[C]) handler.Middleware[C] {
	if cfg.Transport == nil || cfg.Guard == nil {
		panic("session middleware: transport and guard are required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(_ C, err error) handler.Response {
			return response.Error(err)
		}
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			token := cfg.Transport.Extract(ctx.Request())

			identity, err := cfg.Guard.Authenticate(ctx, token)
			if err != nil {
				cfg.Logger.DebugContext(ctx, "session rejected",
					logger.Path(ctx.Request().URL.Path),
					logger.Category(outcome.CategoryOf(err)),
					logger.Error(err),
				)
				return cfg.ErrorHandler(ctx, err)
			}

			ctx.SetValue(identityKey{}, identity)
			return next(ctx)
		}
	}
}

// GetIdentity returns the user identity resolved by RequireSession.
func GetIdentity(ctx handler.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	identity, ok := ctx.Value(identityKey{}).(string)
	return identity, ok && identity != ""
}
