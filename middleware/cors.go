package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/newslens/core/handler"
)

// CORSConfig defines configuration options for CORS middleware.
type CORSConfig struct {
	// Skip allows bypassing CORS handling for specific requests
	Skip func(ctx handler.Context) bool `env:"-"`

	// AllowOrigins specifies allowed origins. Empty or "*" allows every origin.
	AllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:","`

	// AllowMethods specifies allowed HTTP methods (default: GET, POST, PUT, DELETE)
	AllowMethods []string `env:"CORS_ALLOW_METHODS" envSeparator:","`

	// AllowHeaders specifies allowed request headers
	AllowHeaders []string `env:"CORS_ALLOW_HEADERS" envSeparator:","`

	// ExposeHeaders specifies which headers are exposed to the client
	ExposeHeaders []string `env:"CORS_EXPOSE_HEADERS" envSeparator:","`

	// AllowCredentials is ignored for wildcard origins
	AllowCredentials bool `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"`

	// MaxAge specifies how long preflight requests can be cached (in seconds)
	MaxAge int `env:"CORS_MAX_AGE" envDefault:"0"`
}

// CORS returns a CORS middleware that allows any origin with GET, POST, PUT
// and DELETE.
func CORS[C handler.Context]() handler.Middleware[C] {
	return CORSWithConfig[C](CORSConfig{})
}

// CORSWithConfig returns a CORS middleware with custom configuration.
// Preflight requests are answered directly and never reach the handler.
func CORSWithConfig[C handler.Context](cfg CORSConfig) handler.Middleware[C] {
	if len(cfg.AllowMethods) == 0 {
		cfg.AllowMethods = []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
		}
	}

	if len(cfg.AllowHeaders) == 0 {
		cfg.AllowHeaders = []string{
			"Accept",
			"Accept-Language",
			"Content-Type",
			"Origin",
			"X-Request-ID",
			"HX-Request",
			"HX-Current-URL",
			"HX-Target",
			"HX-Trigger",
		}
	}

	if len(cfg.ExposeHeaders) == 0 {
		cfg.ExposeHeaders = []string{"HX-Location", "HX-Redirect", "X-Request-ID"}
	}

	allowMethods := strings.Join(cfg.AllowMethods, ",")
	allowHeaders := strings.Join(cfg.AllowHeaders, ",")
	exposeHeaders := strings.Join(cfg.ExposeHeaders, ",")

	allowOrigins := make(map[string]bool, len(cfg.AllowOrigins))
	for _, origin := range cfg.AllowOrigins {
		allowOrigins[strings.TrimSpace(origin)] = true
	}
	wildcard := len(allowOrigins) == 0 || allowOrigins["*"]

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			req := ctx.Request()
			origin := req.Header.Get("Origin")

			var allowedOrigin string
			switch {
			case wildcard:
				allowedOrigin = "*"
			case allowOrigins[origin]:
				allowedOrigin = origin
			}
			allowed := allowedOrigin != ""

			isPreflight := req.Method == http.MethodOptions &&
				req.Header.Get("Access-Control-Request-Method") != ""

			if isPreflight {
				requestMethod := req.Header.Get("Access-Control-Request-Method")
				if !allowed || !slices.Contains(cfg.AllowMethods, requestMethod) {
					return func(w http.ResponseWriter, r *http.Request) error {
						w.WriteHeader(http.StatusForbidden)
						return nil
					}
				}

				return func(w http.ResponseWriter, r *http.Request) error {
					headers := w.Header()
					headers.Set("Access-Control-Allow-Origin", allowedOrigin)
					headers.Set("Access-Control-Allow-Methods", allowMethods)
					if req.Header.Get("Access-Control-Request-Headers") != "" {
						headers.Set("Access-Control-Allow-Headers", allowHeaders)
					}
					// Credentials are never combined with a wildcard origin.
					if cfg.AllowCredentials && allowedOrigin != "*" {
						headers.Set("Access-Control-Allow-Credentials", "true")
					}
					if cfg.MaxAge > 0 {
						headers.Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
					}
					headers.Add("Vary", "Origin")
					headers.Add("Vary", "Access-Control-Request-Method")
					headers.Add("Vary", "Access-Control-Request-Headers")

					w.WriteHeader(http.StatusNoContent)
					return nil
				}
			}

			if allowed {
				// Set up front so error handler redirects carry the headers as well.
				headers := ctx.ResponseWriter().Header()
				headers.Set("Access-Control-Allow-Origin", allowedOrigin)
				if cfg.AllowCredentials && allowedOrigin != "*" {
					headers.Set("Access-Control-Allow-Credentials", "true")
				}
				headers.Set("Access-Control-Expose-Headers", exposeHeaders)
				headers.Add("Vary", "Origin")
			}

			return next(ctx)
		}
	}
}
