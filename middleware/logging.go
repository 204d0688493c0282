package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/newslens/core/handler"
	"github.com/dmitrymomot/newslens/core/logger"
	"github.com/dmitrymomot/newslens/core/outcome"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for successful requests (default: slog.LevelInfo)
	LogLevel slog.Level

	// SlowRequestThreshold logs slow requests at warning level (default: 5s)
	SlowRequestThreshold time.Duration

	// Component name for structured logging (default: "http")
	Component string
}

// Logging creates a request logging middleware with default configuration.
func Logging[C handler.Context]() handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{})
}

// LoggingWithLogger creates a logging middleware with a custom logger.
func LoggingWithLogger[C handler.Context](log *slog.Logger) handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{Logger: log})
}

// LoggingWithConfig logs one line per request once its response was rendered.
// Requests whose response fails are logged with the failure category; the
// error itself continues to the router's error handler.
func LoggingWithConfig[C handler.Context](cfg LoggingConfig) handler.Middleware[C] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.LogLevel == 0 {
		cfg.LogLevel = slog.LevelInfo
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			start := time.Now()
			response := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
				err := response(wrapped, r)
				duration := time.Since(start)

				requestID, _ := GetRequestID(ctx)
				attrs := []slog.Attr{
					logger.Component(cfg.Component),
					logger.Method(r.Method),
					logger.Path(r.URL.Path),
					logger.RequestID(requestID),
					logger.ClientIP(requestClientIP(ctx)),
					logger.Latency(duration),
				}

				level := cfg.LogLevel
				msg := "HTTP request completed"
				switch {
				case err != nil:
					category := outcome.CategoryOf(err)
					msg = "HTTP request failed"
					level = failureLevel(category)
					attrs = append(attrs,
						logger.Category(category),
						slog.String("redirect", outcome.RedirectPath(category)),
						logger.Error(err),
					)
				case wrapped.statusCode >= 500:
					level = slog.LevelError
				case wrapped.statusCode >= 400:
					level = slog.LevelWarn
				case duration > cfg.SlowRequestThreshold:
					level = slog.LevelWarn
					attrs = append(attrs, slog.Bool("slow_request", true))
				}

				if err == nil {
					attrs = append(attrs,
						logger.StatusCode(wrapped.statusCode),
						logger.BytesOut(int64(wrapped.size)),
					)
				}

				cfg.Logger.LogAttrs(ctx, level, msg, attrs...)
				return err
			}
		}
	}
}

// failureLevel keeps client-caused outcomes out of the error stream.
func failureLevel(c outcome.Category) slog.Level {
	switch c {
	case outcome.InternalFailure, outcome.ResponseBuildFailure, outcome.Unknown:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// responseWriter captures status code and body size.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	size          int
	headerWritten bool
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if rw.headerWritten {
		return
	}
	rw.statusCode = statusCode
	rw.headerWritten = true
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.headerWritten {
		rw.WriteHeader(http.StatusOK)
	}
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
