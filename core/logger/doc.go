// Package logger builds slog loggers and provides attribute helpers so log
// lines across the application use the same keys.
//
// Create a logger from environment presets or explicit options:
//
//	log := logger.New(
//		logger.WithProduction("newslens"),
//		logger.WithContextValue("request_id", requestIDKey{}),
//	)
//
//	log, err := logger.NewFromConfig(cfg, "newslens")
//
// Development writes text at debug level; staging and production write JSON
// at info level. LOG_LEVEL and LOG_FORMAT override the preset.
//
// Attribute helpers drop empty input, so they are safe to pass unconditionally:
//
//	log.ErrorContext(ctx, "login failed",
//		logger.Error(err),
//		logger.Category(outcome.CategoryOf(err)),
//		logger.Upstream("login"),
//	)
//
// Context extractors add request-scoped attributes to every record logged
// with that context.
package logger
