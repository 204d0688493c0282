package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/newslens/core/handler"
	"github.com/dmitrymomot/newslens/core/logger"
	"github.com/dmitrymomot/newslens/core/outcome"
	"github.com/dmitrymomot/newslens/core/response"
	"github.com/dmitrymomot/newslens/core/router"
	"github.com/dmitrymomot/newslens/core/session"
)

// classify tags err with a failure category. Errors that already carry one,
// router failures included, are returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var oe *outcome.Error
	if errors.As(err, &oe) {
		return err
	}

	var panicErr router.PanicError
	switch {
	case errors.Is(err, session.ErrLockUnavailable),
		errors.Is(err, session.ErrStoreUnavailable),
		errors.Is(err, session.ErrTokenExists),
		errors.Is(err, session.ErrTokenGeneration),
		errors.As(err, &panicErr):
		return outcome.New(outcome.InternalFailure, err)
	default:
		return outcome.New(outcome.Unknown, err)
	}
}

// classifyErrors tags response errors before outer middlewares log them.
func classifyErrors(next handler.HandlerFunc[*Context]) handler.HandlerFunc[*Context] {
	return func(ctx *Context) handler.Response {
		resp := next(ctx)
		if resp == nil {
			return response.Error(router.ErrNilResponse)
		}
		return func(w http.ResponseWriter, r *http.Request) error {
			return classify(resp(w, r))
		}
	}
}

// handleError sends the client to the page for the failure's category.
// Request failures are already logged by the logging middleware; only
// failures that bypassed it, such as panics, are logged here.
func (a *App) handleError(ctx *Context, err error) {
	err = classify(err)

	var panicErr router.PanicError
	if errors.As(err, &panicErr) {
		a.logger.ErrorContext(ctx, "handler panicked",
			logger.Path(ctx.Request().URL.Path),
			logger.Error(err),
			slog.String("stack", string(panicErr.Stack())),
		)
	}

	if ww, ok := ctx.ResponseWriter().(interface{ Written() bool }); ok && ww.Written() {
		a.logger.WarnContext(ctx, "response already started, dropping redirect",
			logger.Path(ctx.Request().URL.Path),
			logger.Category(outcome.CategoryOf(err)),
		)
		return
	}

	response.Render(ctx, response.Locate(outcome.RedirectPathFor(err)))
}
