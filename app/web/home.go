package web

import (
	"errors"
	"strings"

	"github.com/dmitrymomot/newslens/app/web/views"
	"github.com/dmitrymomot/newslens/core/handler"
	"github.com/dmitrymomot/newslens/core/logger"
	"github.com/dmitrymomot/newslens/core/outcome"
	"github.com/dmitrymomot/newslens/core/response"
)

// historyErrorMessage is shown in the drawer when history can't be loaded.
const historyErrorMessage = "some error!"

var errMissingURL = errors.New("missing url query parameter")

func (a *App) home(ctx *Context) handler.Response {
	return response.Templ(views.HomePage(ctx.Identity()))
}

// analyze renders the analysis of ?url= as a fragment. Failures render the
// error fragment with 200 so htmx still swaps it in.
func (a *App) analyze(ctx *Context) handler.Response {
	newsURL := strings.TrimSpace(ctx.Request().URL.Query().Get("url"))
	if newsURL == "" {
		a.fragmentFailed(ctx, "analyze", outcome.New(outcome.BadRequest, errMissingURL))
		return response.Templ(views.AnalyzeError())
	}

	userID := ctx.Identity()
	news, err := a.backend.Analyze(ctx, userID, newsURL)
	if err != nil {
		a.fragmentFailed(ctx, "analyze", err)
		return response.Templ(views.AnalyzeError())
	}

	return response.Templ(views.AnalyzeResult(news, a.backend.SummarizerEndpoint(userID, news.ContentID())))
}

// history renders the drawer listing the user's analyzed articles.
func (a *App) history(ctx *Context) handler.Response {
	items, err := a.backend.History(ctx, ctx.Identity())
	if err != nil {
		a.fragmentFailed(ctx, "history", err)
		return response.Templ(views.HistoryDrawerError(historyErrorMessage))
	}
	return response.Templ(views.HistoryDrawer(items))
}

func (a *App) fragmentFailed(ctx *Context, action string, err error) {
	a.logger.WarnContext(ctx, "fragment rendered in error state",
		logger.Action(action),
		logger.UserID(ctx.Identity()),
		logger.Category(outcome.CategoryOf(err)),
		logger.Error(err),
	)
}
