package web

import (
	"github.com/dmitrymomot/newslens/core/handler"
	"github.com/dmitrymomot/newslens/core/health"
	"github.com/dmitrymomot/newslens/core/outcome"
	"github.com/dmitrymomot/newslens/core/response"
	"github.com/dmitrymomot/newslens/core/router"
	"github.com/dmitrymomot/newslens/middleware"
)

func (a *App) registerRoutes() {
	r := a.router

	r.Use(
		middleware.RequestID[*Context](),
		middleware.ClientIP[*Context](),
		middleware.LoggingWithLogger[*Context](a.logger),
		middleware.SecurityHeaders[*Context](),
		middleware.CORSWithConfig[*Context](a.config.CORS),
		middleware.I18n[*Context](supportedLanguages...),
		classifyErrors,
	)

	r.Get("/{$}", redirectTo(outcome.PathAuth))
	r.Get("/app", func(*Context) handler.Response {
		return response.String("App works!")
	})

	r.Get("/auth", redirectTo("/auth/login"))
	r.Get("/auth/login", a.loginPage)
	r.Get("/auth/register", a.registerPage)

	forms := r.With(middleware.BodyLimitWithSize[*Context](maxFormSize))
	forms.Post("/auth/login", a.login)
	forms.Post("/auth/register", a.register)

	r.Group(func(r router.Router[*Context]) {
		r.Use(middleware.RequireSessionWithConfig(middleware.SessionConfig[*Context]{
			Transport: a.transport,
			Guard:     a.guard,
			Logger:    a.logger,
		}))
		r.Get(pathHome, a.home)
		r.Get("/analyze", a.analyze)
		r.Get("/history", a.history)
	})

	r.Get("/error/{slug}", a.showError)
	r.Get("/assets/{file...}", a.asset)

	r.Get("/health/live", health.Liveness[*Context])
	r.Get("/health/ready", health.Readiness[*Context](a.logger, a.checks...))
}

func redirectTo(path string) handler.HandlerFunc[*Context] {
	return func(*Context) handler.Response {
		return response.Redirect(path)
	}
}
