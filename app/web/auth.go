package web

import (
	"net/http"

	"github.com/dmitrymomot/newslens/app/web/views"
	"github.com/dmitrymomot/newslens/core/handler"
	"github.com/dmitrymomot/newslens/core/logger"
	"github.com/dmitrymomot/newslens/core/outcome"
	"github.com/dmitrymomot/newslens/core/response"
	"github.com/dmitrymomot/newslens/integration/backend"
)

// Where signed-in users land.
const pathHome = "/home"

func (a *App) loginPage(*Context) handler.Response {
	return response.Templ(views.AuthPage("Auth Login", views.LoginForm()))
}

func (a *App) registerPage(*Context) handler.Response {
	return response.Templ(views.AuthPage("AUTH Register", views.RegisterForm()))
}

func (a *App) login(ctx *Context) handler.Response {
	creds, err := parseCredentials(ctx.Request())
	if err != nil {
		return response.Error(err)
	}

	user, err := a.backend.Login(ctx, creds)
	if err != nil {
		return response.Error(err)
	}
	return a.signIn(ctx, user)
}

func (a *App) register(ctx *Context) handler.Response {
	creds, err := parseCredentials(ctx.Request())
	if err != nil {
		return response.Error(err)
	}

	user, err := a.backend.Register(ctx, creds)
	if err != nil {
		return response.Error(err)
	}
	return a.signIn(ctx, user)
}

// signIn registers a session for user and sends the client home with the
// session cookie attached.
func (a *App) signIn(ctx *Context, user backend.User) handler.Response {
	token, err := a.auth.Establish(ctx, user.ID)
	if err != nil {
		return response.Error(outcome.New(outcome.InternalFailure, err))
	}

	a.logger.InfoContext(ctx, "session established", logger.UserID(user.ID))

	return func(w http.ResponseWriter, r *http.Request) error {
		if err := a.transport.Embed(w, token); err != nil {
			return err
		}
		return response.Locate(pathHome)(w, r)
	}
}
