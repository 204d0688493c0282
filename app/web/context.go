package web

import (
	"net/http"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/newslens/core/handler"
	"github.com/dmitrymomot/newslens/middleware"
)

// Context is the request context handed to every handler of the app.
type Context struct {
	*handler.Ctx
}

func newContext(w http.ResponseWriter, r *http.Request) *Context {
	return &Context{Ctx: handler.NewContext(w, r)}
}

// Identity returns the user the session guard resolved, or "" on
// unguarded routes.
func (c *Context) Identity() string {
	identity, _ := middleware.GetIdentity(c)
	return identity
}

// Language returns the page language negotiated for the request.
func (c *Context) Language() language.Tag {
	if tag, ok := middleware.GetLanguage(c); ok {
		return tag
	}
	return supportedLanguages[0]
}
