package sessiontransport

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/newslens/core/cookie"
	"github.com/dmitrymomot/newslens/core/outcome"
	"github.com/dmitrymomot/newslens/core/session"
)

// Cookie carries the session token in an HTTP cookie.
type Cookie struct {
	cookies *cookie.Manager
	name    string
	maxAge  int
}

// NewCookie creates a cookie-based session transport.
func NewCookie(cookies *cookie.Manager, cfg CookieConfig) *Cookie {
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieConfig().CookieName
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = DefaultMaxAge
	}
	return &Cookie{
		cookies: cookies,
		name:    cfg.CookieName,
		maxAge:  cfg.MaxAge,
	}
}

// Name returns the session cookie name.
func (c *Cookie) Name() string {
	return c.name
}

// Extract returns the token the request presents, or an empty string when
// it carries no session cookie. The value is not validated here.
func (c *Cookie) Extract(r *http.Request) string {
	token, err := c.cookies.Get(r, c.name)
	if err != nil {
		return ""
	}
	return token
}

// Embed attaches token to the response as the session cookie.
// Failures are ResponseBuildFailure outcomes; no header is written then.
func (c *Cookie) Embed(w http.ResponseWriter, token session.Token) error {
	if token == "" {
		return outcome.New(outcome.ResponseBuildFailure, ErrInvalidToken)
	}
	if err := c.cookies.Set(w, c.name, token.String(), cookie.WithPath("/"), cookie.WithMaxAge(c.maxAge)); err != nil {
		return outcome.New(outcome.ResponseBuildFailure, errors.Join(ErrInvalidToken, err))
	}
	return nil
}
