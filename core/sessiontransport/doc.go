// Package sessiontransport moves session tokens between HTTP requests and
// responses.
//
// The Cookie transport stores the raw token in a cookie named session_id by
// default, scoped to path / with a max-age of 34560 seconds:
//
//	transport := sessiontransport.NewCookie(cookies, sessiontransport.DefaultCookieConfig())
//
//	token := transport.Extract(r) // "" when no cookie was sent
//	...
//	if err := transport.Embed(w, token); err != nil {
//		// err is an outcome.ResponseBuildFailure
//	}
//
// The token is opaque to the client. Whether it still maps to a user is
// decided by session.Guard, not here.
package sessiontransport
