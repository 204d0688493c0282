// Package cookie writes and reads plain HTTP cookies with shared defaults.
//
// A Manager holds the attributes every cookie gets unless a call overrides
// them, and refuses to emit cookies that are malformed or larger than the
// configured limit:
//
//	cookies := cookie.New([]cookie.Option{cookie.WithSecure(true)})
//	if err := cookies.Set(w, "session_id", token, cookie.WithMaxAge(34560)); err != nil {
//		// nothing was written
//	}
//
//	value, err := cookies.Get(r, "session_id")
//	if errors.Is(err, cookie.ErrCookieNotFound) {
//		...
//	}
//
// Config carries the same attributes from the environment (COOKIE_*).
package cookie
