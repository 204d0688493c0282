package sessiontransport

// DefaultMaxAge is the session cookie lifetime in seconds (9.6 hours).
const DefaultMaxAge = 34560

// CookieConfig provides environment-based configuration for cookie-based session transport.
type CookieConfig struct {
	// CookieName is the name of the session cookie
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"session_id"`

	// MaxAge is the client-side cookie lifetime in seconds
	MaxAge int `env:"SESSION_COOKIE_MAX_AGE" envDefault:"34560"`
}

// DefaultCookieConfig returns a CookieConfig with sensible defaults.
func DefaultCookieConfig() CookieConfig {
	return CookieConfig{
		CookieName: "session_id",
		MaxAge:     DefaultMaxAge,
	}
}
