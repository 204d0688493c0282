package cookie

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// MaxCookieSize is the maximum size for a cookie (4KB).
const MaxCookieSize = 4096

// Manager writes and reads plain HTTP cookies with shared default attributes.
type Manager struct {
	defaults Options
	maxSize  int
}

// ManagerOption configures the Manager itself, not individual cookies.
type ManagerOption func(*Manager)

// WithMaxSize sets the maximum serialized cookie size.
func WithMaxSize(size int) ManagerOption {
	return func(m *Manager) {
		if size > 0 {
			m.maxSize = size
		}
	}
}

// New creates a cookie manager. Cookie options become the defaults of every
// Set call.
func New(cookieOpts []Option, managerOpts ...ManagerOption) *Manager {
	m := &Manager{
		defaults: applyOptions(Options{
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		}, cookieOpts),
		maxSize: MaxCookieSize,
	}
	for _, opt := range managerOpts {
		opt(m)
	}
	return m
}

// Set writes a Set-Cookie header. Nothing is written when the cookie is
// invalid or larger than the configured maximum.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	options := applyOptions(m.defaults, opts)

	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	}

	if err := cookie.Valid(); err != nil {
		if name == "" {
			return fmt.Errorf("%w: %w", ErrInvalidName, err)
		}
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}

	header := cookie.String()
	if header == "" {
		return ErrInvalidName
	}
	if len(header) > m.maxSize {
		return ErrCookieTooLarge{
			Name: name,
			Size: len(header),
			Max:  m.maxSize,
		}
	}

	w.Header().Add("Set-Cookie", header)
	return nil
}

// Get retrieves a cookie value.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	cookie, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return cookie.Value, nil
}

// Delete instructs the client to drop a cookie.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
		Secure:   m.defaults.Secure,
	})
}
