package web_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/newslens/app/web"
	"github.com/dmitrymomot/newslens/core/session"
)

// newApp starts a fake upstream and builds the app against it.
func newApp(t *testing.T, opts ...web.Option) (*web.App, *http.ServeMux) {
	t.Helper()

	upstream := http.NewServeMux()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	cfg := web.DefaultConfig()
	cfg.Backend.BaseURL = srv.URL

	opts = append([]web.Option{web.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	app, err := web.New(cfg, opts...)
	require.NoError(t, err)
	return app, upstream
}

func serve(app http.Handler, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	app.ServeHTTP(w, r)
	return w
}

func credentials(email, password string) io.Reader {
	return strings.NewReader(url.Values{"email": {email}, "password": {password}}.Encode())
}

func postForm(path string, body io.Reader) *http.Request {
	r := httptest.NewRequest(http.MethodPost, path, body)
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, c := range w.Result().Cookies() {
		if c.Name == "session_id" {
			return c
		}
	}
	t.Fatal("no session_id cookie in response")
	return nil
}

func assertLocated(t *testing.T, w *httptest.ResponseRecorder, path string) {
	t.Helper()

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, path, w.Header().Get("Location"))
	assert.Equal(t, path, w.Header().Get("HX-Location"))
}

func loginUpstream(upstream *http.ServeMux, id string) {
	upstream.HandleFunc("POST /users/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"`+id+`","email":"a@b.co"}`)
	})
}

func signIn(t *testing.T, app http.Handler) *http.Cookie {
	t.Helper()

	w := serve(app, postForm("/auth/login", credentials("a@b.co", "secret")))
	assertLocated(t, w, "/home")
	return sessionCookie(t, w)
}

func TestPublicRoutes(t *testing.T) {
	t.Parallel()

	app, _ := newApp(t)

	tests := []struct {
		name     string
		path     string
		status   int
		location string
		body     string
	}{
		{name: "root", path: "/", status: http.StatusFound, location: "/auth"},
		{name: "app", path: "/app", status: http.StatusOK, body: "App works!"},
		{name: "auth", path: "/auth", status: http.StatusFound, location: "/auth/login"},
		{name: "login page", path: "/auth/login", status: http.StatusOK, body: `action="/auth/login"`},
		{name: "register page", path: "/auth/register", status: http.StatusOK, body: `action="/auth/register"`},
		{name: "liveness", path: "/health/live", status: http.StatusOK, body: "ALIVE"},
		{name: "assets", path: "/assets/scripts.js", status: http.StatusOK, body: "function toggleDrawer"},
		{name: "missing asset", path: "/assets/nope.js", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := serve(app, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, w.Code)
			if tt.location != "" {
				assert.Equal(t, tt.location, w.Header().Get("Location"))
			}
			if tt.body != "" {
				assert.Contains(t, w.Body.String(), tt.body)
			}
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
			assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		})
	}
}

func TestLoginFlow(t *testing.T) {
	t.Parallel()

	app, upstream := newApp(t)

	var loginBody string
	upstream.HandleFunc("POST /users/login", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		loginBody = string(body)
		_, _ = io.WriteString(w, `{"id":"u-42","email":"a@b.co"}`)
	})
	upstream.HandleFunc("POST /u-42/news-contents/parse-news-url", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "https://news.example/a", r.URL.Query().Get("news_url"))
		_, _ = io.WriteString(w, `{"id":"n-1","title":"Election results","authors":"Jane","url":"https://news.example/a"}`)
	})
	upstream.HandleFunc("GET /users/u-42/history", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"id":"n-1","title":"Election results","authors":"Jane","url":"https://news.example/a"}]`)
	})

	w := serve(app, postForm("/auth/login", credentials("a@b.co", "secret")))
	assertLocated(t, w, "/home")
	assert.Contains(t, loginBody, `"email":"a@b.co"`)
	assert.Contains(t, loginBody, `"password":"secret"`)

	cookie := sessionCookie(t, w)
	assert.NotEmpty(t, cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 34560, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)

	t.Run("home shows identity", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/home", nil)
		r.AddCookie(cookie)
		w := serve(app, r)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "u-42")
	})

	t.Run("analyze", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/analyze?url="+url.QueryEscape("https://news.example/a"), nil)
		r.AddCookie(cookie)
		w := serve(app, r)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Election results")
		assert.Contains(t, w.Body.String(), "/u-42/news_contents/summarize-news-content-stream?news_content_id=n-1")
	})

	t.Run("history", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/history", nil)
		r.AddCookie(cookie)
		w := serve(app, r)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `data-history-url="https://news.example/a"`)
	})

	t.Run("second login gets a fresh token", func(t *testing.T) {
		w := serve(app, postForm("/auth/login", credentials("a@b.co", "secret")))
		assertLocated(t, w, "/home")
		assert.NotEqual(t, cookie.Value, sessionCookie(t, w).Value)
	})
}

func TestRegisterFlow(t *testing.T) {
	t.Parallel()

	app, upstream := newApp(t)
	upstream.HandleFunc("POST /users", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id":"u-7","email":"new@b.co"}`)
	})

	w := serve(app, postForm("/auth/register", credentials("new@b.co", "secret")))
	assertLocated(t, w, "/home")

	r := httptest.NewRequest(http.MethodGet, "/home", nil)
	r.AddCookie(sessionCookie(t, w))
	home := serve(app, r)
	assert.Equal(t, http.StatusOK, home.Code)
	assert.Contains(t, home.Body.String(), "u-7")
}

func TestAuthFailuresRedirect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		pattern  string
		status   int
		body     string
		location string
	}{
		{name: "wrong password", path: "/auth/login", pattern: "POST /users/login", status: http.StatusUnauthorized, location: "/error/incorrect-password"},
		{name: "unknown user", path: "/auth/login", pattern: "POST /users/login", status: http.StatusNotFound, location: "/error/not-found"},
		{name: "email taken", path: "/auth/register", pattern: "POST /users", status: http.StatusConflict, location: "/error/email-taken"},
		{name: "upstream error", path: "/auth/register", pattern: "POST /users", status: http.StatusBadGateway, location: "/error/server-error"},
		{name: "malformed payload", path: "/auth/login", pattern: "POST /users/login", status: http.StatusOK, body: `{"email":"a@b.co"}`, location: "/error/server-error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app, upstream := newApp(t)
			upstream.HandleFunc(tt.pattern, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			w := serve(app, postForm(tt.path, credentials("a@b.co", "secret")))
			assertLocated(t, w, tt.location)
			assert.Empty(t, w.Result().Cookies())
		})
	}
}

func TestInvalidFormIsBadRequest(t *testing.T) {
	t.Parallel()

	app, upstream := newApp(t)
	called := false
	upstream.HandleFunc("POST /users/login", func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	tests := []struct {
		name string
		req  *http.Request
	}{
		{name: "missing email", req: postForm("/auth/login", credentials("  ", "secret"))},
		{name: "missing password", req: postForm("/auth/login", credentials("a@b.co", ""))},
		{name: "wrong content type", req: httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.co"}`))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(app, tt.req)
			assertLocated(t, w, "/error/bad-request")
		})
	}
	assert.False(t, called)
}

func TestOversizedFormIsBadRequest(t *testing.T) {
	t.Parallel()

	app, upstream := newApp(t)
	called := false
	upstream.HandleFunc("POST /users", func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	big := credentials("a@b.co", strings.Repeat("x", 32<<10))

	t.Run("declared length", func(t *testing.T) {
		w := serve(app, postForm("/auth/register", big))
		assertLocated(t, w, "/error/bad-request")
	})

	t.Run("streamed body", func(t *testing.T) {
		req := postForm("/auth/register", credentials("a@b.co", strings.Repeat("x", 32<<10)))
		req.ContentLength = -1
		w := serve(app, req)
		assertLocated(t, w, "/error/bad-request")
	})

	assert.False(t, called)
}

func TestEmailFormatIsLeftToUpstream(t *testing.T) {
	t.Parallel()

	app, upstream := newApp(t)
	var gotEmail string
	upstream.HandleFunc("POST /users/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email string `json:"email"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotEmail = body.Email
		w.WriteHeader(http.StatusNotFound)
	})

	w := serve(app, postForm("/auth/login", credentials("not-an-email", "secret")))
	assertLocated(t, w, "/error/not-found")
	assert.Equal(t, "not-an-email", gotEmail)
}

func TestUnreachableUpstream(t *testing.T) {
	t.Parallel()

	cfg := web.DefaultConfig()
	cfg.Backend.BaseURL = "http://127.0.0.1:1"
	app, err := web.New(cfg, web.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)

	w := serve(app, postForm("/auth/login", credentials("a@b.co", "secret")))
	assertLocated(t, w, "/error/server-error")

	w = serve(app, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestProtectedRoutes(t *testing.T) {
	t.Parallel()

	app, _ := newApp(t)

	for _, path := range []string{"/home", "/analyze?url=x", "/history"} {
		t.Run("no cookie "+path, func(t *testing.T) {
			t.Parallel()

			w := serve(app, httptest.NewRequest(http.MethodGet, path, nil))
			assertLocated(t, w, "/auth")
		})

		t.Run("unknown token "+path, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, path, nil)
			r.AddCookie(&http.Cookie{Name: "session_id", Value: "garbage"})
			w := serve(app, r)
			assertLocated(t, w, "/auth")
		})
	}
}

func TestFragmentFailures(t *testing.T) {
	t.Parallel()

	app, upstream := newApp(t)
	loginUpstream(upstream, "u-42")
	upstream.HandleFunc("POST /u-42/news-contents/parse-news-url", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	upstream.HandleFunc("GET /users/u-42/history", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	cookie := signIn(t, app)

	tests := []struct {
		name string
		path string
		body string
	}{
		{name: "analyze upstream failure", path: "/analyze?url=https://news.example/a", body: "Pastikan url mengarah ke suatu media berita"},
		{name: "analyze without url", path: "/analyze", body: "Coba gunakan media berita mainstream"},
		{name: "history upstream failure", path: "/history", body: "error: some error!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, tt.path, nil)
			r.AddCookie(cookie)
			w := serve(app, r)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}

func TestEmptyHistory(t *testing.T) {
	t.Parallel()

	app, upstream := newApp(t)
	loginUpstream(upstream, "u-1")
	upstream.HandleFunc("GET /users/u-1/history", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "null")
	})

	r := httptest.NewRequest(http.MethodGet, "/history", nil)
	r.AddCookie(signIn(t, app))
	w := serve(app, r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No analyzed news yet.")
}

func TestRoutingFailures(t *testing.T) {
	t.Parallel()

	app, _ := newApp(t)

	tests := []struct {
		name     string
		method   string
		path     string
		location string
	}{
		{name: "unknown path", method: http.MethodGet, path: "/nope", location: "/error/not-found"},
		{name: "wrong method", method: http.MethodDelete, path: "/home", location: "/error/bad-request"},
		{name: "put login", method: http.MethodPut, path: "/auth/login", location: "/error/bad-request"},
		{name: "unknown error slug", method: http.MethodGet, path: "/error/teapot", location: "/error/not-found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := serve(app, httptest.NewRequest(tt.method, tt.path, nil))
			assertLocated(t, w, tt.location)
		})
	}
}

func TestErrorPages(t *testing.T) {
	t.Parallel()

	app, _ := newApp(t)

	tests := []struct {
		slug     string
		lang     string
		contains []string
	}{
		{slug: "not-found", contains: []string{"404", "Not Found", "Pastikan input sudah benar"}},
		{slug: "bad-request", contains: []string{"400", "Bad Request"}},
		{slug: "server-error", contains: []string{"500", "Coba kembali dan refresh halaman"}},
		{slug: "email-taken", contains: []string{"409", "Coba gunakan email lain"}},
		{slug: "incorrect-password", contains: []string{"401", "Pastikan password dan email sesuai"}},
		{slug: "email-taken", lang: "en-US,en;q=0.9", contains: []string{"Try another email address"}},
		{slug: "email-taken", lang: "id", contains: []string{"Coba gunakan email lain"}},
		{slug: "email-taken", lang: "fr", contains: []string{"Coba gunakan email lain"}},
	}

	for _, tt := range tests {
		t.Run(tt.slug+"/"+tt.lang, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/error/"+tt.slug, nil)
			if tt.lang != "" {
				r.Header.Set("Accept-Language", tt.lang)
			}
			w := serve(app, r)
			assert.Equal(t, http.StatusOK, w.Code)
			for _, s := range tt.contains {
				assert.Contains(t, w.Body.String(), s)
			}
		})
	}
}

func TestHTMXClientsGetLocationHeader(t *testing.T) {
	t.Parallel()

	app, _ := newApp(t)

	r := httptest.NewRequest(http.MethodGet, "/home", nil)
	r.Header.Set("HX-Request", "true")
	w := serve(app, r)
	assertLocated(t, w, "/auth")
}

func TestCORSPreflight(t *testing.T) {
	t.Parallel()

	app, _ := newApp(t)

	r := httptest.NewRequest(http.MethodOptions, "/auth/login", nil)
	r.Header.Set("Origin", "https://client.example")
	r.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := serve(app, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

type busyStore struct{}

func (busyStore) Insert(context.Context, session.Token, string) error {
	return session.ErrLockUnavailable
}

func (busyStore) Lookup(context.Context, session.Token) (string, bool, error) {
	return "", false, session.ErrLockUnavailable
}

func TestBusyStore(t *testing.T) {
	t.Parallel()

	app, upstream := newApp(t, web.WithStore(busyStore{}))
	loginUpstream(upstream, "u-42")

	t.Run("login", func(t *testing.T) {
		t.Parallel()

		w := serve(app, postForm("/auth/login", credentials("a@b.co", "secret")))
		assertLocated(t, w, "/error/server-error")
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("guard", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/home", nil)
		r.AddCookie(&http.Cookie{Name: "session_id", Value: "any"})
		w := serve(app, r)
		assertLocated(t, w, "/error/server-error")
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("redis backend needs a store", func(t *testing.T) {
		t.Parallel()

		cfg := web.DefaultConfig()
		cfg.Session.Backend = session.BackendRedis
		_, err := web.New(cfg)
		assert.ErrorIs(t, err, web.ErrStoreRequired)
	})

	t.Run("unsupported backend", func(t *testing.T) {
		t.Parallel()

		cfg := web.DefaultConfig()
		cfg.Session.Backend = "disk"
		_, err := web.New(cfg)
		assert.Error(t, err)
	})

	t.Run("nil options", func(t *testing.T) {
		t.Parallel()

		_, err := web.New(web.DefaultConfig(), web.WithLogger(nil))
		assert.Error(t, err)
		_, err = web.New(web.DefaultConfig(), web.WithStore(nil))
		assert.Error(t, err)
		_, err = web.New(web.DefaultConfig(), web.WithReadinessCheck("", nil))
		assert.Error(t, err)
	})

	t.Run("extra readiness check", func(t *testing.T) {
		t.Parallel()

		app, _ := newApp(t, web.WithReadinessCheck("redis", func(context.Context) error {
			return errors.New("down")
		}))
		w := serve(app, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("ready", func(t *testing.T) {
		t.Parallel()

		app, _ := newApp(t)
		w := serve(app, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "READY", w.Body.String())
	})
}

func TestRoutes(t *testing.T) {
	t.Parallel()

	app, _ := newApp(t)

	var patterns []string
	for _, r := range app.Routes() {
		patterns = append(patterns, r.Method+" "+r.Pattern)
	}
	assert.Contains(t, patterns, "GET /{$}")
	assert.Contains(t, patterns, "POST /auth/login")
	assert.Contains(t, patterns, "POST /auth/register")
	assert.Contains(t, patterns, "GET /home")
	assert.Contains(t, patterns, "GET /analyze")
	assert.Contains(t, patterns, "GET /history")
	assert.Contains(t, patterns, "GET /error/{slug}")
}
