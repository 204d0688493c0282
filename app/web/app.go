package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/newslens/core/cookie"
	"github.com/dmitrymomot/newslens/core/health"
	"github.com/dmitrymomot/newslens/core/logger"
	"github.com/dmitrymomot/newslens/core/router"
	"github.com/dmitrymomot/newslens/core/server"
	"github.com/dmitrymomot/newslens/core/session"
	"github.com/dmitrymomot/newslens/core/sessiontransport"
	"github.com/dmitrymomot/newslens/integration/backend"
)

// ErrStoreRequired is returned by New when the configured session backend
// needs a store the app cannot build on its own.
var ErrStoreRequired = errors.New("session store must be provided for this backend")

// App wires the session core, the upstream client and the HTTP routes.
type App struct {
	config    Config
	router    router.Router[*Context]
	server    *server.Server
	cookie    *cookie.Manager
	transport *sessiontransport.Cookie
	store     session.Store
	auth      *session.Authenticator
	guard     *session.Guard
	backend   *backend.Client
	checks    []health.Check
	logger    *slog.Logger
}

type Option func(*App) error

// New builds the app from cfg. Dependencies not supplied through options are
// created from cfg; the memory session store is the default.
func New(cfg Config, opts ...Option) (*App, error) {
	if err := cfg.Session.Validate(); err != nil {
		return nil, err
	}

	app := &App{
		config: cfg,
		logger: logger.New(),
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.store == nil {
		if cfg.Session.Backend != session.BackendMemory {
			return nil, fmt.Errorf("%w: %s", ErrStoreRequired, cfg.Session.Backend)
		}
		app.store = session.NewMemoryStore()
	}
	app.auth = session.NewAuthenticator(app.store)
	app.guard = session.NewGuard(app.store)

	if app.cookie == nil {
		app.cookie = cookie.NewFromConfig(cfg.Cookie)
	}
	app.transport = sessiontransport.NewCookie(app.cookie, cfg.SessionCookie)

	if app.backend == nil {
		client, err := backend.New(cfg.Backend, backend.WithLogger(app.logger))
		if err != nil {
			return nil, err
		}
		app.backend = client
	}
	app.checks = append(app.checks, health.Check{Name: "backend", Fn: app.backend.Ping})

	if app.server == nil {
		s, err := server.NewFromConfig(cfg.Server, server.WithLogger(app.logger))
		if err != nil {
			return nil, err
		}
		app.server = s
	}

	app.router = router.New[*Context](
		router.WithContextFactory[*Context](newContext),
		router.WithErrorHandler[*Context](app.handleError),
		router.WithLogger[*Context](app.logger),
	)
	app.registerRoutes()

	return app, nil
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// Routes lists the registered routes in registration order.
func (a *App) Routes() []router.Route {
	return a.router.Routes()
}

// Addr returns the address the server listens on.
func (a *App) Addr() string {
	return a.server.Addr()
}

// Run returns a function that serves the app until ctx is canceled.
// Designed for errgroup.
func (a *App) Run(ctx context.Context) func() error {
	return a.server.Run(ctx, a)
}

func WithLogger(logger *slog.Logger) Option {
	return func(app *App) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = logger
		return nil
	}
}

func WithServer(server *server.Server) Option {
	return func(app *App) error {
		if server == nil {
			return errors.New("server cannot be nil")
		}
		app.server = server
		return nil
	}
}

func WithCookieManager(cookie *cookie.Manager) Option {
	return func(app *App) error {
		if cookie == nil {
			return errors.New("cookie manager cannot be nil")
		}
		app.cookie = cookie
		return nil
	}
}

// WithStore replaces the session store, e.g. with the Redis store.
func WithStore(store session.Store) Option {
	return func(app *App) error {
		if store == nil {
			return errors.New("session store cannot be nil")
		}
		app.store = store
		return nil
	}
}

func WithBackend(client *backend.Client) Option {
	return func(app *App) error {
		if client == nil {
			return errors.New("backend client cannot be nil")
		}
		app.backend = client
		return nil
	}
}

// WithReadinessCheck adds a dependency probe to /health/ready.
func WithReadinessCheck(name string, fn func(context.Context) error) Option {
	return func(app *App) error {
		if name == "" || fn == nil {
			return errors.New("readiness check needs a name and a function")
		}
		app.checks = append(app.checks, health.Check{Name: name, Fn: fn})
		return nil
	}
}
