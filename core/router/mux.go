package router

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"
	"strings"

	"github.com/dmitrymomot/newslens/core/handler"
)

// fallbackPattern catches every request no registered route matched.
const fallbackPattern = "/"

// probeMethods are tried against the route table to tell
// "method not allowed" apart from "not found".
var probeMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// table is the state shared by a router and its inline groups.
type table[C handler.Context] struct {
	serveMux     *http.ServeMux
	routes       []Route
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request) C
	logger       *slog.Logger
}

// mux is the private implementation of Router.
type mux[C handler.Context] struct {
	table       *table[C]
	middlewares []handler.Middleware[C]
	parent      *mux[C] // set for inline groups
}

func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		table: &table[C]{
			serveMux:     http.NewServeMux(),
			errorHandler: defaultErrorHandler[C],
			logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		},
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.table.newContext == nil {
		m.table.newContext = func(w http.ResponseWriter, r *http.Request) C {
			// Only the default *handler.Ctx can be built without a factory
			var zero C
			if _, ok := any(zero).(*handler.Ctx); ok {
				return any(handler.NewContext(w, r)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	m.table.serveMux.HandleFunc(fallbackPattern, m.fallback)

	return m
}

// ServeHTTP implements http.Handler.
func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Every registered route is a HandlerFunc. Anything else is ServeMux
	// redirecting to a canonical path, which still goes through the root
	// middlewares.
	if h, _ := m.table.serveMux.Handler(r); !isRouteHandler(h) {
		m.serveUnrouted(w, r, func(w http.ResponseWriter, r *http.Request) error {
			h.ServeHTTP(w, r)
			return nil
		})
		return
	}
	m.table.serveMux.ServeHTTP(w, r)
}

func isRouteHandler(h http.Handler) bool {
	_, ok := h.(http.HandlerFunc)
	return ok
}

func (m *mux[C]) Get(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodGet, pattern, h)
}

func (m *mux[C]) Post(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPost, pattern, h)
}

func (m *mux[C]) Put(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPut, pattern, h)
}

func (m *mux[C]) Delete(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodDelete, pattern, h)
}

func (m *mux[C]) Handle(pattern string, h handler.HandlerFunc[C]) {
	m.handle("", pattern, h)
}

// Use appends middleware to the router. All middlewares must be defined
// before routes on the root router.
func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	if m.parent == nil && len(m.table.routes) > 0 {
		panic("router: all middlewares must be defined before routes on a mux")
	}
	m.middlewares = append(m.middlewares, middlewares...)
}

// With creates an inline router with additional middleware.
func (m *mux[C]) With(middlewares ...handler.Middleware[C]) Router[C] {
	return &mux[C]{
		table:       m.table,
		middlewares: middlewares,
		parent:      m,
	}
}

// Group creates an inline router for grouping routes.
func (m *mux[C]) Group(fn func(r Router[C])) Router[C] {
	im := m.With()
	if fn != nil {
		fn(im)
	}
	return im
}

// Routes returns all registered routes in registration order.
func (m *mux[C]) Routes() []Route {
	return slices.Clone(m.table.routes)
}

func (m *mux[C]) handle(method, pattern string, fn handler.HandlerFunc[C]) {
	if len(pattern) == 0 || pattern[0] != '/' {
		panic(fmt.Errorf("%w: '%s'", ErrInvalidPattern, pattern))
	}

	h := handler.Chain(m.chain(), fn)

	full := anchor(pattern)
	if method != "" {
		full = method + " " + pattern
	}
	m.table.serveMux.HandleFunc(full, func(w http.ResponseWriter, r *http.Request) {
		m.table.serve(w, r, h)
	})

	if method == "" {
		method = "*"
	}
	m.table.routes = append(m.table.routes, Route{Method: method, Pattern: pattern})
}

// anchor makes a trailing-slash pattern match only that exact path. ServeMux
// would otherwise treat it as a subtree; subtrees are declared explicitly with
// a {name...} wildcard.
func anchor(pattern string) string {
	if strings.HasSuffix(pattern, "/") {
		return pattern + "{$}"
	}
	return pattern
}

// chain collects middlewares from the root down to this router.
func (m *mux[C]) chain() []handler.Middleware[C] {
	var all []handler.Middleware[C]
	for curr := m; curr != nil; curr = curr.parent {
		all = append(slices.Clone(curr.middlewares), all...)
	}
	return all
}

// fallback answers requests that matched no route. Root middlewares still run
// so request IDs and access logs cover unmatched requests too.
func (m *mux[C]) fallback(w http.ResponseWriter, r *http.Request) {
	var err error = ErrNotFound
	if allowed := m.table.allowedMethods(r); len(allowed) > 0 {
		w.Header().Set("Allow", strings.Join(allowed, ", "))
		err = ErrMethodNotAllowed
	}

	m.serveUnrouted(w, r, func(http.ResponseWriter, *http.Request) error { return err })
}

// serveUnrouted runs resp behind the root middlewares only.
func (m *mux[C]) serveUnrouted(w http.ResponseWriter, r *http.Request, resp handler.Response) {
	root := m
	for root.parent != nil {
		root = root.parent
	}

	h := handler.Chain(root.middlewares, func(C) handler.Response { return resp })
	m.table.serve(w, r, h)
}

// allowedMethods lists the methods that would have matched the request path.
func (t *table[C]) allowedMethods(r *http.Request) []string {
	var allowed []string
	for _, method := range probeMethods {
		if method == r.Method {
			continue
		}
		probe := r.Clone(r.Context())
		probe.Method = method
		if _, pattern := t.serveMux.Handler(probe); pattern != "" && pattern != fallbackPattern {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

func (t *table[C]) serve(w http.ResponseWriter, r *http.Request, fn handler.HandlerFunc[C]) {
	ww := newResponseWriter(w)
	ctx := t.newContext(ww, r)

	// Recover from panics to prevent server crashes
	defer func() {
		if p := recover(); p != nil {
			panicErr := &panicError{value: p, stack: debug.Stack()}
			if ww.Written() {
				t.logger.Error("panic after response written",
					"value", panicErr.value,
					"stack", string(panicErr.stack),
					"path", r.URL.Path,
					"method", r.Method,
					"status", ww.Status(),
				)
				return
			}
			t.errorHandler(ctx, panicErr)
		}
	}()

	resp := fn(ctx)
	if resp == nil {
		t.errorHandler(ctx, ErrNilResponse)
		return
	}

	if err := resp(ww, ctx.Request()); err != nil {
		t.errorHandler(ctx, err)
	}
}
