package router

import (
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/bookstore"
	"github.com/xy-planning-network/bookstore/http/middleware"
)

const (
	assetsPath   = "/assets/"
	cacheControl = "max-age=2592000" // 30 days
)

// A Route maps a path and HTTP method to an [http.HandlerFunc].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
//
// A Route with a Name can be looked up with [*Router.URL].
type Route struct {
	Name        string
	Path        string
	Method      string
	Handler     http.HandlerFunc
	Middlewares []middleware.Adapter
}

// Router routes requests for pages, the JSON API and built client assets.
type Router struct {
	Env           bookstore.Environment
	everyReqStack []middleware.Adapter
	r             *mux.Router
}

// New constructs a [*Router] for the given environment.
//
// Requests under distDir and under "/assets/" are served from dist,
// the client's build output. If dist is nil, distDir is read from disk.
func New(env bookstore.Environment, distDir string, dist fs.FS) *Router {
	distDir = strings.Trim(distDir, "/")
	if dist == nil {
		dist = os.DirFS(distDir)
	}

	r := mux.NewRouter()
	files := http.FileServer(http.FS(dist))

	// NOTE: asset URIs rendered into templates carry the dist directory
	if distDir != "" {
		prefix := "/" + distDir + "/"
		r.PathPrefix(prefix).Handler(middleware.Chain(
			http.StripPrefix(strings.TrimSuffix(prefix, "/"), files),
			cacheControlMiddleware(),
		))
	}

	r.PathPrefix(assetsPath).Handler(middleware.Chain(files, cacheControlMiddleware()))

	return &Router{Env: env, r: r}
}

// CatchAll sets up a handler for all routes to funnel to for e.g. maintenance mode.
func (r *Router) CatchAll(handler http.HandlerFunc) {
	r.r.PathPrefix("/").Handler(r.chain(handler))
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleNotFound sets the provided [http.HandlerFunc] as the default function
// for when no other registered Route is matched.
func (r *Router) HandleNotFound(handler http.HandlerFunc) {
	r.r.NotFoundHandler = r.chain(handler)
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the default set.
//
// A Route without a Method matches every method.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, route := range routes {
		mws := append(append([]middleware.Adapter(nil), middlewares...), route.Middlewares...)
		mr := r.r.Handle(route.Path, r.chain(route.Handler, mws...))
		if route.Method != "" {
			mr.Methods(route.Method)
		}

		if route.Name != "" {
			mr.Name(route.Name)
		}
	}
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.r.ServeHTTP(w, req)
}

// Subrouter constructs a [Router] that handles requests to endpoints matching the prefix.
// The Subrouter starts with the middlewares registered on r so far.
//
// e.g., r.Subrouter("/api") handles requests to endpoints like /api/books
func (r *Router) Subrouter(prefix string) *Router {
	return &Router{
		Env:           r.Env,
		r:             r.r.PathPrefix(prefix).Subrouter(),
		everyReqStack: append([]middleware.Adapter(nil), r.everyReqStack...),
	}
}

// URL builds the path of the Route registered under name, filling in its path variables.
func (r *Router) URL(name string, pairs ...string) (string, error) {
	route := r.r.Get(name)
	if route == nil {
		return "", bookstore.ErrNotExist
	}

	u, err := route.URLPath(pairs...)
	if err != nil {
		return "", err
	}

	return u.Path, nil
}

// chain wraps handler with the every-request stack, then mws,
// recovering panics closest to handler.
func (r *Router) chain(handler http.HandlerFunc, mws ...middleware.Adapter) http.Handler {
	stack := append(append([]middleware.Adapter(nil), r.everyReqStack...), mws...)
	return middleware.Chain(middleware.ReportPanic(r.Env)(handler), stack...)
}

// cacheControlMiddleware helps by adding a "Cache-Control" header to the response.
func cacheControlMiddleware() middleware.Adapter {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", cacheControl)
			handler.ServeHTTP(w, r)
		})
	}
}
