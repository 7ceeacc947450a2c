package app

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/xy-planning-network/bookstore/books"
	"github.com/xy-planning-network/bookstore/http/middleware"
	"github.com/xy-planning-network/bookstore/http/resp"
	"github.com/xy-planning-network/bookstore/http/router"
	"github.com/xy-planning-network/bookstore/http/template"
	"github.com/xy-planning-network/bookstore/logger"
	"github.com/xy-planning-network/bookstore/routes"
)

const (
	apiPrefix    = "/api"
	maintTmpl    = "tmpl/maintenance.tmpl"
	notFoundText = "Not Found"
	retryAfter   = "600"
)

// A RouteDescription is how "/api/routes" lists a navigable route.
type RouteDescription struct {
	Path  string      `json:"path"`
	Name  string      `json:"name"`
	View  routes.View `json:"view"`
	Chain []string    `json:"chain"`
}

// handleRoutes registers every route the App serves.
func (a *App) handleRoutes() {
	leaves := a.table.Flatten()
	views := make([]router.Route, len(leaves))
	for i, leaf := range leaves {
		views[i] = router.Route{
			Name:    leaf.QualifiedName(),
			Path:    leaf.Pattern(),
			Method:  http.MethodGet,
			Handler: a.view,
		}
	}

	a.Router.HandleRoutes(views, middleware.InjectLocation(a.res))

	api := a.Router.Subrouter(apiPrefix)
	api.OnEveryRequest(middleware.CORS(a.cfg.corsOrigin))
	api.HandleRoutes([]router.Route{
		{Name: "api.books", Path: "/books", Method: http.MethodGet, Handler: a.getBooks},
		{Path: "/books", Method: http.MethodOptions, Handler: noContent},
		{Name: "api.resolve", Path: "/resolve", Method: http.MethodGet, Handler: a.getResolve},
		{Path: "/resolve", Method: http.MethodOptions, Handler: noContent},
		{Name: "api.routes", Path: "/routes", Method: http.MethodGet, Handler: a.getRoutes},
		{Path: "/routes", Method: http.MethodOptions, Handler: noContent},
	})

	// NOTE: paths the table resolves but mux does not, e.g., "/library/", still render their view
	a.Router.HandleNotFound(middleware.Chain(http.HandlerFunc(a.view), middleware.InjectLocation(a.res)).ServeHTTP)
}

// view renders the client application's shell for the Location in the request context.
// Without one, view responds not found.
func (a *App) view(w http.ResponseWriter, r *http.Request) {
	if _, ok := routes.LocationFromContext(r.Context()); !ok {
		a.notFound(w, r)
		return
	}

	if err := a.Html(w, r); err != nil {
		a.l.Error(err.Error(), &logger.LogContext{Error: err, Request: r})
	}
}

// notFound renders the shell with a 404 status for browsers
// and a bare 404 for everything else.
func (a *App) notFound(w http.ResponseWriter, r *http.Request) {
	if !strings.Contains(r.Header.Get("Accept"), "text/html") || strings.HasPrefix(r.URL.Path, apiPrefix+"/") {
		http.Error(w, notFoundText, http.StatusNotFound)
		return
	}

	if err := a.Html(w, r, resp.Code(http.StatusNotFound), resp.Title(notFoundText)); err != nil {
		a.l.Error(err.Error(), &logger.LogContext{Error: err, Request: r})
	}
}

// getBooks responds with the library API's book list under "books".
//
// When the library API cannot be reached or answers with something other than a book list,
// getBooks responds 502.
func (a *App) getBooks(w http.ResponseWriter, r *http.Request) {
	titles, err := a.books.FetchAll(r.Context())
	switch {
	case errors.Is(err, books.ErrRequestFailed), errors.Is(err, books.ErrDecode):
		a.Err(w, r, err, resp.Code(http.StatusBadGateway))
		return
	case err != nil:
		a.Err(w, r, err)
		return
	}

	if err := a.Json(w, r, resp.Data(map[string]any{"books": titles})); err != nil {
		a.l.Error(err.Error(), &logger.LogContext{Error: err, Request: r})
	}
}

// getResolve responds with the routes.Location the "path" query parameter resolves to.
func (a *App) getResolve(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("path")
	if target == "" {
		a.json(w, r, http.StatusBadRequest, map[string]any{"error": `missing "path" query parameter`})
		return
	}

	m, err := a.res.Resolve(target)
	if errors.Is(err, routes.ErrRouteNotFound) {
		a.json(w, r, http.StatusNotFound, map[string]any{"error": err.Error()})
		return
	}

	if err != nil {
		a.Err(w, r, err)
		return
	}

	a.json(w, r, http.StatusOK, routes.NewLocation(m))
}

// getRoutes responds with every navigable route, in the order they are matched.
func (a *App) getRoutes(w http.ResponseWriter, r *http.Request) {
	leaves := a.table.Flatten()
	out := make([]RouteDescription, len(leaves))
	for i, leaf := range leaves {
		chain := make([]string, len(leaf.Chain))
		for j, e := range leaf.Chain {
			chain[j] = e.Name
		}

		out[i] = RouteDescription{Path: leaf.Path, Name: leaf.QualifiedName(), View: leaf.View(), Chain: chain}
	}

	a.json(w, r, http.StatusOK, map[string]any{"routes": out})
}

func (a *App) json(w http.ResponseWriter, r *http.Request, code int, data any) {
	if err := a.Json(w, r, resp.Code(code), resp.Data(data)); err != nil {
		a.l.Error(err.Error(), &logger.LogContext{Error: err, Request: r})
	}
}

func noContent(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }

// MaintModeHandler responds 503 to every request, asking clients to retry in 10 minutes.
// The body is "tmpl/maintenance.tmpl" when p can render it and empty otherwise.
func MaintModeHandler(p template.Parser, l logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", retryAfter)

		b := new(bytes.Buffer)
		if p != nil {
			if tmpl, err := p.Parse(maintTmpl); err == nil {
				if err := tmpl.Execute(b, nil); err != nil {
					l.Error(fmt.Sprintf("cannot render %s: %s", maintTmpl, err), &logger.LogContext{Error: err, Request: r})
					b.Reset()
				}
			}
		}

		w.WriteHeader(http.StatusServiceUnavailable)
		b.WriteTo(w)
	}
}
