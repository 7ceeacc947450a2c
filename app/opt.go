package app

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/xy-planning-network/bookstore"
	"github.com/xy-planning-network/bookstore/http/router"
	"github.com/xy-planning-network/bookstore/http/template"
	"github.com/xy-planning-network/bookstore/logger"
	"github.com/xy-planning-network/bookstore/routes"
)

// An Option configures an *App either (1) directly, immediately upon being called
// or (2) in the OptFollowup it returns.
// Some Options require components others construct and thus an OptFollowup can be returned
// in order to be called at a later time when those components are available.
//
// WithBooks is an example of the first.
// An unexported field on the passed in *App is updated with the enclosed value.
//
// WithMaintenanceMode is an example of the second.
// The *router.Router it registers a handler on exists only once the closure it returns is called.
type Option func(a *App) (OptFollowup, error)
type OptFollowup func() error

// defaultOpts lists the Options every App starts from.
func defaultOpts() []Option {
	return []Option{
		WithContext(context.Background()),
		WithEnv(""),
		withDefaultLogger(),
		withMaintenanceFromEnv(),
	}
}

// WithBooks sets the BookFetcher "/api/books" reads from,
// replacing the *books.Client configured by the LIBRARY_API env vars.
func WithBooks(b BookFetcher) Option {
	return func(a *App) (OptFollowup, error) {
		if b == nil {
			return nil, fmt.Errorf("%w: nil BookFetcher", bookstore.ErrMissingData)
		}

		a.books = b
		a.l.Debug(fmt.Sprintf("using books %T", b), nil)
		return nil, nil
	}
}

// WithContext sets the context.Context the web server hands to every request
// and whose cancellation stops Guide.
func WithContext(ctx context.Context) Option {
	return func(a *App) (OptFollowup, error) {
		if ctx == nil {
			return nil, fmt.Errorf("%w: nil context.Context", bookstore.ErrMissingData)
		}

		a.ctx = ctx
		return nil, nil
	}
}

// WithEnv casts the provided string into a valid Environment,
// or, reads from the ENVIRONMENT environment variable a valid Environment.
//
// If both fail, the Environment is Development.
func WithEnv(env string) Option {
	return func(a *App) (OptFollowup, error) {
		e := bookstore.Environment(env)
		if err := e.Valid(); err != nil {
			e = a.cfg.env
		}

		a.env = e
		if a.l != nil {
			a.l.Debug(fmt.Sprintf("using env %s", e), nil)
		}

		return nil, nil
	}
}

// WithFS sets the filesystem the client's dist directory and user templates are read from.
// The default is the working directory.
func WithFS(files fs.FS) Option {
	return func(a *App) (OptFollowup, error) {
		a.files = files
		return nil, nil
	}
}

// WithHTTPLogger sets the logger.Logger requests are logged with.
func WithHTTPLogger(l logger.Logger) Option {
	return func(a *App) (OptFollowup, error) {
		a.httpLogger = l
		return nil, nil
	}
}

// WithLogger exposes the provided logger.Logger to the App.
func WithLogger(l logger.Logger) Option {
	return func(a *App) (OptFollowup, error) {
		if l == nil {
			return nil, fmt.Errorf("%w: nil logger.Logger", bookstore.ErrMissingData)
		}

		a.l = l
		a.l.Debug(fmt.Sprintf("using logger %T", l), nil)
		return nil, nil
	}
}

// WithMaintenanceMode funnels every request, bar those for built client assets,
// to a 503 response.
func WithMaintenanceMode() Option {
	return func(a *App) (OptFollowup, error) {
		return func() error {
			a.l.Warn("maintenance mode enabled", nil)
			a.Router.CatchAll(MaintModeHandler(a.p, a.l))
			return nil
		}, nil
	}
}

// WithParser sets the template.Parser the HTML shell is rendered with.
func WithParser(p template.Parser) Option {
	return func(a *App) (OptFollowup, error) {
		a.p = p
		return nil, nil
	}
}

// WithRoutes constructs a followup option that, when called,
// registers additional routes alongside those the App serves.
func WithRoutes(rs ...router.Route) Option {
	return func(a *App) (OptFollowup, error) {
		return func() error {
			a.Router.HandleRoutes(rs)
			return nil
		}, nil
	}
}

// WithServer exposes the *http.Server to the App.
// Its Handler is replaced with the App's *router.Router.
func WithServer(s *http.Server) Option {
	return func(a *App) (OptFollowup, error) {
		a.srv = s
		return nil, nil
	}
}

// WithTable sets the route table view routes are registered from.
// The default is routes.Library.
func WithTable(t *routes.Table) Option {
	return func(a *App) (OptFollowup, error) {
		if t == nil {
			return nil, fmt.Errorf("%w: nil *routes.Table", bookstore.ErrMissingData)
		}

		a.table = t
		return nil, nil
	}
}

// withDefaultLogger sets up the logger.Logger options log through
// until WithLogger replaces it.
func withDefaultLogger() Option {
	return func(a *App) (OptFollowup, error) {
		a.l = defaultLogger(a.env, a.cfg, bookstore.AppLogKind)
		return nil, nil
	}
}

// withMaintenanceFromEnv applies WithMaintenanceMode when MAINTENANCE_MODE is true.
func withMaintenanceFromEnv() Option {
	return func(a *App) (OptFollowup, error) {
		if !a.cfg.maintenance {
			return nil, nil
		}

		return WithMaintenanceMode()(a)
	}
}
