package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/bookstore"
	"github.com/xy-planning-network/bookstore/http/middleware"
	"github.com/xy-planning-network/bookstore/http/resp"
	"github.com/xy-planning-network/bookstore/http/router"
	"github.com/xy-planning-network/bookstore/http/template"
	"github.com/xy-planning-network/bookstore/logger"
	"github.com/xy-planning-network/bookstore/routes"
)

const shutdownTimeout = 5 * time.Second

//go:generate mockgen -destination=mock_books_test.go -package=app_test . BookFetcher

// A BookFetcher reads the book list from the library API.
//
// *books.Client implements BookFetcher.
type BookFetcher interface {
	FetchAll(ctx context.Context) ([]string, error)
}

// An App manages and exposes all components of the bookstore web server to one another.
type App struct {
	*resp.Responder
	*router.Router

	books      BookFetcher
	cfg        config
	ctx        context.Context
	env        bookstore.Environment
	files      fs.FS
	httpLogger logger.Logger
	l          logger.Logger
	p          template.Parser
	res        *routes.Resolver
	srv        *http.Server
	table      *routes.Table
	url        *url.URL
	visitors   *middleware.Visitors
}

// New constructs an App from the provided options.
// Default options are applied first followed by the options passed into New.
// Options supplied to New overwrite default configurations.
//
// Once every option has been applied, New registers the view routes for each navigable
// entry in the route table, the JSON API under "/api", and the not found handler.
func New(opts ...Option) (*App, error) {
	a := &App{cfg: loadConfig()}
	followups := make([]OptFollowup, 0)

	// NOTE: some options require components other options construct.
	// They return an OptFollowup called once every option has configured the *App.
	for _, opt := range append(defaultOpts(), opts...) {
		fn, err := opt(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", bookstore.ErrBadConfig, err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	if err := a.assemble(); err != nil {
		return nil, fmt.Errorf("%w: %s", bookstore.ErrBadConfig, err)
	}

	for _, fn := range followups {
		if err := fn(); err != nil {
			return nil, fmt.Errorf("%w: %s", bookstore.ErrBadConfig, err)
		}
	}

	a.handleRoutes()
	a.srv.Handler = a.Router

	return a, nil
}

func (a *App) EmitBooks() BookFetcher          { return a.books }
func (a *App) EmitEnv() bookstore.Environment  { return a.env }
func (a *App) EmitLogger() logger.Logger       { return a.l }
func (a *App) EmitResolver() *routes.Resolver  { return a.res }
func (a *App) EmitServer() *http.Server        { return a.srv }
func (a *App) EmitURL() *url.URL               { return a.url }

// Guide begins the web server.
//
// These, and (*App).Shutdown, stop Guide:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
// - cancelling the context.Context set by WithContext
func (a *App) Guide() error {
	ctx, cancel := context.WithCancel(a.ctx)
	defer cancel()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGHUP, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)
	defer signal.Stop(ch)

	go func() {
		select {
		case s := <-ch:
			a.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
			cancel()
		case <-ctx.Done():
		}
	}()

	errs := make(chan error, 1)
	go func() {
		a.l.Info(fmt.Sprintf("running web server at %s", a.srv.Addr), nil)
		if err := a.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errs <- fmt.Errorf("could not listen: %w", err)
		}
	}()

	select {
	case err := <-errs:
		a.l.Error(err.Error(), &logger.LogContext{Error: err})
		return err
	case <-ctx.Done():
	}

	return a.Shutdown()
}

// Shutdown shutdowns the web server, waiting up to 5 seconds for open requests to finish.
func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	a.l.Info("shutting down web server", nil)
	err := a.srv.Shutdown(ctx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	a.l.Info("web server shutdown successfully", nil)
	return nil
}

// assemble constructs whatever components options did not supply.
func (a *App) assemble() error {
	var err error
	if a.books == nil {
		if a.books, err = defaultBooks(a.cfg); err != nil {
			return err
		}
	}

	if a.table == nil {
		a.table = routes.Library()
	}

	if a.res, err = routes.NewResolver(a.table); err != nil {
		return err
	}

	if a.files == nil {
		a.files = os.DirFS(".")
	}

	if a.p == nil {
		a.p = defaultParser(a.env, a.cfg, a.files)
	}

	if a.url == nil {
		a.url = defaultURL(a.cfg)
	}

	if a.httpLogger == nil {
		a.httpLogger = defaultLogger(a.env, a.cfg, bookstore.HTTPLogKind)
	}

	if a.visitors == nil {
		a.visitors = middleware.NewVisitors(middleware.WithLimit(a.cfg.rateLimit, a.cfg.rateBurst))
	}

	a.Responder = defaultResponder(a.l, a.p, a.url, a.cfg.title)

	dist, err := fs.Sub(a.files, a.cfg.distDir)
	if err != nil {
		return err
	}

	a.Router = defaultRouter(a.env, a.cfg.distDir, dist, a.stack())

	if a.srv == nil {
		a.srv = defaultServer(a.ctx, a.cfg)
	}

	return nil
}

// stack lists the middlewares every request passes through.
func (a *App) stack() []middleware.Adapter {
	return []middleware.Adapter{
		middleware.ForceHTTPS(a.env),
		middleware.RateLimit(a.visitors),
		middleware.InjectIPAddress(),
		middleware.RequestID(),
		middleware.LogRequest(a.httpLogger),
	}
}
