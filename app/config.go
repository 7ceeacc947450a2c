package app

import (
	"context"
	"io/fs"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/xy-planning-network/bookstore"
	"github.com/xy-planning-network/bookstore/books"
	"github.com/xy-planning-network/bookstore/http/middleware"
	"github.com/xy-planning-network/bookstore/http/resp"
	"github.com/xy-planning-network/bookstore/http/router"
	"github.com/xy-planning-network/bookstore/http/template"
	"github.com/xy-planning-network/bookstore/logger"
)

const (
	// App metadata
	appTitleEnvVar  = "APP_TITLE"
	DefaultAppTitle = "Bookstore"

	// Client defaults
	assetsURLEnvVar     = "ASSETS_URL"
	DefaultAssetsURL    = "http://localhost:5173"
	clientDistDirEnvVar = "CLIENT_DIST_DIR"
	DefaultClientDist   = "client/dist/"
	corsOriginEnvVar    = "CORS_ORIGIN"

	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Library API defaults
	libraryAPITimeoutEnvVar = "LIBRARY_API_TIMEOUT"
	libraryAPITokenEnvVar   = "LIBRARY_API_TOKEN"
	libraryAPIURLEnvVar     = "LIBRARY_API_URL"

	// Log defaults
	logLevelEnvVar = "LOG_LEVEL"

	// Maintenance defaults
	maintModeEnvVar = "MAINTENANCE_MODE"

	// Rate limit defaults
	rateBurstEnvVar = "RATE_BURST"
	rateLimitEnvVar = "RATE_LIMIT"

	// Web server defaults
	DefaultHost               = "localhost"
	hostEnvVar                = "HOST"
	DefaultPort               = ":8080"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second
)

// A config holds every setting read from environment variables.
type config struct {
	assetsURL    string
	corsOrigin   string
	distDir      string
	env          bookstore.Environment
	host         string
	idleTimeout  time.Duration
	libraryToken string
	libraryURL   string
	libraryWait  time.Duration
	logLevel     logger.LogLevel
	maintenance  bool
	port         string
	rateBurst    int
	rateLimit    float64
	readTimeout  time.Duration
	title        string
	writeTimeout time.Duration
}

// loadConfig reads every environment variable the App understands.
func loadConfig() config {
	port := bookstore.EnvVarOrString(portEnvVar, DefaultPort)
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	distDir := strings.Trim(bookstore.EnvVarOrString(clientDistDirEnvVar, DefaultClientDist), "/")
	if distDir == "" {
		distDir = "."
	}

	return config{
		assetsURL:    bookstore.EnvVarOrString(assetsURLEnvVar, DefaultAssetsURL),
		corsOrigin:   bookstore.EnvVarOrString(corsOriginEnvVar, ""),
		distDir:      distDir,
		env:          bookstore.EnvVarOrEnv(environmentEnvVar, bookstore.Development),
		host:         bookstore.EnvVarOrString(hostEnvVar, DefaultHost),
		idleTimeout:  bookstore.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		libraryToken: bookstore.EnvVarOrString(libraryAPITokenEnvVar, ""),
		libraryURL:   bookstore.EnvVarOrURL(libraryAPIURLEnvVar, books.DefaultBaseURL).String(),
		libraryWait:  bookstore.EnvVarOrDuration(libraryAPITimeoutEnvVar, books.DefaultTimeout),
		logLevel:     logger.NewLogLevel(bookstore.EnvVarOrString(logLevelEnvVar, "INFO")),
		maintenance:  bookstore.EnvVarOrBool(maintModeEnvVar, false),
		port:         port,
		rateBurst:    bookstore.EnvVarOrInt(rateBurstEnvVar, middleware.DefaultBurst),
		rateLimit:    bookstore.EnvVarOrFloat(rateLimitEnvVar, middleware.DefaultRate),
		readTimeout:  bookstore.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		title:        bookstore.EnvVarOrString(appTitleEnvVar, DefaultAppTitle),
		writeTimeout: bookstore.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
	}
}

// defaultBooks constructs the *books.Client reading from LIBRARY_API_URL.
func defaultBooks(cfg config) (*books.Client, error) {
	return books.NewClient(
		books.WithBaseURL(cfg.libraryURL),
		books.WithTimeout(cfg.libraryWait),
		books.WithToken(cfg.libraryToken),
	)
}

// defaultLogger constructs a logger.Logger tagged with kind,
// reporting to Sentry when SENTRY_DSN is set.
func defaultLogger(env bookstore.Environment, cfg config, kind string) logger.Logger {
	return logger.NewLogger(
		logger.WithEnv(env.String()),
		logger.WithKind(kind),
		logger.WithLevel(cfg.logLevel),
	)
}

// defaultParser constructs a *template.Parse to be used
// when responding to HTTP requests with [*resp.Responder.Html].
//
// defaultParser makes available these functions in an HTML template:
//
//   - "asset"
//   - "env"
//   - "isDevelopment"
//   - "json"
//   - "nonce"
//   - "rootUrl"
func defaultParser(env bookstore.Environment, cfg config, files fs.FS) *template.Parse {
	return template.NewParser(
		template.WithFS(files),
		template.WithFn(template.Env(env)),
		template.WithFn("isDevelopment", env.IsDevelopment),
		template.WithFn("asset", template.AssetURI(env, cfg.assetsURL, cfg.distDir, files)),
	)
}

// defaultResponder configures the [*resp.Responder] to be used by http.Handlers.
func defaultResponder(l logger.Logger, p template.Parser, u *url.URL, title string) *resp.Responder {
	return resp.NewResponder(
		resp.WithLogger(l),
		resp.WithParser(p),
		resp.WithRootUrl(u.String()),
		resp.WithTitle(title),
	)
}

// defaultRouter constructs a [*router.Router] to be used by the web server.
func defaultRouter(env bookstore.Environment, distDir string, dist fs.FS, mws []middleware.Adapter) *router.Router {
	r := router.New(env, distDir, dist)
	r.OnEveryRequest(mws...)

	return r
}

// defaultServer constructs a default [*http.Server].
func defaultServer(ctx context.Context, cfg config) *http.Server {
	srv := &http.Server{
		Addr:         cfg.port,
		IdleTimeout:  cfg.idleTimeout,
		ReadTimeout:  cfg.readTimeout,
		WriteTimeout: cfg.writeTimeout,
	}

	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}

// defaultURL joins HOST and PORT into the URL the App is served over.
func defaultURL(cfg config) *url.URL {
	return &url.URL{Scheme: "http", Host: cfg.host + cfg.port}
}
