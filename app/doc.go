/*
Package app initializes and manages the bookstore web server with sane defaults.

# App

The main entrypoint to package app is the [App] type, constructed with [New].

[*App.Guide] begins the web server.
By default, [*App.Guide] listens on [DefaultHost][DefaultPort] (localhost:8080),
clear of the library API at 127.0.0.1:3000.
Stop that web server with [*App.Shutdown],
by cancelling the context.Context passed to [WithContext],
or by sending a signal [*App.Guide] listens for.

The App answers:
  - GET on the full path of every navigable route with the client application's HTML shell,
    the resolved routes.Location passed along as props
  - GET /api/books with the library API's book list
  - GET /api/resolve?path= with the routes.Location a path resolves to
  - GET /api/routes with every navigable route
  - GET /assets/ and the client dist directory with built client assets
  - everything else with 404

# Configuration

A developer configures the App through environment variables and [Option].
Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - APP_TITLE: the title of every page; default: Bookstore
  - ASSETS_URL: the origin of the Vite dev server in development; default: http://localhost:5173
  - CLIENT_DIST_DIR: the directory the client is built into; default: client/dist/
  - CORS_ORIGIN: the origin allowed to call /api from a browser; default: none
  - ENVIRONMENT: the environment the application is running in; cf. [bookstore.Environment]
  - HOST: the host the application is running on; default: localhost
  - LIBRARY_API_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for fetching the book list; default: 30s
  - LIBRARY_API_TOKEN: the bearer token attached to library API requests; default: none
  - LIBRARY_API_URL: the URL the book list is read from; default: http://127.0.0.1:3000/library
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - MAINTENANCE_MODE: answer every request with 503; default: false
  - PORT: the port the application should listen on; default: :8080
  - RATE_BURST: the number of requests a single IP address can make at once; default: 20
  - RATE_LIMIT: the number of requests per second a single IP address can sustain; default: 5
  - SENTRY_DSN: the Sentry project errors are reported to; default: none
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for writing HTTP responses; default: 5s
*/
package app
