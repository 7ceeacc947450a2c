// Command bookstore serves the bookstore client application and inspects its routes and book list.
//
// Usage:
//
//	bookstore serve
//	bookstore routes
//	bookstore resolve PATH
//	bookstore books [--url URL] [--token TOKEN]
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/xy-planning-network/bookstore"
	"github.com/xy-planning-network/bookstore/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l := logger.NewLogger(
		logger.WithEnv(bookstore.EnvVarOrString("ENVIRONMENT", bookstore.Development.String())),
		logger.WithKind(bookstore.CLILogKind),
		logger.WithLevel(logger.NewLogLevel(bookstore.EnvVarOrString("LOG_LEVEL", "INFO"))),
	)

	if err := newCommand(l).Run(ctx, os.Args); err != nil {
		l.Error(err.Error(), &logger.LogContext{Error: err})
		stop()
		os.Exit(1)
	}
}
