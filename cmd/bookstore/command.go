package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	cli "github.com/urfave/cli/v3"
	"github.com/xy-planning-network/bookstore/app"
	"github.com/xy-planning-network/bookstore/books"
	"github.com/xy-planning-network/bookstore/logger"
	"github.com/xy-planning-network/bookstore/routes"
)

var errMissingPath = errors.New("no path to resolve has been specified")

// newCommand assembles the bookstore command line, logging through l.
func newCommand(l logger.Logger) *cli.Command {
	return &cli.Command{
		Name:            "bookstore",
		Usage:           "serves the bookstore client application",
		HideHelpCommand: true,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Runs the web server until interrupted",
				Action: serve(l),
			},
			{
				Name:   "routes",
				Usage:  "Prints the route table",
				Action: printRoutes,
			},
			{
				Name:      "resolve",
				Usage:     "Resolves PATH against the route table",
				ArgsUsage: "PATH",
				Action:    resolve,
			},
			{
				Name:  "books",
				Usage: "Fetches and prints the book list",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "url",
						Value:   books.DefaultBaseURL,
						Usage:   "library API base `URL`",
						Sources: cli.EnvVars("LIBRARY_API_URL"),
					},
					&cli.StringFlag{
						Name:    "token",
						Usage:   "bearer `TOKEN` sent to the library API",
						Sources: cli.EnvVars("LIBRARY_API_TOKEN"),
					},
					&cli.DurationFlag{
						Name:    "timeout",
						Value:   books.DefaultTimeout,
						Usage:   "give up on the library API after `DURATION`",
						Sources: cli.EnvVars("LIBRARY_API_TIMEOUT"),
					},
				},
				Action: listBooks,
			},
		},
	}
}

func serve(l logger.Logger) cli.ActionFunc {
	return func(ctx context.Context, _ *cli.Command) error {
		a, err := app.New(app.WithContext(ctx), app.WithLogger(l))
		if err != nil {
			return err
		}

		return a.Guide()
	}
}

// printRoutes writes every entry of the table, indented by depth,
// alongside its full path and view.
func printRoutes(_ context.Context, cmd *cli.Command) error {
	tw := tabwriter.NewWriter(cmd.Root().Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPATH\tVIEW")

	err := routes.Library().Walk(func(path string, depth int, e routes.Entry) error {
		view := e.View.String()
		if view == "" {
			view = "-"
		}

		_, err := fmt.Fprintf(tw, "%s%s\t%s\t%s\n", strings.Repeat("  ", depth), e.Name, path, view)
		return err
	})
	if err != nil {
		return err
	}

	return tw.Flush()
}

// resolve navigates to the first argument and writes the resulting
// chain, outermost first, with the views it renders.
func resolve(_ context.Context, cmd *cli.Command) error {
	target := cmd.Args().First()
	if target == "" {
		return errMissingPath
	}

	res, err := routes.NewResolver(routes.Library())
	if err != nil {
		return err
	}

	nav := routes.NewNavigator(res)
	if _, err := nav.Navigate(target); err != nil {
		return err
	}

	loc := nav.Current()
	w := cmd.Root().Writer
	fmt.Fprintf(w, "%s => %s\n", loc.Path, strings.Join(loc.Chain, " > "))
	fmt.Fprintf(w, "  view: %s\n", loc.View)

	for _, k := range sortedKeys(loc.Params) {
		fmt.Fprintf(w, "  :%s = %s\n", k, loc.Params[k])
	}

	return nil
}

// listBooks writes one title per line.
func listBooks(ctx context.Context, cmd *cli.Command) error {
	c, err := books.NewClient(
		books.WithBaseURL(cmd.String("url")),
		books.WithTimeout(cmd.Duration("timeout")),
		books.WithToken(cmd.String("token")),
	)
	if err != nil {
		return err
	}

	titles, err := c.FetchAll(ctx)
	if err != nil {
		return err
	}

	return writeLines(cmd.Root().Writer, titles)
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
