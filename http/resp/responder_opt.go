package resp

import (
	"net/url"

	"github.com/xy-planning-network/bookstore/http/template"
	"github.com/xy-planning-network/bookstore/logger"
)

// A ResponderOptFn mutates the provided *Responder in some way.
// A ResponderOptFn is used when constructing a new Responder.
type ResponderOptFn func(*Responder)

// WithLogger sets the provided implementation of Logger in order to log all statements through it.
//
// If no Logger is provided through this option, a logger.AppLogger will be configured.
func WithLogger(log logger.Logger) ResponderOptFn {
	return func(d *Responder) {
		d.logger = log
	}
}

// WithParser sets the provided implementation of template.Parser to use for parsing HTML templates.
func WithParser(p template.Parser) ResponderOptFn {
	return func(d *Responder) {
		d.parser = p
	}
}

// WithRootUrl sets the provided URL after parsing it into a *url.URL to use for rendering.
//
// NOTE: If u fails parsing by url.ParseRequestURI, no root URL is set.
func WithRootUrl(u string) ResponderOptFn {
	return func(d *Responder) {
		if good, err := url.ParseRequestURI(u); err == nil {
			d.rootUrl = good
		}
	}
}

// WithShellTemplate sets the template identified by the filepath that Html renders by default.
//
// The default is template.ShellTmpl.
func WithShellTemplate(fp string) ResponderOptFn {
	return func(d *Responder) {
		if fp != "" {
			d.templates.shell = fp
		}
	}
}

// WithTitle sets the page title Html renders when no Title is passed.
func WithTitle(title string) ResponderOptFn {
	return func(d *Responder) {
		d.title = title
	}
}
