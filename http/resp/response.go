package resp

import (
	"net/http"

	"github.com/xy-planning-network/bookstore"
)

// A Fn is a functional option that mutates the state of the Response.
type Fn func(Responder, *Response) error

// A Response is the internal object a Responder response method builds while applying all
// functional options.
type Response struct {
	w     http.ResponseWriter
	r     *http.Request
	code  int
	data  any
	props bookstore.AppProps
	tmpls []string
	title string
}

// Code sets the response status code.
func Code(c int) Fn {
	return func(_ Responder, r *Response) error {
		r.code = c
		return nil
	}
}

// Data stores the provided value for writing to the client.
//
// Used with Responder.Json.
func Data(d any) Fn {
	return func(_ Responder, r *Response) error {
		r.data = d
		return nil
	}
}

// Err logs the error and, unless an error status is already set,
// sets the status code http.StatusInternalServerError.
func Err(e error) Fn {
	return func(d Responder, r *Response) error {
		if e != nil {
			d.logger.Error(e.Error(), newLogContext(r.r, e, r.data))
		}

		if r.code < http.StatusBadRequest {
			r.code = http.StatusInternalServerError
		}

		return nil
	}
}

// Props merges props into those rendered for the client application,
// overwriting any colliding keys found in the request context.
//
// Used with Responder.Html.
func Props(props bookstore.AppProps) Fn {
	return func(_ Responder, r *Response) error {
		if len(props) == 0 {
			return nil
		}

		merged := make(bookstore.AppProps, len(r.props)+len(props))
		for k, v := range r.props {
			merged[k] = v
		}

		for k, v := range props {
			merged[k] = v
		}

		r.props = merged
		return nil
	}
}

// Title sets the page title.
//
// Used with Responder.Html.
func Title(title string) Fn {
	return func(_ Responder, r *Response) error {
		r.title = title
		return nil
	}
}

// Tmpls replaces the shell template with the templates identified by fps,
// the first naming the one executed.
//
// Used with Responder.Html.
func Tmpls(fps ...string) Fn {
	return func(_ Responder, r *Response) error {
		if len(fps) == 0 {
			return ErrMissingData
		}

		r.tmpls = append(r.tmpls, fps...)
		return nil
	}
}

// Warn logs the warning.
func Warn(msg string) Fn {
	return func(d Responder, r *Response) error {
		d.logger.Warn(msg, newLogContext(r.r, nil, r.data))
		return nil
	}
}
