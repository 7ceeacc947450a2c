package resp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/xy-planning-network/bookstore"
	"github.com/xy-planning-network/bookstore/http/template"
	"github.com/xy-planning-network/bookstore/logger"
)

const (
	responderFrames = 1

	htmlMediaType = "text/html; charset=UTF-8"
	jsonMediaType = "application/json; charset=UTF-8"
)

// Responder maintains reusable pieces for responding to HTTP requests.
// It exposes many common methods for writing structured data as an HTTP response.
// These are the forms of response Responder can execute:
//
//	Html
//	Json
//	Err
//
// Setting up a single instance of a Responder suffices for an application.
//
// When handling a specific HTTP request, calling code supplies additional data, structure,
// and so forth through Fn functions.
type Responder struct {
	logger logger.Logger

	// Initialized template parser
	parser template.Parser

	// Pool of *bytes.Buffer to prerender responses into
	pool *sync.Pool

	// Root URL the responder is listening on
	rootUrl *url.URL

	// Page title used when none is passed
	title string

	templates struct {
		// Root template rendering the client application
		shell string
	}
}

// NewResponder constructs a *Responder using the ResponderOptFns passed in.
func NewResponder(opts ...ResponderOptFn) *Responder {
	d := &Responder{
		pool: &sync.Pool{New: func() any { return new(bytes.Buffer) }},
	}
	d.templates.shell = template.ShellTmpl

	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.New(logger.WithKind(bookstore.HTTPLogKind))
	}

	if l, ok := d.logger.(logger.SkipLogger); ok {
		d.logger = l.AddSkip(l.Skip() + responderFrames)
	}

	if d.parser != nil && d.rootUrl != nil {
		d.parser.AddFn(template.RootUrl(d.rootUrl))
	}

	return d
}

// Err wraps http.Error(), logging the error causing the failure state.
//
// The status code is http.StatusInternalServerError unless Code set an error status.
func (doer *Responder) Err(w http.ResponseWriter, r *http.Request, err error, opts ...Fn) {
	rr, nested := doer.do(w, r, append(opts, Err(err))...)
	if nested != nil {
		err = fmt.Errorf("%w: %s", nested, err)
	}

	var msg string
	if err != nil {
		msg = err.Error()
	}

	code := http.StatusInternalServerError
	if rr != nil && rr.code != 0 {
		code = rr.code
	}

	http.Error(w, msg, code)
}

// A shellData is what the shell template renders.
type shellData struct {
	Title  string
	Status int
	Props  bookstore.AppProps
}

// Html renders the client application's shell,
// passing the [bookstore.AppProps] found in the request context and set by Props along.
func (doer *Responder) Html(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := doer.do(w, r, opts...)
	if err != nil {
		return doer.handleHtmlError(w, r, err)
	}

	if doer.parser == nil {
		return doer.handleHtmlError(w, r, fmt.Errorf("%w: no parser configured", ErrBadConfig))
	}

	tmpls := rr.tmpls
	if len(tmpls) == 0 {
		tmpls = []string{doer.templates.shell}
	}

	tmpl, err := doer.parser.Parse(tmpls...)
	if err != nil {
		return doer.handleHtmlError(w, r, fmt.Errorf("cannot parse: %w", err))
	}

	if rr.code == 0 {
		rr.code = http.StatusOK
	}

	rd := shellData{Title: doer.title, Status: rr.code, Props: rr.props}
	if rr.title != "" {
		rd.Title = rr.title
	}

	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer doer.pool.Put(b)

	if err := tmpl.Execute(b, rd); err != nil {
		return doer.handleHtmlError(w, r, err)
	}

	w.Header().Set("Content-Type", htmlMediaType)
	w.WriteHeader(rr.code)
	if _, err := b.WriteTo(w); err != nil {
		return err
	}

	return nil
}

// Json responds with the value set by Data encoded as JSON, setting appropriate headers.
//
// The default status code is http.StatusOK.
func (doer *Responder) Json(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := doer.do(w, r, opts...)
	if err != nil {
		return err
	}

	if rr.code == 0 {
		rr.code = http.StatusOK
	}

	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer doer.pool.Put(b)

	if err := json.NewEncoder(b).Encode(rr.data); err != nil {
		doer.Err(w, r, err)
		return err
	}

	w.Header().Set("Content-Type", jsonMediaType)
	w.WriteHeader(rr.code)
	if _, err := b.WriteTo(w); err != nil {
		return err
	}

	return nil
}

// do applies all options to a new *Response in order,
// stopping at the first one returning an error.
func (doer *Responder) do(w http.ResponseWriter, r *http.Request, opts ...Fn) (*Response, error) {
	resp := &Response{
		w:     w,
		r:     r,
		props: bookstore.AppPropsFromContext(r.Context()),
	}

	for _, opt := range opts {
		select {
		case <-r.Context().Done():
			return nil, fmt.Errorf("%w", ErrDone)
		default:
		}

		if err := opt(*doer, resp); err != nil {
			return resp, err
		}
	}

	return resp, nil
}

// handleHtmlError logs err and responds with a bare 500.
func (doer *Responder) handleHtmlError(w http.ResponseWriter, r *http.Request, err error) error {
	doer.logger.Error(err.Error(), newLogContext(r, err, nil))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	return err
}
