package resp_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/bookstore"
	"github.com/xy-planning-network/bookstore/http/resp"
	"github.com/xy-planning-network/bookstore/http/template"
	"github.com/xy-planning-network/bookstore/logger"
)

const (
	htmlMediaType = "text/html; charset=UTF-8"
	jsonMediaType = "application/json; charset=UTF-8"
)

func newResponder(b *bytes.Buffer, opts ...resp.ResponderOptFn) *resp.Responder {
	l := logger.New(logger.WithLogger(log.New(b, "", 0)), logger.WithLevel(logger.LogLevelDebug))
	return resp.NewResponder(append([]resp.ResponderOptFn{resp.WithLogger(l)}, opts...)...)
}

func TestResponderDo(t *testing.T) {
	t.Run("Cancelled", func(t *testing.T) {
		// Arrange
		r := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
		ctx, cancel := context.WithCancel(r.Context())
		r = r.Clone(ctx)

		w := httptest.NewRecorder()
		w.WriteHeader(http.StatusPaymentRequired)

		cancel()

		d := resp.NewResponder()

		// Act
		err := d.Json(w, r, resp.Code(http.StatusTeapot))

		// Assert
		require.ErrorIs(t, err, resp.ErrDone)
		require.Equal(t, http.StatusPaymentRequired, w.Code)
	})
}

func TestResponderJson(t *testing.T) {
	tcs := []struct {
		name     string
		opts     []resp.Fn
		code     int
		expected string
	}{
		{"Zero-Value", nil, http.StatusOK, "null\n"},
		{"Books", []resp.Fn{resp.Data(map[string]any{"books": []string{"A", "B"}})}, http.StatusOK, `{"books":["A","B"]}` + "\n"},
		{"With-Code", []resp.Fn{resp.Code(http.StatusNotFound), resp.Data(map[string]any{"error": "nope"})}, http.StatusNotFound, `{"error":"nope"}` + "\n"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/books", nil)
			d := newResponder(new(bytes.Buffer))

			// Act
			err := d.Json(w, r, tc.opts...)

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.code, w.Code)
			require.Equal(t, jsonMediaType, w.Header().Get("Content-Type"))
			require.Equal(t, tc.expected, w.Body.String())
		})
	}

	t.Run("Unencodable", func(t *testing.T) {
		// Arrange
		b := new(bytes.Buffer)
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books", nil)
		d := newResponder(b)

		// Act
		err := d.Json(w, r, resp.Data(make(chan int)))

		// Assert
		require.NotNil(t, err)
		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Contains(t, b.String(), "[ERROR]")
	})
}

func TestResponderErr(t *testing.T) {
	tcs := []struct {
		name string
		opts []resp.Fn
		code int
	}{
		{"Default", nil, http.StatusInternalServerError},
		{"Non-Error-Code", []resp.Fn{resp.Code(http.StatusOK)}, http.StatusInternalServerError},
		{"Bad-Gateway", []resp.Fn{resp.Code(http.StatusBadGateway)}, http.StatusBadGateway},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			b := new(bytes.Buffer)
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/books", nil)
			d := newResponder(b)
			err := errors.New("library unreachable")

			// Act
			d.Err(w, r, err, tc.opts...)

			// Assert
			require.Equal(t, tc.code, w.Code)
			require.Equal(t, "library unreachable\n", w.Body.String())
			require.Contains(t, b.String(), "library unreachable")
		})
	}
}

func TestResponderHtml(t *testing.T) {
	t.Run("No-Parser", func(t *testing.T) {
		// Arrange
		b := new(bytes.Buffer)
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/library", nil)
		d := newResponder(b)

		// Act
		err := d.Html(w, r)

		// Assert
		require.ErrorIs(t, err, resp.ErrBadConfig)
		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Contains(t, b.String(), "no parser configured")
	})

	t.Run("Missing-Template", func(t *testing.T) {
		// Arrange
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/library", nil)
		p := template.NewParser(template.WithFS(fstest.MapFS{}))
		d := newResponder(new(bytes.Buffer), resp.WithParser(p))

		// Act
		err := d.Html(w, r, resp.Tmpls("missing.tmpl"))

		// Assert
		require.NotNil(t, err)
		require.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("Shell", func(t *testing.T) {
		// Arrange
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/library/books", nil)
		r = r.Clone(bookstore.NewAppPropsContext(r.Context(), bookstore.AppProps{"name": "books", "view": "GuestView"}))
		p := template.NewParser(template.WithFS(fstest.MapFS{}))
		d := newResponder(new(bytes.Buffer), resp.WithParser(p), resp.WithTitle("Bookstore"), resp.WithRootUrl("https://books.example.com"))

		// Act
		err := d.Html(w, r, resp.Props(bookstore.AppProps{"view": "UserView"}))

		// Assert
		require.Nil(t, err)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, htmlMediaType, w.Header().Get("Content-Type"))
		require.Contains(t, w.Body.String(), "<title>Bookstore</title>")
		require.Contains(t, w.Body.String(), `data-root-url="https://books.example.com"`)
		require.Contains(t, w.Body.String(), `data-status="200"`)
		require.Contains(t, w.Body.String(), `data-props="{&#34;name&#34;:&#34;books&#34;,&#34;view&#34;:&#34;UserView&#34;}"`)
	})

	t.Run("Not-Found", func(t *testing.T) {
		// Arrange
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/shelves", nil)
		p := template.NewParser(template.WithFS(fstest.MapFS{}))
		d := newResponder(new(bytes.Buffer), resp.WithParser(p), resp.WithTitle("Bookstore"))

		// Act
		err := d.Html(w, r, resp.Code(http.StatusNotFound), resp.Title("Not Found"))

		// Assert
		require.Nil(t, err)
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Contains(t, w.Body.String(), "<title>Not Found</title>")
		require.Contains(t, w.Body.String(), `data-status="404"`)
		require.Contains(t, w.Body.String(), `data-props="{}"`)
	})

	t.Run("User-Template", func(t *testing.T) {
		// Arrange
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/library", nil)
		p := template.NewParser(template.WithFS(fstest.MapFS{
			"tmpl/maintenance.tmpl": &fstest.MapFile{Data: []byte(`<h1>{{ .Title }} is closed</h1>`)},
		}))
		d := newResponder(new(bytes.Buffer), resp.WithParser(p), resp.WithTitle("Bookstore"))

		// Act
		err := d.Html(w, r, resp.Code(http.StatusServiceUnavailable), resp.Tmpls("tmpl/maintenance.tmpl"))

		// Assert
		require.Nil(t, err)
		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		require.Equal(t, "<h1>Bookstore is closed</h1>", w.Body.String())
	})
}
