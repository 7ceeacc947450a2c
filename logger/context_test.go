package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/bookstore"
	"github.com/xy-planning-network/bookstore/logger"
)

func TestLogContextMarshalText(t *testing.T) {
	// Arrange
	lc := logger.LogContext{}

	// Act
	b, err := lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, []byte("{}"), b)

	// Arrange
	lc = logger.LogContext{Data: map[string]any{"test": "data"}}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"data":{"test":"data"}}`, string(b))

	// Arrange
	lc = logger.LogContext{Error: errors.New("test")}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"error":"test"}`, string(b))

	// Arrange
	lc = logger.LogContext{Route: "guest", Caller: "ignored.go:1"}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"route":"guest"}`, string(b))
}

func TestLogContextMarshalTextRequest(t *testing.T) {
	// Arrange
	expected := map[string]any{
		"request": map[string]any{
			"method": http.MethodGet,
			"url":    "https://example.com/library/?token=" + bookstore.LogMaskVal,
			"header": map[string]any{
				"Authorization": []any{bookstore.LogMaskVal},
			},
		},
	}

	r := httptest.NewRequest(http.MethodGet, "https://example.com/library/?token=abc", nil)
	r.Header.Set("Authorization", "Bearer abc")
	lc := logger.LogContext{Request: r}

	// Act
	b, err := lc.MarshalText()

	// Assert
	require.Nil(t, err)
	m := make(map[string]any)
	require.Nil(t, json.Unmarshal(b, &m))
	require.Equal(t, expected, m)
	require.Equal(t, "Bearer abc", r.Header.Get("Authorization"))

	// Arrange
	form := url.Values{}
	form.Set("email", "reader@example.com")
	form.Set("password", "hunter2")

	r = httptest.NewRequest(http.MethodPost, "https://example.com/auth/login", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	require.Nil(t, r.ParseForm())

	expected = map[string]any{
		"request": map[string]any{
			"method": http.MethodPost,
			"url":    "https://example.com/auth/login",
			"header": map[string]any{
				"Content-Type": []any{"application/x-www-form-urlencoded"},
			},
			"form": map[string]any{
				"email":    []any{"reader@example.com"},
				"password": []any{bookstore.LogMaskVal},
			},
		},
	}
	lc = logger.LogContext{Request: r}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	m = make(map[string]any)
	require.Nil(t, json.Unmarshal(b, &m))
	require.Equal(t, expected, m)
	require.Equal(t, "hunter2", r.Form.Get("password"))

	// Arrange
	buf := new(bytes.Buffer)
	require.Nil(t, json.NewEncoder(buf).Encode(map[string]string{"title": "Dune"}))

	r = httptest.NewRequest(http.MethodPost, "https://example.com/library/", buf)
	r.Header.Set("Content-Type", "application/json")
	lc = logger.LogContext{Request: r}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	m = make(map[string]any)
	require.Nil(t, json.Unmarshal(b, &m))
	require.Equal(t, map[string]any{"title": "Dune"}, m["request"].(map[string]any)["json"])

	body, err := io.ReadAll(r.Body)
	require.Nil(t, err)
	require.JSONEq(t, `{"title":"Dune"}`, string(body))
}

func TestCurrentCaller(t *testing.T) {
	var caller string
	func() {
		caller = logger.CurrentCaller()
	}()

	require.Regexp(t, `logger/context_test\.go:\d+$`, caller)
}
