package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/bookstore"
	"github.com/xy-planning-network/bookstore/http/middleware"
)

func TestGetIPAddress(t *testing.T) {
	tcs := []struct {
		name     string
		hm       http.Header
		expected string
	}{
		{"No-Match", make(http.Header), "0.0.0.0"},
		{
			"Only-Private-IP",
			func() http.Header {
				h := make(http.Header)
				h.Set("X-Forwarded-For", "192.168.0.0")
				return h
			}(),
			"0.0.0.0",
		},
		{
			"Only-Public-IP",
			func() http.Header {
				h := make(http.Header)
				h.Set("X-Forwarded-For", "1.1.1.1")
				return h
			}(),
			"1.1.1.1",
		},
		{
			"Get-Before-Proxy",
			func() http.Header {
				h := make(http.Header)
				h.Set("X-Real-Ip", "10.0.0.1,1.1.1.1")
				return h
			}(),
			"1.1.1.1",
		},
		{
			"Get-First-Public",
			func() http.Header {
				h := make(http.Header)
				h.Set("X-Real-Ip", "10.255.255.255,8.8.8.8,1.1.1.1,172.16.0.0")
				return h
			}(),
			"1.1.1.1",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, middleware.GetIPAddress(tc.hm))
		})
	}
}

func TestIPAddress(t *testing.T) {
	tcs := []struct {
		name     string
		prepare  func(r *http.Request) *http.Request
		expected string
	}{
		{
			"From-Context",
			func(r *http.Request) *http.Request {
				r.Header.Set("X-Forwarded-For", "1.1.1.1")
				return r.Clone(context.WithValue(r.Context(), bookstore.IpAddrKey, "8.8.8.8"))
			},
			"8.8.8.8",
		},
		{
			"From-Header",
			func(r *http.Request) *http.Request {
				r.Header.Set("X-Forwarded-For", "1.1.1.1")
				return r
			},
			"1.1.1.1",
		},
		{
			"From-Remote-Addr",
			func(r *http.Request) *http.Request {
				r.RemoteAddr = "203.0.113.9:4312"
				return r
			},
			"203.0.113.9",
		},
		{
			"Unknown",
			func(r *http.Request) *http.Request {
				r.RemoteAddr = ""
				return r
			},
			"0.0.0.0",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			r := tc.prepare(httptest.NewRequest(http.MethodGet, "/", nil))

			// Act
			actual := middleware.IPAddress(r)

			// Assert
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestInjectIPAddress(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Real-Ip", "10.0.0.1,1.1.1.1")
	var actual any

	// Act
	middleware.InjectIPAddress()(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
		actual = rx.Context().Value(bookstore.IpAddrKey)
	})).ServeHTTP(w, r)

	// Assert
	require.Equal(t, "1.1.1.1", actual)
}
