package middleware

import (
	"net/http"

	"github.com/xy-planning-network/bookstore"
)

// ForwardedProtoHeader names the scheme a proxy in front of the app received a request over.
const ForwardedProtoHeader = "X-Forwarded-Proto"

// ForceHTTPS permanently redirects requests a proxy received over plain HTTP
// to the same URL with the "https" scheme.
//
// Development and testing environments serve plain HTTP, so NoopAdapter returns.
func ForceHTTPS(env bookstore.Environment) Adapter {
	if env.IsDevelopment() || env.IsTesting() {
		return NoopAdapter
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get(ForwardedProtoHeader) == "https" {
				handler.ServeHTTP(w, r)
				return
			}

			u := *r.URL
			u.Scheme = "https"
			u.Host = r.Host

			http.Redirect(w, r, u.String(), http.StatusPermanentRedirect)
		})
	}
}
