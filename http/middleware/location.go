package middleware

import (
	"net/http"

	"github.com/xy-planning-network/bookstore"
	"github.com/xy-planning-network/bookstore/routes"
)

// LocationPropsKey is the [bookstore.AppProps] key the resolved routes.Location is stored under.
const LocationPropsKey = "location"

// InjectLocation resolves the request's path against res.
// On a match, the routes.Location is stored in the request's context,
// both on its own and in the [bookstore.AppProps] sent to the client.
// Requests that do not resolve pass through untouched.
//
// If res is nil, NoopAdapter returns and this middleware does nothing.
func InjectLocation(res *routes.Resolver) Adapter {
	if res == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m, err := res.Resolve(r.URL.Path)
			if err != nil {
				h.ServeHTTP(w, r)
				return
			}

			loc := routes.NewLocation(m)
			ctx := routes.NewLocationContext(r.Context(), loc)
			ctx = bookstore.NewAppPropsContext(ctx, bookstore.AppProps{LocationPropsKey: loc})
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}
