package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/bookstore"
	"github.com/xy-planning-network/bookstore/http/middleware"
	"github.com/xy-planning-network/bookstore/routes"
)

func TestInjectLocation(t *testing.T) {
	// Arrange + Act
	actual := middleware.InjectLocation(nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	res, err := routes.NewResolver(routes.Library())
	require.Nil(t, err)

	tcs := []struct {
		name   string
		target string
		found  bool
		view   routes.View
		chain  []string
	}{
		{"Guest", "/library", true, routes.GuestView, []string{"library", "guest"}},
		{"Books-Trailing-Slash", "/library/books/?page=1", true, routes.UserView, []string{"library", "books"}},
		{"Login", "/auth/login", true, routes.LoginView, []string{"auth", "login"}},
		{"Grouping-Only", "/auth", false, "", nil},
		{"Unknown", "/shelves", false, "", nil},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, tc.target, nil)
			var (
				loc   routes.Location
				ok    bool
				props bookstore.AppProps
			)

			// Act
			middleware.InjectLocation(res)(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
				loc, ok = routes.LocationFromContext(rx.Context())
				props = bookstore.AppPropsFromContext(rx.Context())
			})).ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.found, ok)
			if !tc.found {
				require.Empty(t, props)
				return
			}

			require.Equal(t, tc.view, loc.View)
			require.Equal(t, tc.chain, loc.Chain)
			require.Equal(t, loc, props[middleware.LocationPropsKey])
		})
	}
}
