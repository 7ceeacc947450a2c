package routes_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/bookstore/routes"
)

func TestNavigator(t *testing.T) {
	// Arrange
	nav := routes.NewNavigator(newLibraryResolver(t))

	// Assert
	require.True(t, nav.Current().IsZero())

	// Act
	loc, err := nav.Navigate("/library/books")

	// Assert
	require.Nil(t, err)
	expected := routes.Location{
		Path:  "/library/books",
		Name:  "books",
		View:  routes.UserView,
		Chain: []string{"library", "books"},
		Views: []routes.View{routes.UserView},
	}
	require.Equal(t, expected, loc)
	require.Equal(t, expected, nav.Current())

	// Act
	loc, err = nav.Navigate("/library/missing")

	// Assert
	require.ErrorIs(t, err, routes.ErrRouteNotFound)
	require.True(t, loc.IsZero())
	require.Equal(t, expected, nav.Current())
}

func TestNavigatorConcurrentReads(t *testing.T) {
	nav := routes.NewNavigator(newLibraryResolver(t))
	paths := []string{"/auth/login", "/auth/register", "/library", "/library/books", "/library/profile"}

	var wg sync.WaitGroup
	for _, p := range paths {
		wg.Add(2)
		go func(p string) {
			defer wg.Done()
			_, err := nav.Navigate(p)
			assert.Nil(t, err)
		}(p)
		go func() {
			defer wg.Done()
			_ = nav.Current()
		}()
	}
	wg.Wait()

	require.Contains(t, paths, nav.Current().Path)
}

func TestLocationContext(t *testing.T) {
	// Arrange
	ctx := context.Background()

	// Act + Assert
	_, ok := routes.LocationFromContext(ctx)
	require.False(t, ok)

	// Arrange
	loc := routes.Location{Path: "/auth/login", Name: "login", View: routes.LoginView}

	// Act
	actual, ok := routes.LocationFromContext(routes.NewLocationContext(ctx, loc))

	// Assert
	require.True(t, ok)
	require.Equal(t, loc, actual)
}
