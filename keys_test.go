package bookstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/bookstore"
)

func TestByKeyUnique(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    []bookstore.Key
		expected []bookstore.Key
	}{
		{"Nil", nil, []bookstore.Key{}},
		{"Zero-Value", []bookstore.Key{}, []bookstore.Key{}},
		{"Many-Zero", make([]bookstore.Key, 99), []bookstore.Key{}},
		{"Sorted", []bookstore.Key{"a", "c", "e", "d"}, []bookstore.Key{"a", "c", "d", "e"}},
		{"Uniqued", []bookstore.Key{"a", "a", "a"}, []bookstore.Key{"a"}},
		{"Filtered-Zero-Value", []bookstore.Key{"", "a", "", "b", ""}, []bookstore.Key{"a", "b"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			actual := bookstore.ByKey(tc.input).UniqueSort()
			require.Equal(t, tc.expected, []bookstore.Key(actual))
		})
	}
}

func TestAppPropsContext(t *testing.T) {
	// Arrange
	ctx := context.Background()

	// Act + Assert
	require.Empty(t, bookstore.AppPropsFromContext(ctx))

	// Act
	first := bookstore.NewAppPropsContext(ctx, bookstore.AppProps{"route": "login", "view": "LoginView"})
	second := bookstore.NewAppPropsContext(first, bookstore.AppProps{"route": "register"})

	// Assert
	require.Equal(t, bookstore.AppProps{"route": "login", "view": "LoginView"}, bookstore.AppPropsFromContext(first))
	require.Equal(t, bookstore.AppProps{"route": "register", "view": "LoginView"}, bookstore.AppPropsFromContext(second))
}
