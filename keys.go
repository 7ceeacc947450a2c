package bookstore

import (
	"context"
	"sort"
)

type Key string

const (
	// appPropsKey stashes additional props to be included in HTTP responses.
	appPropsKey Key = "AppPropsKey"

	// IpAddrKey stashes the IP address of an HTTP request being handled by the app.
	IpAddrKey Key = "IpAddrKey"

	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"
)

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "bookstore context key: " + string(k)
}

// A ByKey sorts and dedupes a list of Keys.
type ByKey []Key

func (k ByKey) Len() int           { return len(k) }
func (k ByKey) Swap(i, j int)      { k[i], k[j] = k[j], k[i] }
func (k ByKey) Less(i, j int) bool { return k[i] < k[j] }

// UniqueSort sorts the Keys, dropping duplicates and zero-value Keys.
func (k ByKey) UniqueSort() ByKey {
	out := make(ByKey, 0, len(k))
	seen := make(map[Key]bool)
	for _, key := range k {
		if key == "" || seen[key] {
			continue
		}

		seen[key] = true
		out = append(out, key)
	}

	sort.Sort(out)
	return out
}

// An AppProps passes data from the server to the client as a set of props needed for general application state.
// The data is passed around in a context.Context and rendered as JSON.
// The data is expected to be marshaled into Vue/JS props.
//
// NB: Data not representable by JSON will create errors; review [encoding/json.Marshaler].
type AppProps map[string]any

// NewAppPropsContext adds props to ctx, returning the resulting context.
// If props have already been added to ctx, its key-value pairs are copied alongside the new ones.
// If any keys collide, those in props overwrite previous values.
func NewAppPropsContext(ctx context.Context, props AppProps) context.Context {
	merged := make(AppProps)
	for k, v := range AppPropsFromContext(ctx) {
		merged[k] = v
	}

	for k, v := range props {
		merged[k] = v
	}

	return context.WithValue(ctx, appPropsKey, merged)
}

// AppPropsFromContext retrieves an AppProps in ctx.
// If not already set, it initializes a new AppProps.
func AppPropsFromContext(ctx context.Context) AppProps {
	props, ok := ctx.Value(appPropsKey).(AppProps)
	if !ok {
		props = make(AppProps)
	}

	return props
}
