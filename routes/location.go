package routes

import (
	"context"
	"sync"
)

type ctxKey string

const locationKey ctxKey = "LocationKey"

func (k ctxKey) String() string { return "routes context key: " + string(k) }

// A Location is the navigation state the rendering layer reads.
type Location struct {
	Path   string            `json:"path"`
	Name   string            `json:"name"`
	View   View              `json:"view"`
	Chain  []string          `json:"chain"`
	Views  []View            `json:"views"`
	Params map[string]string `json:"params,omitempty"`
}

// NewLocation describes m as a Location.
func NewLocation(m Match) Location {
	return Location{
		Path:   m.Path,
		Name:   m.Name(),
		View:   m.View(),
		Chain:  m.Names(),
		Views:  m.Views(),
		Params: m.Params,
	}
}

// IsZero asserts whether no navigation has happened.
func (l Location) IsZero() bool { return l.Path == "" }

// NewLocationContext stores loc in ctx, returning the resulting context.
func NewLocationContext(ctx context.Context, loc Location) context.Context {
	return context.WithValue(ctx, locationKey, loc)
}

// LocationFromContext retrieves the Location stored in ctx, if any.
func LocationFromContext(ctx context.Context) (Location, bool) {
	loc, ok := ctx.Value(locationKey).(Location)
	return loc, ok
}

// A Navigator holds the current Location of an application.
//
// Only Navigate writes the current Location, and only after resolving successfully.
// Current is safe to call from many goroutines.
type Navigator struct {
	res *Resolver

	mu      sync.RWMutex
	current Location
}

// NewNavigator constructs a *Navigator resolving paths with res.
func NewNavigator(res *Resolver) *Navigator {
	return &Navigator{res: res}
}

// Navigate resolves target and makes it the current Location.
// If target does not resolve, the current Location stays as it was.
func (n *Navigator) Navigate(target string) (Location, error) {
	m, err := n.res.Resolve(target)
	if err != nil {
		return Location{}, err
	}

	loc := NewLocation(m)

	n.mu.Lock()
	n.current = loc
	n.mu.Unlock()

	return loc, nil
}

// Current returns the current Location,
// which is the zero value until the first successful Navigate.
func (n *Navigator) Current() Location {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.current
}
