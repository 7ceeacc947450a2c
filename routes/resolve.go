package routes

import (
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/gorilla/mux"
)

// A Match is the result of resolving a path.
type Match struct {
	// Path is the normalized path that was resolved.
	Path string

	// Chain runs from the top-level Entry down to the active one.
	// Entries in Chain carry no Children.
	Chain []Entry

	// Params holds values captured by ":name" segments.
	Params map[string]string
}

// Entry returns the active Entry.
func (m Match) Entry() Entry { return m.Chain[len(m.Chain)-1] }

// Name returns the name of the active Entry.
func (m Match) Name() string { return m.Entry().Name }

// View returns the View of the active Entry.
func (m Match) View() View { return m.Entry().View }

// Parent returns the Entry enclosing the active one, if there is one.
func (m Match) Parent() (Entry, bool) {
	if len(m.Chain) < 2 {
		return Entry{}, false
	}

	return m.Chain[len(m.Chain)-2], true
}

// Names lists the names along the chain.
func (m Match) Names() []string {
	names := make([]string, len(m.Chain))
	for i, e := range m.Chain {
		names[i] = e.Name
	}

	return names
}

// Views lists the component tree to render, outermost first.
// Grouping entries without a View are skipped.
func (m Match) Views() []View {
	views := make([]View, 0, len(m.Chain))
	for _, e := range m.Chain {
		if e.View != "" {
			views = append(views, e.View)
		}
	}

	return views
}

// A Resolver matches paths against a Table.
type Resolver struct {
	leaves map[*mux.Route]Leaf
	r      *mux.Router
	table  *Table
}

// NewResolver constructs a *Resolver for t.
//
// Each Leaf of t becomes a [*mux.Route] named with its [Leaf.QualifiedName],
// registered in [*Table.Flatten] order.
// Segments written ":name" become mux variables.
// Static segments are registered in lower case, so matching ignores case.
func NewResolver(t *Table) (*Resolver, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil table", ErrInvalidPath)
	}

	res := &Resolver{
		leaves: make(map[*mux.Route]Leaf),
		r:      mux.NewRouter(),
		table:  t,
	}

	for _, leaf := range t.Flatten() {
		route := res.r.NewRoute().Path(muxTemplate(foldStatic(leaf.Path))).Name(leaf.QualifiedName())
		if err := route.GetError(); err != nil {
			return nil, fmt.Errorf("%w: %s: %s", ErrInvalidPath, leaf.Path, err)
		}

		res.leaves[route] = leaf
	}

	return res, nil
}

// Table returns the *Table the Resolver matches against.
func (res *Resolver) Table() *Table { return res.table }

// Resolve matches target against the Table.
//
// Only the path of target matters: any query or fragment is dropped,
// the path is cleaned, and a trailing slash is ignored.
// Static segments match regardless of case; ":name" captures keep the case they were given in.
// If no Entry matches, Resolve returns an error wrapping ErrRouteNotFound.
func (res *Resolver) Resolve(target string) (Match, error) {
	p := normalize(target)

	req := &http.Request{Method: http.MethodGet, URL: &url.URL{Path: strings.ToLower(p)}, Header: make(http.Header)}
	var rm mux.RouteMatch
	if !res.r.Match(req, &rm) || rm.Route == nil {
		return Match{}, fmt.Errorf("%w: %s", ErrRouteNotFound, p)
	}

	leaf, ok := res.leaves[rm.Route]
	if !ok {
		return Match{}, fmt.Errorf("%w: %s", ErrRouteNotFound, p)
	}

	return Match{Path: p, Chain: append([]Entry(nil), leaf.Chain...), Params: capture(leaf.Path, p)}, nil
}

// Path builds the full path of the route with the qualified name,
// e.g., "library.books", filling in any ":name" segments from params.
func (res *Resolver) Path(name string, params map[string]string) (string, error) {
	route := res.r.Get(name)
	if route == nil {
		return "", fmt.Errorf("%w: no route named %q", ErrRouteNotFound, name)
	}

	segs := strings.Split(res.leaves[route].Path, "/")
	for i, seg := range segs {
		if !isParam(seg) {
			continue
		}

		val, ok := params[seg[1:]]
		if !ok || val == "" || strings.Contains(val, "/") {
			return "", fmt.Errorf("%w: %s needs a single segment for %q", ErrInvalidParams, name, seg)
		}

		segs[i] = val
	}

	return strings.Join(segs, "/"), nil
}

// normalize reduces target to a clean, absolute path without a trailing slash.
// Anything from the first "?" or "#" on is dropped;
// the remainder is never read as a URL, so a leading "//" names no host.
func normalize(target string) string {
	p, _, _ := strings.Cut(target, "#")
	p, _, _ = strings.Cut(p, "?")
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	return path.Clean(p)
}

// capture reads the values of the ":name" segments of pattern out of p.
// p must be a cleaned path that pattern matched.
func capture(pattern, p string) map[string]string {
	var params map[string]string
	have := strings.Split(p, "/")
	for i, seg := range strings.Split(pattern, "/") {
		if !isParam(seg) || i >= len(have) {
			continue
		}

		if params == nil {
			params = make(map[string]string)
		}
		params[seg[1:]] = have[i]
	}

	return params
}

// foldStatic lower cases every segment of p but ":name" ones.
func foldStatic(p string) string {
	segs := strings.Split(p, "/")
	for i, seg := range segs {
		if !isParam(seg) {
			segs[i] = strings.ToLower(seg)
		}
	}

	return strings.Join(segs, "/")
}

func isParam(seg string) bool { return strings.HasPrefix(seg, ":") && len(seg) > 1 }

// muxTemplate rewrites ":name" segments into mux's "{name}" form.
func muxTemplate(p string) string {
	segs := strings.Split(p, "/")
	for i, seg := range segs {
		if isParam(seg) {
			segs[i] = "{" + seg[1:] + "}"
		}
	}

	return strings.Join(segs, "/")
}
