package routes

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// qualifiedSep joins the names along a chain into a name unique across a Table.
const qualifiedSep = "."

// A Table is the ordered set of top-level entries.
type Table struct {
	entries []Entry
}

// NewTable constructs a *Table from entries.
// NewTable copies entries, so mutating them afterwards does not change the Table.
//
// NewTable returns every problem [*Table.Validate] finds.
func NewTable(entries ...Entry) (*Table, error) {
	t := &Table{entries: make([]Entry, len(entries))}
	for i, e := range entries {
		t.entries[i] = e.clone()
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// Entries returns a copy of the top-level entries.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.clone()
	}

	return out
}

// A WalkFunc visits an Entry at its full path, depth being 0 at the top level.
// The Entry's Children are not populated.
type WalkFunc func(path string, depth int, e Entry) error

// Walk calls fn for every Entry, parents before children, in declaration order.
// Walk stops at and returns the first error fn returns.
func (t *Table) Walk(fn WalkFunc) error {
	return walk(t.entries, "", 0, fn)
}

func walk(entries []Entry, parent string, depth int, fn WalkFunc) error {
	for _, e := range entries {
		full := e.Path
		if depth > 0 {
			full = joinPath(parent, e.Path)
		}

		if err := fn(full, depth, e.record()); err != nil {
			return err
		}

		if err := walk(e.Children, full, depth+1, fn); err != nil {
			return err
		}
	}

	return nil
}

// Validate reports each broken invariant in the Table:
//
//   - a missing name: ErrMissingName
//   - a name repeated among siblings: ErrDuplicateName
//   - a path repeated among siblings: ErrDuplicatePath
//   - a top-level path not starting with "/" or a nested one that does: ErrInvalidPath
//
// Use [errors.Is] to check for a specific problem
// and [go.uber.org/multierr.Errors] to list them all.
func (t *Table) Validate() error {
	return validate(t.entries, nil)
}

func validate(entries []Entry, scope []string) error {
	var (
		err   error
		names = make(map[string]bool)
		paths = make(map[string]bool)
		where = "top level"
	)

	if len(scope) > 0 {
		where = strings.Join(scope, qualifiedSep)
	}

	for _, e := range entries {
		switch {
		case e.Name == "":
			err = multierr.Append(err, fmt.Errorf("%w: path %q in %s", ErrMissingName, e.Path, where))
		case names[e.Name]:
			err = multierr.Append(err, fmt.Errorf("%w: %q in %s", ErrDuplicateName, e.Name, where))
		}
		names[e.Name] = true

		isAbs := strings.HasPrefix(e.Path, "/")
		switch {
		case len(scope) == 0 && !isAbs:
			err = multierr.Append(err, fmt.Errorf("%w: top-level path %q must start with /", ErrInvalidPath, e.Path))
		case len(scope) > 0 && isAbs:
			err = multierr.Append(err, fmt.Errorf("%w: nested path %q in %s must be relative", ErrInvalidPath, e.Path, where))
		}

		if paths[e.Path] {
			err = multierr.Append(err, fmt.Errorf("%w: %q in %s", ErrDuplicatePath, e.Path, where))
		}
		paths[e.Path] = true

		if len(e.Children) > 0 {
			inner := append(append([]string(nil), scope...), e.Name)
			err = multierr.Append(err, validate(e.Children, inner))
		}
	}

	return err
}

// A Leaf is a navigable Entry together with the chain leading to it.
type Leaf struct {
	// Path is the full path, parents' paths included.
	Path string

	// Chain runs from the top-level Entry down to the navigable one.
	// Entries in Chain carry no Children.
	Chain []Entry
}

// Entry returns the navigable Entry at the end of the chain.
func (l Leaf) Entry() Entry { return l.Chain[len(l.Chain)-1] }

// Name returns the name of the navigable Entry.
func (l Leaf) Name() string { return l.Entry().Name }

// View returns the View of the navigable Entry.
func (l Leaf) View() View { return l.Entry().View }

// Pattern returns Path in gorilla/mux template form, ":id" becoming "{id}".
func (l Leaf) Pattern() string { return muxTemplate(l.Path) }

// QualifiedName joins the names along the chain, e.g., "library.books".
func (l Leaf) QualifiedName() string {
	names := make([]string, len(l.Chain))
	for i, e := range l.Chain {
		names[i] = e.Name
	}

	return strings.Join(names, qualifiedSep)
}

// Flatten lists every navigable Entry as a Leaf, in the order a Resolver tries them:
// siblings in declaration order, children ahead of their parent's own view.
func (t *Table) Flatten() []Leaf {
	return flatten(t.entries, "", nil)
}

func flatten(entries []Entry, parent string, chain []Entry) []Leaf {
	var leaves []Leaf
	for _, e := range entries {
		full := e.Path
		if len(chain) > 0 {
			full = joinPath(parent, e.Path)
		}

		inner := append(append([]Entry(nil), chain...), e.record())
		leaves = append(leaves, flatten(e.Children, full, inner)...)
		if e.Navigable() {
			leaves = append(leaves, Leaf{Path: full, Chain: inner})
		}
	}

	return leaves
}
