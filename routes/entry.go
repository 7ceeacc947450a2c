package routes

import "strings"

// A View names the UI component rendered for an Entry, e.g., "LoginView".
// The UI layer owns the component; a View is only a reference to it.
type View string

func (v View) String() string { return string(v) }

// An Entry is one navigable path in a Table.
type Entry struct {
	// Path is absolute for top-level entries and relative to the parent otherwise.
	// An empty Path makes the Entry its parent's index.
	Path string

	// Name identifies the Entry among its siblings.
	Name string

	// View is rendered when the Entry is active.
	// Entries without one only group their Children.
	View View

	// Children are nested entries in declaration order.
	Children []Entry
}

// Navigable asserts whether resolving a path can stop at the Entry.
func (e Entry) Navigable() bool { return e.View != "" }

// clone deep copies e so callers never share slices with a Table.
func (e Entry) clone() Entry {
	c := e
	if e.Children != nil {
		c.Children = make([]Entry, len(e.Children))
		for i, child := range e.Children {
			c.Children[i] = child.clone()
		}
	}

	return c
}

// record copies e without its Children.
func (e Entry) record() Entry {
	e.Children = nil
	return e
}

// joinPath appends child to parent the way nested entries compose.
func joinPath(parent, child string) string {
	if child == "" {
		return parent
	}

	return strings.TrimRight(parent, "/") + "/" + child
}
