// Package node is the retained widget tree the interaction engine runs on.
//
// Widgets build a small tree of Nodes, one per focusable thing they render
// (tabs, menu items, options, the container itself). The tree carries the
// facts the focus engine needs and nothing else: identity (id, classes,
// attributes), the navigation marker, disabled and hidden flags, and
// whether the node is attached to a live Document. Rendering stays in the
// widgets.
//
// *Node implements focus.Element and focus.Container.
package node

import (
	"slices"
	"strings"

	"github.com/raphi011/tuikit/internal/focus"
)

// NavTarget is the tab index that marks a node as a navigation candidate
// for the container above it. Such nodes are skipped by sequential Tab
// navigation and reached with arrow keys instead.
const NavTarget = -2

// Node is one element of the widget tree.
type Node struct {
	id       string
	classes  []string
	attrs    map[string]string
	tabIndex int
	disabled bool
	hidden   bool

	parent   *Node
	children []*Node

	// doc is only set on a document root.
	doc *Document

	// Value is an opaque payload the owning widget can use to map the node
	// back to its model (option value, tab index, ...).
	Value string
}

// New creates a detached node with the given id and classes. The tab index
// defaults to -1 (focusable by the engine, not a Tab stop).
func New(id string, classes ...string) *Node {
	return &Node{id: id, classes: classes, tabIndex: -1}
}

// Nav creates a detached navigation candidate.
func Nav(id string, classes ...string) *Node {
	n := New(id, classes...)
	n.tabIndex = NavTarget
	return n
}

// ID returns the node id.
func (n *Node) ID() string { return n.id }

// WithAttr sets an attribute and returns the node.
func (n *Node) WithAttr(key, value string) *Node {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[key] = value
	return n
}

// WithValue sets the payload and returns the node.
func (n *Node) WithValue(v string) *Node {
	n.Value = v
	return n
}

// Attr returns the value of an attribute and whether it is set.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

// HasClass reports whether the node carries class.
func (n *Node) HasClass(class string) bool {
	return slices.Contains(n.classes, class)
}

// AddClass adds class if not present.
func (n *Node) AddClass(class string) {
	if !n.HasClass(class) {
		n.classes = append(n.classes, class)
	}
}

// RemoveClass removes class.
func (n *Node) RemoveClass(class string) {
	n.classes = slices.DeleteFunc(n.classes, func(c string) bool { return c == class })
}

// ToggleClass adds class when on is true and removes it otherwise.
func (n *Node) ToggleClass(class string, on bool) {
	if on {
		n.AddClass(class)
	} else {
		n.RemoveClass(class)
	}
}

// SetDisabled sets the disabled flag.
func (n *Node) SetDisabled(v bool) { n.disabled = v }

// SetHidden sets the hidden flag. Hidden nodes and their descendants have
// no rendered box.
func (n *Node) SetHidden(v bool) { n.hidden = v }

func (n *Node) TabIndex() int       { return n.tabIndex }
func (n *Node) SetTabIndex(i int)   { n.tabIndex = i }
func (n *Node) Parent() *Node       { return n.parent }
func (n *Node) Children() []*Node   { return n.children }
func (n *Node) IsNavTarget() bool   { return n.tabIndex == NavTarget }
func (n *Node) Disabled() bool      { return n.disabled }
func (n *Node) Document() *Document { return n.root().doc }

// Append attaches children to n in order. A child that already has a
// parent is moved.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.parent != nil {
			c.parent.Remove(c)
		}
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

// Remove detaches child from n. If the removed subtree held document focus
// the document loses its active element.
func (n *Node) Remove(child *Node) {
	i := slices.Index(n.children, child)
	if i < 0 {
		return
	}
	doc := n.Document()
	n.children = slices.Delete(n.children, i, i+1)
	child.parent = nil
	if doc != nil && doc.active != nil && child.containsOrSelf(doc.active) {
		doc.setActive(nil)
	}
}

// ReplaceChildren removes all children and appends the given ones.
func (n *Node) ReplaceChildren(children ...*Node) {
	for _, c := range slices.Clone(n.children) {
		n.Remove(c)
	}
	n.Append(children...)
}

// Rendered reports whether the node and all its ancestors are visible.
func (n *Node) Rendered() bool {
	for p := n; p != nil; p = p.parent {
		if p.hidden {
			return false
		}
	}
	return true
}

// Attached reports whether the node is reachable from a document root.
func (n *Node) Attached() bool {
	return n.root().doc != nil
}

// Focus makes n the active element of its document. Detached nodes cannot
// take focus.
func (n *Node) Focus() {
	doc := n.Document()
	if doc == nil {
		return
	}
	doc.setActive(n)
}

// Blur drops document focus if n holds it.
func (n *Node) Blur() {
	if doc := n.Document(); doc != nil && doc.active == n {
		doc.setActive(nil)
	}
}

// IsActive reports whether n is the active element of its document.
func (n *Node) IsActive() bool {
	doc := n.Document()
	return doc != nil && doc.active == n
}

// Navigable returns descendants carrying the navigation marker in document
// order. Nested candidates are included.
func (n *Node) Navigable() []focus.Element {
	var out []focus.Element
	n.walk(func(d *Node) {
		if d != n && d.IsNavTarget() {
			out = append(out, d)
		}
	})
	return out
}

// Query returns the first descendant matching selector. Malformed
// selectors match nothing.
func (n *Node) Query(selector string) focus.Element {
	if d := n.QueryNode(selector); d != nil {
		return d
	}
	return nil
}

// QueryNode is Query returning the concrete node.
func (n *Node) QueryNode(selector string) *Node {
	sel, err := Parse(selector)
	if err != nil {
		return nil
	}
	var found *Node
	n.walk(func(d *Node) {
		if found == nil && d != n && sel.Match(d) {
			found = d
		}
	})
	return found
}

// QueryAll returns every descendant matching selector in document order.
func (n *Node) QueryAll(selector string) []*Node {
	sel, err := Parse(selector)
	if err != nil {
		return nil
	}
	var out []*Node
	n.walk(func(d *Node) {
		if d != n && sel.Match(d) {
			out = append(out, d)
		}
	})
	return out
}

// Contains reports whether el is a strict descendant of n.
func (n *Node) Contains(el focus.Element) bool {
	d, ok := el.(*Node)
	if !ok || d == nil || d == n {
		return false
	}
	return n.containsOrSelf(d)
}

// String renders the node as a selector, for logs.
func (n *Node) String() string {
	var b strings.Builder
	if n.id != "" {
		b.WriteString("#")
		b.WriteString(n.id)
	}
	for _, c := range n.classes {
		b.WriteString(".")
		b.WriteString(c)
	}
	if b.Len() == 0 {
		return "node"
	}
	return b.String()
}

func (n *Node) containsOrSelf(d *Node) bool {
	for p := d; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

func (n *Node) root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// walk visits n and its descendants in pre-order.
func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.walk(fn)
	}
}

// Element converts n to a focus.Element, mapping a nil node to a nil
// interface.
func Element(n *Node) focus.Element {
	if n == nil {
		return nil
	}
	return n
}

// FromElement converts a focus.Element back to a node, or nil.
func FromElement(el focus.Element) *Node {
	n, _ := el.(*Node)
	return n
}
