package node

// FocusListener is notified after the active element changes. Either side
// may be nil.
type FocusListener func(prev, next *Node)

// Document owns a root node and tracks which node holds keyboard focus.
type Document struct {
	root   *Node
	active *Node

	listeners []listener
	nextID    int
}

type listener struct {
	id int
	fn FocusListener
}

// NewDocument creates a document with an empty root.
func NewDocument() *Document {
	d := &Document{}
	d.root = New("root")
	d.root.doc = d
	return d
}

// Root returns the document root. Nodes appended below it are attached.
func (d *Document) Root() *Node { return d.root }

// Active returns the focused node, or nil.
func (d *Document) Active() *Node { return d.active }

// Subscribe registers fn for focus changes and returns a function that
// removes it.
func (d *Document) Subscribe(fn FocusListener) (unsubscribe func()) {
	d.nextID++
	id := d.nextID
	d.listeners = append(d.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range d.listeners {
			if l.id == id {
				d.listeners = append(d.listeners[:i:i], d.listeners[i+1:]...)
				return
			}
		}
	}
}

// Blur clears the active element.
func (d *Document) Blur() { d.setActive(nil) }

func (d *Document) setActive(n *Node) {
	if d.active == n {
		return
	}
	prev := d.active
	d.active = n
	// listeners may refocus; iterate over a snapshot
	for _, l := range append([]listener(nil), d.listeners...) {
		l.fn(prev, n)
	}
}

// TabStops returns the nodes reachable with sequential Tab navigation:
// tab index >= 0, enabled and rendered, in document order.
func (d *Document) TabStops() []*Node {
	var out []*Node
	d.root.walk(func(n *Node) {
		if n != d.root && n.tabIndex >= 0 && !n.disabled && n.Rendered() {
			out = append(out, n)
		}
	})
	return out
}

// FocusNextStop moves focus to the tab stop after the active element in
// document order, wrapping at the end. It returns the new active node.
func (d *Document) FocusNextStop() *Node {
	return d.moveStop(1)
}

// FocusPrevStop moves focus to the tab stop before the active element,
// wrapping at the start.
func (d *Document) FocusPrevStop() *Node {
	return d.moveStop(-1)
}

func (d *Document) moveStop(dir int) *Node {
	var order []*Node
	d.root.walk(func(n *Node) {
		if n != d.root {
			order = append(order, n)
		}
	})
	if len(order) == 0 {
		return nil
	}

	isStop := func(n *Node) bool {
		return n.tabIndex >= 0 && !n.disabled && n.Rendered()
	}

	start := -1
	for i, n := range order {
		if n == d.active {
			start = i
			break
		}
	}
	if start < 0 && dir < 0 {
		start = len(order)
	}

	for step := 1; step <= len(order); step++ {
		i := ((start+dir*step)%len(order) + len(order)) % len(order)
		if isStop(order[i]) {
			order[i].Focus()
			return order[i]
		}
	}
	return nil
}
