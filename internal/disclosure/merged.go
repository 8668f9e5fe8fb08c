package disclosure

// Kind classifies an entry of a MergedOptionSet.
type Kind int

const (
	// KindOption is a static option that went through the filter.
	KindOption Kind = iota
	// KindItem is a dynamically declared entry with optional custom
	// activation.
	KindItem
	// KindDivider is a non-interactive separator.
	KindDivider
)

// Entry is one row of a merged set.
type Entry struct {
	Kind     Kind
	Option   Option
	Disabled bool
	// OnTrigger replaces the generic selection callback when the entry is
	// activated. Only meaningful for KindItem.
	OnTrigger func()
}

// Item declares a dynamic entry.
func Item(value, label string, onTrigger func()) Entry {
	return Entry{Kind: KindItem, Option: Option{Value: value, Label: label}, OnTrigger: onTrigger}
}

// Divider declares a separator.
func Divider() Entry {
	return Entry{Kind: KindDivider}
}

// Selectable reports whether the entry can be highlighted and activated.
func (e Entry) Selectable() bool {
	return e.Kind != KindDivider && !e.Disabled && e.Option.Value != ""
}

// HasTrigger reports whether activation runs the entry's own handler.
func (e Entry) HasTrigger() bool {
	return e.Kind == KindItem && e.OnTrigger != nil
}

// MergedOptionSet is the traversal order of a disclosure list: filtered
// static options first, then dynamic entries in declaration order.
type MergedOptionSet []Entry

// Merge builds the merged set. Dynamic entries are never filtered.
func Merge(filtered []Option, dynamic []Entry) MergedOptionSet {
	out := make(MergedOptionSet, 0, len(filtered)+len(dynamic))
	for _, o := range filtered {
		out = append(out, Entry{Kind: KindOption, Option: o})
	}
	return append(out, dynamic...)
}

// Find resolves value to an entry. Dynamic entries win over static options
// with the same value. Dividers never match.
func (m MergedOptionSet) Find(value string) (Entry, bool) {
	if value == "" {
		return Entry{}, false
	}
	for _, e := range m {
		if e.Kind == KindItem && e.Option.Value == value {
			return e, true
		}
	}
	for _, e := range m {
		if e.Kind == KindOption && e.Option.Value == value {
			return e, true
		}
	}
	return Entry{}, false
}

// Contains reports whether value names a selectable entry.
func (m MergedOptionSet) Contains(value string) bool {
	e, ok := m.Find(value)
	return ok && e.Selectable()
}

// Next returns the value of the selectable entry dir steps from current,
// wrapping at either end and skipping dividers and disabled entries. With
// no current highlight either direction lands on the first selectable
// entry. It returns false when nothing is selectable.
func (m MergedOptionSet) Next(current string, dir int) (string, bool) {
	var selectable []int
	pos := -1
	for i, e := range m {
		if !e.Selectable() {
			continue
		}
		if current != "" && e.Option.Value == current && pos < 0 {
			pos = len(selectable)
		}
		selectable = append(selectable, i)
	}
	n := len(selectable)
	if n == 0 {
		return "", false
	}
	if dir == 0 {
		dir = 1
	}
	if pos < 0 {
		return m[selectable[0]].Option.Value, true
	}
	next := ((pos+dir)%n + n) % n
	return m[selectable[next]].Option.Value, true
}
