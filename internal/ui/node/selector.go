package node

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptySelector is returned by Parse for blank input.
var ErrEmptySelector = errors.New("empty selector")

// Selector is a parsed selector list. A node matches if any compound in
// the list matches.
//
// Supported syntax is the subset widgets need to name their initial focus
// target: #id, .class, [attr], [attr=value] (value optionally quoted), any
// combination of those in one compound, and comma-separated lists.
// Combinators are not supported.
type Selector []compound

type compound struct {
	id      string
	classes []string
	attrs   []attrTest
}

type attrTest struct {
	key      string
	value    string
	hasValue bool
}

// Parse parses a selector list.
func Parse(s string) (Selector, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmptySelector
	}
	var sel Selector
	for part := range strings.SplitSeq(s, ",") {
		c, err := parseCompound(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("parse selector %q: %w", s, err)
		}
		sel = append(sel, c)
	}
	return sel, nil
}

func parseCompound(s string) (compound, error) {
	var c compound
	if s == "" {
		return c, ErrEmptySelector
	}
	for len(s) > 0 {
		switch s[0] {
		case '#':
			name, rest := readName(s[1:])
			if name == "" {
				return c, errors.New("missing id after #")
			}
			c.id, s = name, rest
		case '.':
			name, rest := readName(s[1:])
			if name == "" {
				return c, errors.New("missing class after .")
			}
			c.classes = append(c.classes, name)
			s = rest
		case '[':
			end := strings.IndexByte(s, ']')
			if end < 0 {
				return c, errors.New("unterminated attribute test")
			}
			t, err := parseAttr(s[1:end])
			if err != nil {
				return c, err
			}
			c.attrs = append(c.attrs, t)
			s = s[end+1:]
		default:
			return c, fmt.Errorf("unexpected %q", s[0])
		}
	}
	return c, nil
}

func parseAttr(s string) (attrTest, error) {
	key, value, hasValue := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if key == "" {
		return attrTest{}, errors.New("missing attribute name")
	}
	value = strings.TrimSpace(value)
	if len(value) >= 2 && (value[0] == '"' || value[0] == '\'') && value[len(value)-1] == value[0] {
		value = value[1 : len(value)-1]
	}
	return attrTest{key: key, value: value, hasValue: hasValue}, nil
}

func readName(s string) (name, rest string) {
	i := 0
	for i < len(s) {
		ch := s[i]
		if ch == '#' || ch == '.' || ch == '[' || ch == ' ' || ch == ',' {
			break
		}
		i++
	}
	return s[:i], s[i:]
}

// Match reports whether n matches the selector.
func (sel Selector) Match(n *Node) bool {
	for _, c := range sel {
		if c.match(n) {
			return true
		}
	}
	return false
}

func (c compound) match(n *Node) bool {
	if c.id != "" && n.id != c.id {
		return false
	}
	for _, cl := range c.classes {
		if !n.HasClass(cl) {
			return false
		}
	}
	for _, a := range c.attrs {
		v, ok := n.Attr(a.key)
		if !ok || (a.hasValue && v != a.value) {
			return false
		}
	}
	return true
}
