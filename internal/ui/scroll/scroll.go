// Package scroll brings rows of a scrollable list into view.
package scroll

import (
	"charm.land/bubbles/v2/viewport"
)

// Viewport is a vertically scrollable window over a list of lines.
// *viewport.Model satisfies it.
type Viewport interface {
	YOffset() int
	SetYOffset(n int)
	Height() int
}

var _ Viewport = (*viewport.Model)(nil)

// IntoViewIfNeeded scrolls v so that the rows [top, top+height) are
// visible. Nothing happens when they already are. Otherwise the rows are
// aligned to the top edge when alignToTop is set, and the viewport moves
// the shortest distance when it is not. It reports whether the offset
// changed.
func IntoViewIfNeeded(v Viewport, top, height int, alignToTop bool) bool {
	if v == nil || top < 0 {
		return false
	}
	if height < 1 {
		height = 1
	}
	vh := v.Height()
	if vh <= 0 {
		return false
	}
	off := v.YOffset()
	if top >= off && top+height <= off+vh {
		return false
	}

	var next int
	switch {
	case alignToTop, top < off, height >= vh:
		next = top
	default:
		next = top + height - vh
	}
	v.SetYOffset(next)
	return v.YOffset() != off
}

// New returns a viewport of the given size showing lines.
func New(width, height int, lines []string) *viewport.Model {
	vp := viewport.New(viewport.WithWidth(width), viewport.WithHeight(height))
	vp.SetContentLines(lines)
	return &vp
}
