package scroll

import (
	"fmt"
	"testing"
)

type fakeViewport struct {
	offset, height int
}

func (f *fakeViewport) YOffset() int     { return f.offset }
func (f *fakeViewport) SetYOffset(n int) { f.offset = n }
func (f *fakeViewport) Height() int      { return f.height }

func TestIntoViewIfNeeded(t *testing.T) {
	tests := []struct {
		name       string
		offset     int
		top        int
		height     int
		alignToTop bool
		wantOffset int
		wantMoved  bool
	}{
		{"already visible", 5, 7, 1, false, 5, false},
		{"visible at bottom edge", 5, 9, 1, false, 5, false},
		{"above scrolls up minimally", 5, 2, 1, false, 2, true},
		{"below scrolls down minimally", 5, 12, 1, false, 8, true},
		{"below aligned to top", 5, 12, 1, true, 12, true},
		{"visible ignores align", 5, 6, 1, true, 5, false},
		{"taller than viewport aligns top", 0, 10, 8, false, 10, true},
		{"multi row partly below", 0, 3, 3, false, 1, true},
		{"zero height counts as one row", 0, 5, 0, false, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &fakeViewport{offset: tt.offset, height: 5}
			moved := IntoViewIfNeeded(v, tt.top, tt.height, tt.alignToTop)
			if moved != tt.wantMoved {
				t.Errorf("moved = %v, want %v", moved, tt.wantMoved)
			}
			if v.offset != tt.wantOffset {
				t.Errorf("offset = %d, want %d", v.offset, tt.wantOffset)
			}
		})
	}
}

func TestIntoViewIfNeeded_Degenerate(t *testing.T) {
	if IntoViewIfNeeded(nil, 3, 1, false) {
		t.Error("nil viewport should not move")
	}
	v := &fakeViewport{height: 0}
	if IntoViewIfNeeded(v, 3, 1, false) {
		t.Error("zero height viewport should not move")
	}
	v = &fakeViewport{height: 5}
	if IntoViewIfNeeded(v, -1, 1, false) {
		t.Error("negative row should not move")
	}
}

func TestIntoViewIfNeeded_Viewport(t *testing.T) {
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = fmt.Sprintf("option %d", i)
	}
	vp := New(20, 5, lines)

	if !IntoViewIfNeeded(vp, 9, 1, false) {
		t.Fatal("expected scroll to row 9")
	}
	if got := vp.YOffset(); got != 5 {
		t.Errorf("YOffset() = %d, want 5", got)
	}

	if IntoViewIfNeeded(vp, 7, 1, false) {
		t.Error("row 7 is visible, expected no scroll")
	}

	IntoViewIfNeeded(vp, 0, 1, false)
	if got := vp.YOffset(); got != 0 {
		t.Errorf("YOffset() = %d, want 0", got)
	}

	// offsets past the content are clamped by the viewport
	IntoViewIfNeeded(vp, 19, 1, true)
	if got := vp.YOffset(); got != 15 {
		t.Errorf("YOffset() = %d, want 15", got)
	}
}
