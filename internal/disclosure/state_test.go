package disclosure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixture = []Option{
	{Value: "foo", Label: "Foo"},
	{Value: "bar", Label: "Bar"},
	{Value: "lorem", Label: "Lorem"},
	{Value: "ipsum", Label: "Ipsum"},
}

func TestReduce(t *testing.T) {
	base := NewState(fixture)

	t.Run("open", func(t *testing.T) {
		s := Reduce(base, Open("bar"))
		assert.True(t, s.IsOpen)
		assert.True(t, s.IsFocused)
		assert.Equal(t, "bar", s.Highlighted)

		s = Reduce(base, Open(""))
		assert.Empty(t, s.Highlighted)
	})

	t.Run("close keeps everything else", func(t *testing.T) {
		open := Reduce(Reduce(base, Open("bar")), Filter("ba", fixture, nil))
		s := Reduce(open, Close())
		assert.False(t, s.IsOpen)
		assert.Equal(t, "ba", s.Filter)
		assert.Equal(t, "bar", s.Highlighted)
		assert.Equal(t, open.FilteredOptions, s.FilteredOptions)
	})

	t.Run("select resets filter", func(t *testing.T) {
		filtered := Reduce(Reduce(base, Open("")), Filter("lo", fixture, nil))
		s := Reduce(filtered, Select(fixture))
		assert.False(t, s.IsOpen)
		assert.Empty(t, s.Filter)
		assert.Equal(t, fixture, s.FilteredOptions)
		assert.True(t, s.IsFocused)
	})

	t.Run("focus", func(t *testing.T) {
		s := Reduce(base, Focus())
		assert.True(t, s.IsFocused)
		assert.False(t, s.IsOpen)
	})

	t.Run("blur closes and clears", func(t *testing.T) {
		open := Reduce(Reduce(base, Open("foo")), Filter("i", fixture, nil))
		s := Reduce(open, Blur(fixture))
		assert.False(t, s.IsFocused)
		assert.False(t, s.IsOpen)
		assert.Empty(t, s.Filter)
		assert.Equal(t, fixture, s.FilteredOptions)
	})

	t.Run("highlight marks keyboard interaction", func(t *testing.T) {
		s := Reduce(Reduce(base, Mouse()), Highlight("ipsum"))
		assert.Equal(t, "ipsum", s.Highlighted)
		assert.True(t, s.IsKeyboard)
	})

	t.Run("highlight reset", func(t *testing.T) {
		s := Reduce(Reduce(base, Highlight("foo")), HighlightReset())
		assert.Empty(t, s.Highlighted)
	})

	t.Run("filter clear", func(t *testing.T) {
		s := Reduce(Reduce(base, Filter("xyz", fixture, nil)), FilterClear(fixture))
		assert.Empty(t, s.Filter)
		assert.Equal(t, fixture, s.FilteredOptions)
	})

	t.Run("mouse", func(t *testing.T) {
		s := Reduce(Reduce(base, Highlight("foo")), Mouse())
		assert.False(t, s.IsKeyboard)
	})

	t.Run("unknown action passes through", func(t *testing.T) {
		s := Reduce(Reduce(base, Open("bar")), Action{Type: ActionType(99)})
		assert.Equal(t, Reduce(base, Open("bar")), s)
		assert.Equal(t, base, Reduce(base, Action{}))
	})

	t.Run("does not alias the option list", func(t *testing.T) {
		opts := []Option{{Value: "a", Label: "A"}}
		s := Reduce(base, Select(opts))
		opts[0].Label = "changed"
		assert.Equal(t, "A", s.FilteredOptions[0].Label)
	})
}

func TestReduceFilter(t *testing.T) {
	base := NewState(fixture)

	t.Run("opens and marks keyboard", func(t *testing.T) {
		s := Reduce(Reduce(base, Mouse()), Filter("o", fixture, nil))
		assert.True(t, s.IsOpen)
		assert.True(t, s.IsKeyboard)
		assert.Equal(t, "o", s.Filter)
	})

	t.Run("case insensitive contains", func(t *testing.T) {
		s := Reduce(base, Filter("OR", fixture, nil))
		assert.Equal(t, []Option{{Value: "lorem", Label: "Lorem"}}, s.FilteredOptions)
	})

	t.Run("retargets highlight that was filtered out", func(t *testing.T) {
		s := Reduce(Reduce(base, Open("foo")), Filter("um", fixture, nil))
		assert.Equal(t, "ipsum", s.Highlighted)
	})

	t.Run("keeps highlight that survived", func(t *testing.T) {
		s := Reduce(Reduce(base, Open("ipsum")), Filter("m", fixture, nil))
		require.Len(t, s.FilteredOptions, 2)
		assert.Equal(t, "ipsum", s.Highlighted)
	})

	t.Run("empty result keeps highlight", func(t *testing.T) {
		s := Reduce(Reduce(base, Open("bar")), Filter("zzz", fixture, nil))
		assert.Empty(t, s.FilteredOptions)
		assert.Equal(t, "bar", s.Highlighted)
	})

	t.Run("empty filter restores all", func(t *testing.T) {
		s := Reduce(Reduce(base, Filter("foo", fixture, nil)), Filter("", fixture, nil))
		assert.Equal(t, fixture, s.FilteredOptions)
	})
}

func TestFilterScenario(t *testing.T) {
	s := NewState(fixture)
	s = Reduce(s, Open(""))
	s = Reduce(s, Filter("lorem", fixture, nil))
	assert.Equal(t, []Option{{Value: "lorem", Label: "Lorem"}}, s.FilteredOptions)

	s = Reduce(s, FilterClear(fixture))
	assert.Equal(t, fixture, s.FilteredOptions)
}

func TestFilterMonotonic(t *testing.T) {
	labels := []Option{
		{Value: "1", Label: "alpha"},
		{Value: "2", Label: "alphabet"},
		{Value: "3", Label: "Alpine"},
		{Value: "4", Label: "beta"},
		{Value: "5", Label: "Delta Alpha"},
		{Value: "6", Label: "gamma"},
	}
	queries := []string{"", "a", "al", "alp", "alph", "alpha", "alphab"}

	for name, m := range map[string]Matcher{"substring": Substring, "fuzzy": Fuzzy} {
		t.Run(name, func(t *testing.T) {
			prev := labels
			for _, q := range queries {
				got := m(q, labels)
				for _, o := range got {
					assert.Contains(t, prev, o, "query %q returned %q not in the previous result", q, o.Label)
				}
				prev = got
			}
			assert.Equal(t, labels, m("", labels))
		})
	}
}

func TestFuzzy(t *testing.T) {
	t.Run("keeps given order", func(t *testing.T) {
		got := Fuzzy("lm", fixture)
		assert.Equal(t, []Option{{Value: "lorem", Label: "Lorem"}}, got)

		got = Fuzzy("o", fixture)
		assert.Equal(t, []Option{fixture[0], fixture[2]}, got)
	})

	t.Run("subsequence match", func(t *testing.T) {
		got := Fuzzy("ism", fixture)
		assert.Equal(t, []Option{{Value: "ipsum", Label: "Ipsum"}}, got)
	})

	t.Run("empty query returns a copy", func(t *testing.T) {
		got := Fuzzy("", fixture)
		require.Equal(t, fixture, got)
		got[0].Label = "changed"
		assert.Equal(t, "Foo", fixture[0].Label)
	})
}

func TestMatcherFor(t *testing.T) {
	assert.Equal(t, 1, len(MatcherFor("fuzzy")("ism", fixture)))
	assert.Empty(t, MatcherFor("substring")("ism", fixture))
	assert.Empty(t, MatcherFor("unknown")("ism", fixture))
}

func TestActionTypeString(t *testing.T) {
	assert.Equal(t, "highlight-reset", ActionHighlightReset.String())
	assert.Equal(t, "filter-clear", ActionFilterClear.String())
	assert.Equal(t, "action(0)", ActionType(0).String())
}

func TestIndexOf(t *testing.T) {
	assert.Equal(t, 2, IndexOf(fixture, "lorem"))
	assert.Equal(t, -1, IndexOf(fixture, "missing"))
	assert.Equal(t, -1, IndexOf(fixture, ""))
}
