package disclosure

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Matcher returns the options that satisfy query, in their given order.
// An empty query must return every option. A query that extends a previous
// one must never return an option the previous one excluded.
type Matcher func(query string, options []Option) []Option

// Substring keeps options whose label contains query, ignoring case.
func Substring(query string, options []Option) []Option {
	q := strings.ToLower(query)
	out := make([]Option, 0, len(options))
	for _, o := range options {
		if strings.Contains(strings.ToLower(o.Label), q) {
			out = append(out, o)
		}
	}
	return out
}

// labelSource implements fuzzy.Source over option labels.
type labelSource []Option

func (s labelSource) String(i int) string { return s[i].Label }
func (s labelSource) Len() int            { return len(s) }

// Fuzzy keeps options whose label contains the characters of query in
// order. Results keep the given option order rather than score order so
// keyboard traversal stays stable while typing.
func Fuzzy(query string, options []Option) []Option {
	if query == "" {
		out := make([]Option, len(options))
		copy(out, options)
		return out
	}
	matches := fuzzy.FindFromNoSort(query, labelSource(options))
	out := make([]Option, 0, len(matches))
	for _, m := range matches {
		out = append(out, options[m.Index])
	}
	return out
}

// MatcherFor returns the matcher registered under name ("substring" or
// "fuzzy"). Unknown names fall back to Substring.
func MatcherFor(name string) Matcher {
	if name == "fuzzy" {
		return Fuzzy
	}
	return Substring
}
