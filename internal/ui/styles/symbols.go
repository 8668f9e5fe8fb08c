package styles

// Symbols holds the marker glyphs widgets draw next to entries
type Symbols struct {
	Cursor    string // highlighted entry
	Selected  string // committed value
	Closed    string // trigger of a closed list
	Open      string // trigger of an open list
	Divider   string // repeated to draw a separator row
	Trigger   string // entry with its own action
	NoResults string // empty filter result
}

// Default symbols
var defaultSymbols = Symbols{
	Cursor:    "›",
	Selected:  "✓",
	Closed:    "▾",
	Open:      "▴",
	Divider:   "─",
	Trigger:   "+",
	NoResults: "∅",
}

// Nerd font symbols
var nerdfontSymbols = Symbols{
	Cursor:    "\uf054", // nf-fa-chevron_right
	Selected:  "\uf00c", // nf-fa-check
	Closed:    "\uf078", // nf-fa-chevron_down
	Open:      "\uf077", // nf-fa-chevron_up
	Divider:   "─",
	Trigger:   "\uf067", // nf-fa-plus
	NoResults: "\uf05e", // nf-fa-ban
}

// useNerdfont tracks whether nerd font symbols are enabled
var useNerdfont bool

// currentSymbols holds the active symbol set
var currentSymbols = defaultSymbols

// SetNerdfont enables or disables nerd font symbols
func SetNerdfont(enabled bool) {
	useNerdfont = enabled
	if enabled {
		currentSymbols = nerdfontSymbols
	} else {
		currentSymbols = defaultSymbols
	}
}

// NerdfontEnabled returns whether nerd font symbols are enabled
func NerdfontEnabled() bool {
	return useNerdfont
}

// CurrentSymbols returns the current symbol set
func CurrentSymbols() Symbols {
	return currentSymbols
}
