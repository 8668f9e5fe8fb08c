package styles

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/tuikit/internal/config"
)

// Theme defines the color palette for UI components
type Theme struct {
	Primary color.Color // borders, focused trigger
	Accent  color.Color // highlighted option, active tab
	Success color.Color // committed value
	Error   color.Color // error messages
	Muted   color.Color // disabled entries, idle borders
	Normal  color.Color // standard text
	Info    color.Color // hints, help line
	Warning color.Color // warnings
}

// themeFamily groups light and dark variants of a theme
type themeFamily struct {
	Light *Theme // nil if no light variant
	Dark  *Theme // nil if no dark variant
}

// Preset themes - Dark variants
var (
	// DefaultTheme is the default color scheme (dark only)
	DefaultTheme = Theme{
		Primary: lipgloss.Color("62"),  // cyan/teal
		Accent:  lipgloss.Color("212"), // pink/magenta
		Success: lipgloss.Color("82"),  // green
		Error:   lipgloss.Color("196"), // red
		Muted:   lipgloss.Color("240"), // dark gray
		Normal:  lipgloss.Color("252"), // light gray
		Info:    lipgloss.Color("244"), // gray
		Warning: lipgloss.Color("214"), // orange
	}

	// DraculaTheme is based on the Dracula color scheme (dark only)
	DraculaTheme = Theme{
		Primary: lipgloss.Color("#bd93f9"), // purple
		Accent:  lipgloss.Color("#ff79c6"), // pink
		Success: lipgloss.Color("#50fa7b"), // green
		Error:   lipgloss.Color("#ff5555"), // red
		Muted:   lipgloss.Color("#6272a4"), // comment
		Normal:  lipgloss.Color("#f8f8f2"), // foreground
		Info:    lipgloss.Color("#8be9fd"), // cyan
		Warning: lipgloss.Color("#ffb86c"), // orange
	}

	// NordTheme is based on the Nord color scheme (dark)
	NordTheme = Theme{
		Primary: lipgloss.Color("#88c0d0"), // nord8
		Accent:  lipgloss.Color("#b48ead"), // nord15
		Success: lipgloss.Color("#a3be8c"), // nord14
		Error:   lipgloss.Color("#bf616a"), // nord11
		Muted:   lipgloss.Color("#4c566a"), // nord3
		Normal:  lipgloss.Color("#eceff4"), // nord6
		Info:    lipgloss.Color("#81a1c1"), // nord9
		Warning: lipgloss.Color("#ebcb8b"), // nord13
	}

	// GruvboxTheme is based on the Gruvbox color scheme (dark)
	GruvboxTheme = Theme{
		Primary: lipgloss.Color("#83a598"),
		Accent:  lipgloss.Color("#d3869b"),
		Success: lipgloss.Color("#b8bb26"),
		Error:   lipgloss.Color("#fb4934"),
		Muted:   lipgloss.Color("#665c54"),
		Normal:  lipgloss.Color("#ebdbb2"),
		Info:    lipgloss.Color("#8ec07c"),
		Warning: lipgloss.Color("#fabd2f"),
	}

	// CatppuccinMochaTheme is based on Catppuccin Mocha (dark)
	CatppuccinMochaTheme = Theme{
		Primary: lipgloss.Color("#89b4fa"),
		Accent:  lipgloss.Color("#f5c2e7"),
		Success: lipgloss.Color("#a6e3a1"),
		Error:   lipgloss.Color("#f38ba8"),
		Muted:   lipgloss.Color("#6c7086"),
		Normal:  lipgloss.Color("#cdd6f4"),
		Info:    lipgloss.Color("#94e2d5"),
		Warning: lipgloss.Color("#fab387"),
	}

	// NoneTheme renders without any colors (uses terminal defaults)
	// Formatting (bold/italic/underline) is preserved
	NoneTheme = Theme{
		Primary: lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
		Normal:  lipgloss.NoColor{},
		Info:    lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
	}
)

// Preset themes - Light variants
var (
	NordLightTheme = Theme{
		Primary: lipgloss.Color("#5e81ac"),
		Accent:  lipgloss.Color("#b48ead"),
		Success: lipgloss.Color("#a3be8c"),
		Error:   lipgloss.Color("#bf616a"),
		Muted:   lipgloss.Color("#9a9a9a"),
		Normal:  lipgloss.Color("#2e3440"),
		Info:    lipgloss.Color("#81a1c1"),
		Warning: lipgloss.Color("#d08770"),
	}

	GruvboxLightTheme = Theme{
		Primary: lipgloss.Color("#076678"),
		Accent:  lipgloss.Color("#8f3f71"),
		Success: lipgloss.Color("#79740e"),
		Error:   lipgloss.Color("#9d0006"),
		Muted:   lipgloss.Color("#928374"),
		Normal:  lipgloss.Color("#3c3836"),
		Info:    lipgloss.Color("#427b58"),
		Warning: lipgloss.Color("#b57614"),
	}

	CatppuccinLatteTheme = Theme{
		Primary: lipgloss.Color("#1e66f5"),
		Accent:  lipgloss.Color("#ea76cb"),
		Success: lipgloss.Color("#40a02b"),
		Error:   lipgloss.Color("#d20f39"),
		Muted:   lipgloss.Color("#9ca0b0"),
		Normal:  lipgloss.Color("#4c4f69"),
		Info:    lipgloss.Color("#179299"),
		Warning: lipgloss.Color("#fe640b"),
	}
)

// themeFamilies maps theme family names to their light/dark variants
var themeFamilies = map[string]themeFamily{
	"none":       {Light: &NoneTheme, Dark: &NoneTheme},
	"default":    {Dark: &DefaultTheme},
	"dracula":    {Dark: &DraculaTheme},
	"nord":       {Light: &NordLightTheme, Dark: &NordTheme},
	"gruvbox":    {Light: &GruvboxLightTheme, Dark: &GruvboxTheme},
	"catppuccin": {Light: &CatppuccinLatteTheme, Dark: &CatppuccinMochaTheme},
}

// hasDarkBackground asks the terminal for its background color. Tests
// replace it.
var hasDarkBackground = func() bool {
	return lipgloss.HasDarkBackground(os.Stdin, os.Stderr)
}

// currentTheme holds the active theme
var currentTheme = DefaultTheme

// Current returns the current theme
func Current() Theme {
	return currentTheme
}

// Init initializes the theme from config
// Call this after loading config and before displaying any UI
func Init(cfg config.ThemeConfig) {
	theme := selectTheme(cfg)

	override := func(dst *color.Color, value string) {
		if value != "" {
			*dst = lipgloss.Color(value)
		}
	}
	override(&theme.Primary, cfg.Primary)
	override(&theme.Accent, cfg.Accent)
	override(&theme.Success, cfg.Success)
	override(&theme.Error, cfg.Error)
	override(&theme.Muted, cfg.Muted)
	override(&theme.Normal, cfg.Normal)
	override(&theme.Info, cfg.Info)
	override(&theme.Warning, cfg.Warning)

	currentTheme = theme
	applyTheme(theme)
	SetNerdfont(cfg.Nerdfont)
}

// selectTheme picks the appropriate theme based on config and terminal background
func selectTheme(cfg config.ThemeConfig) Theme {
	mode := cfg.Mode
	if mode == "" {
		mode = "auto"
	}

	family, ok := themeFamilies[cfg.Name]
	if !ok {
		if cfg.Name != "" {
			fmt.Fprintf(os.Stderr, "Warning: unknown theme %q, using default (available: %s)\n",
				cfg.Name, strings.Join(config.ValidThemeNames, ", "))
		}
		family = themeFamilies["default"]
	}

	var theme *Theme
	switch mode {
	case "light":
		theme = family.Light
	case "dark":
		theme = family.Dark
	default:
		if mode != "auto" {
			fmt.Fprintf(os.Stderr, "Warning: unknown theme mode %q, using auto (available: %s)\n",
				mode, strings.Join(config.ValidThemeModes, ", "))
		}
		if hasDarkBackground() {
			theme = family.Dark
		} else {
			theme = family.Light
		}
	}

	// Fall back if the requested variant doesn't exist
	if theme == nil {
		switch {
		case family.Dark != nil:
			theme = family.Dark
		case family.Light != nil:
			theme = family.Light
		default:
			return DefaultTheme
		}
	}
	return *theme
}

// applyTheme updates all global style variables to use the given theme
func applyTheme(t Theme) {
	Primary = t.Primary
	Accent = t.Accent
	Success = t.Success
	Error = t.Error
	Muted = t.Muted
	Normal = t.Normal
	Info = t.Info
	Warning = t.Warning

	PrimaryStyle = lipgloss.NewStyle().Foreground(t.Primary)
	AccentStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)
	NormalStyle = lipgloss.NewStyle().Foreground(t.Normal)
	InfoStyle = lipgloss.NewStyle().Foreground(t.Info).Italic(true)
	WarningStyle = lipgloss.NewStyle().Foreground(t.Warning)

	TriggerStyle = TriggerStyle.BorderForeground(t.Muted)
	TriggerFocusedStyle = TriggerStyle.BorderForeground(t.Primary)
	MenuStyle = MenuStyle.BorderForeground(t.Primary)
	HighlightStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	SelectedStyle = lipgloss.NewStyle().Foreground(t.Success)
	DisabledStyle = lipgloss.NewStyle().Foreground(t.Muted).Strikethrough(true)
	TabStyle = TabStyle.Foreground(t.Normal)
	TabActiveStyle = TabActiveStyle.Foreground(t.Accent)
	PaneStyle = PaneStyle.BorderForeground(t.Muted)
}

// GetPreset returns a theme preset by name, or nil if not found
// For theme families with variants, returns the dark variant by default
func GetPreset(name string) *Theme {
	if family, ok := themeFamilies[name]; ok {
		if family.Dark != nil {
			return family.Dark
		}
		return family.Light
	}
	return nil
}

// PresetNames returns a list of available preset names (theme families)
func PresetNames() []string {
	return config.ValidThemeNames
}
