package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "TUIKIT_CONFIG"

// FocusConfig holds focus traversal settings shared by every widget.
type FocusConfig struct {
	Wrap bool `toml:"wrap"` // wrap around at either end of a list
}

// SelectConfig holds select box settings
type SelectConfig struct {
	FilterMode string `toml:"filter_mode" validate:"oneof=substring fuzzy"`
	MaxVisible int    `toml:"max_visible" validate:"min=1,max=50"`
	Searchable bool   `toml:"searchable"`
}

// TabsConfig holds tab strip settings
type TabsConfig struct {
	ActivateOnFocus bool `toml:"activate_on_focus"`
}

// ThemeConfig holds UI theme/color settings
type ThemeConfig struct {
	Name    string `toml:"name" validate:"omitempty,oneof=none default dracula nord gruvbox catppuccin"`
	Mode    string `toml:"mode" validate:"omitempty,oneof=auto light dark"`
	Primary string `toml:"primary" validate:"omitempty,termcolor"`
	Accent  string `toml:"accent" validate:"omitempty,termcolor"`
	Success string `toml:"success" validate:"omitempty,termcolor"`
	Error   string `toml:"error" validate:"omitempty,termcolor"`
	Muted   string `toml:"muted" validate:"omitempty,termcolor"`
	Normal  string `toml:"normal" validate:"omitempty,termcolor"`
	Info    string `toml:"info" validate:"omitempty,termcolor"`
	Warning string `toml:"warning" validate:"omitempty,termcolor"`

	Nerdfont bool `toml:"nerdfont"` // use nerd font glyphs for markers
}

// Config holds the tuikit configuration
type Config struct {
	Focus  FocusConfig  `toml:"focus"`
	Select SelectConfig `toml:"select"`
	Tabs   TabsConfig   `toml:"tabs"`
	Theme  ThemeConfig  `toml:"theme"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Focus: FocusConfig{Wrap: true},
		Select: SelectConfig{
			FilterMode: "substring",
			MaxVisible: 8,
			Searchable: true,
		},
	}
}

// Path returns the config file location: $TUIKIT_CONFIG if set, otherwise
// ~/.config/tuikit/config.toml.
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tuikit", "config.toml"), nil
}

// Load reads the config from Path().
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates the config at path. Keys missing from the
// file keep their default values.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML config data over the defaults and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Default(), fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	if err := Validate(cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

type configKey struct{}

// WithConfig returns a new context with the config stored in it.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext returns the config from context, or nil.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey{}).(*Config); ok {
		return cfg
	}
	return nil
}

// defaultConfig is the template written by Init
const defaultConfig = `# tuikit configuration
# Location: ~/.config/tuikit/config.toml (override with $TUIKIT_CONFIG)

# Focus traversal
# [focus]
# wrap = true          # arrow keys wrap around at the ends of a list

# Select boxes
# [select]
# filter_mode = "substring"   # substring or fuzzy
# max_visible = 8             # rows shown before the list scrolls (1-50)
# searchable = true           # typing filters the options

# Tab strips
# [tabs]
# activate_on_focus = false   # arrow keys also activate the focused tab

# Theme
# [theme]
# name = "default"     # none, default, dracula, nord, gruvbox, catppuccin
# mode = "auto"        # auto, light, dark
# accent = "#ff79c6"   # override single colors (hex or ANSI 256 number)
# nerdfont = false     # use nerd font glyphs for markers
`

// DefaultConfig returns the default configuration template content.
func DefaultConfig() string {
	return defaultConfig
}

// Init creates a default config file at Path().
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}
