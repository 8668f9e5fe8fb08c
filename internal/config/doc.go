// Package config handles loading and validation of tuikit configuration.
//
// Configuration is read from ~/.config/tuikit/config.toml, or from the file
// named by $TUIKIT_CONFIG. A missing file is not an error: Default() is used.
// Keys absent from the file keep their defaults.
//
// # Configuration Sources (highest priority first)
//
//   - .tuikit.toml in the working directory (see LoadLocal, MergeLocal)
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - focus.wrap: arrow-key traversal wraps at list ends (default: true)
//   - select.filter_mode: "substring" or "fuzzy" (default: "substring")
//   - select.max_visible: rows shown before the option list scrolls (default: 8)
//   - select.searchable: typing filters the options (default: true)
//   - tabs.activate_on_focus: arrow keys also activate tabs (default: false)
//   - theme.*: color preset, light/dark mode and single-color overrides
//
// Values are validated with struct tags; enum errors list the allowed
// options.
package config
