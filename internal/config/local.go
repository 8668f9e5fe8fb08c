package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-directory override file.
const LocalConfigFileName = ".tuikit.toml"

// LocalConfig holds per-directory overrides from .tuikit.toml.
// Pointer fields and zero-value strings indicate "not set" (inherit from global).
type LocalConfig struct {
	Focus  LocalFocus  `toml:"focus"`
	Select LocalSelect `toml:"select"`
	Tabs   LocalTabs   `toml:"tabs"`
	Theme  ThemeConfig `toml:"theme"`
}

// LocalFocus holds local focus overrides
type LocalFocus struct {
	Wrap *bool `toml:"wrap"`
}

// LocalSelect holds local select overrides
type LocalSelect struct {
	FilterMode string `toml:"filter_mode" validate:"omitempty,oneof=substring fuzzy"`
	MaxVisible int    `toml:"max_visible" validate:"omitempty,min=1,max=50"`
	Searchable *bool  `toml:"searchable"`
}

// LocalTabs holds local tab strip overrides
type LocalTabs struct {
	ActivateOnFocus *bool `toml:"activate_on_focus"`
}

// LoadLocal reads .tuikit.toml from dir.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only on parse or validation failure.
func LoadLocal(dir string) (*LocalConfig, error) {
	configFile := filepath.Join(dir, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var local LocalConfig
	if err := toml.Unmarshal(data, &local); err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}
	if err := validatorInstance().Struct(local); err != nil {
		return nil, fmt.Errorf("%w in %s", convertValidationError(err), configFile)
	}
	return &local, nil
}
