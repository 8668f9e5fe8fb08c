package config

// MergeLocal merges per-directory overrides into a global config,
// returning a new Config without mutating the global.
// Returns global unchanged if local is nil.
func MergeLocal(global *Config, local *LocalConfig) *Config {
	if local == nil {
		return global
	}

	merged := *global

	if local.Focus.Wrap != nil {
		merged.Focus.Wrap = *local.Focus.Wrap
	}

	if local.Select.FilterMode != "" {
		merged.Select.FilterMode = local.Select.FilterMode
	}
	if local.Select.MaxVisible != 0 {
		merged.Select.MaxVisible = local.Select.MaxVisible
	}
	if local.Select.Searchable != nil {
		merged.Select.Searchable = *local.Select.Searchable
	}

	if local.Tabs.ActivateOnFocus != nil {
		merged.Tabs.ActivateOnFocus = *local.Tabs.ActivateOnFocus
	}

	merged.Theme = mergeTheme(global.Theme, local.Theme)
	return &merged
}

// mergeTheme overlays every non-empty local theme field.
func mergeTheme(global, local ThemeConfig) ThemeConfig {
	pick := func(g, l string) string {
		if l != "" {
			return l
		}
		return g
	}
	return ThemeConfig{
		Name:    pick(global.Name, local.Name),
		Mode:    pick(global.Mode, local.Mode),
		Primary: pick(global.Primary, local.Primary),
		Accent:  pick(global.Accent, local.Accent),
		Success: pick(global.Success, local.Success),
		Error:   pick(global.Error, local.Error),
		Muted:   pick(global.Muted, local.Muted),
		Normal:  pick(global.Normal, local.Normal),
		Info:    pick(global.Info, local.Info),
		Warning: pick(global.Warning, local.Warning),

		Nerdfont: global.Nerdfont || local.Nerdfont,
	}
}
