package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeLocal(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, LocalConfigFileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadLocal(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		local, err := LoadLocal(t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if local != nil {
			t.Errorf("expected nil, got %+v", local)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		dir := writeLocal(t, `[focus]
wrap = false

[select]
filter_mode = "fuzzy"

[theme]
name = "dracula"
`)
		local, err := LoadLocal(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if local.Focus.Wrap == nil || *local.Focus.Wrap {
			t.Errorf("focus.wrap = %v, want false", local.Focus.Wrap)
		}
		if local.Select.FilterMode != "fuzzy" {
			t.Errorf("filter_mode = %q, want fuzzy", local.Select.FilterMode)
		}
		if local.Select.Searchable != nil {
			t.Error("searchable should be unset")
		}
	})

	t.Run("invalid value names the file", func(t *testing.T) {
		dir := writeLocal(t, "[select]\nfilter_mode = \"regex\"\n")
		_, err := LoadLocal(dir)
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "select.filter_mode") || !strings.Contains(err.Error(), LocalConfigFileName) {
			t.Errorf("error = %q", err.Error())
		}
	})

	t.Run("malformed", func(t *testing.T) {
		dir := writeLocal(t, "[select")
		if _, err := LoadLocal(dir); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestMergeLocal(t *testing.T) {
	global := Default()
	global.Theme = ThemeConfig{Name: "nord", Accent: "#111111"}

	t.Run("nil local returns global", func(t *testing.T) {
		if got := MergeLocal(&global, nil); got != &global {
			t.Error("expected the global pointer back")
		}
	})

	t.Run("overlays set fields only", func(t *testing.T) {
		off := false
		on := true
		local := &LocalConfig{
			Focus:  LocalFocus{Wrap: &off},
			Select: LocalSelect{MaxVisible: 3},
			Tabs:   LocalTabs{ActivateOnFocus: &on},
			Theme:  ThemeConfig{Accent: "#222222"},
		}
		got := MergeLocal(&global, local)

		if got.Focus.Wrap {
			t.Error("focus.wrap should be overridden to false")
		}
		if got.Select.MaxVisible != 3 {
			t.Errorf("max_visible = %d, want 3", got.Select.MaxVisible)
		}
		if got.Select.FilterMode != "substring" || !got.Select.Searchable {
			t.Errorf("unset select fields changed: %+v", got.Select)
		}
		if !got.Tabs.ActivateOnFocus {
			t.Error("tabs.activate_on_focus should be true")
		}
		if got.Theme.Name != "nord" || got.Theme.Accent != "#222222" {
			t.Errorf("Theme = %+v", got.Theme)
		}
		if !global.Focus.Wrap || global.Theme.Accent != "#111111" {
			t.Error("global was mutated")
		}
	})
}
