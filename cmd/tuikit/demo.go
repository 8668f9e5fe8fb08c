package main

import (
	"fmt"
	"slices"

	"github.com/raphi011/tuikit/internal/config"
	"github.com/raphi011/tuikit/internal/disclosure"
	"github.com/raphi011/tuikit/internal/log"
	"github.com/raphi011/tuikit/internal/ui/dropdown"
	"github.com/raphi011/tuikit/internal/ui/form"
	"github.com/raphi011/tuikit/internal/ui/selectbox"
	"github.com/raphi011/tuikit/internal/ui/tabs"
)

// demoKinds lists the accepted arguments of 'tuikit demo'.
var demoKinds = []string{"select", "dropdown", "tabs", "all"}

var fruit = []disclosure.Option{
	{Value: "apple", Label: "Apple"},
	{Value: "banana", Label: "Banana"},
	{Value: "cherry", Label: "Cherry"},
	{Value: "durian", Label: "Durian"},
	{Value: "elderberry", Label: "Elderberry"},
	{Value: "fig", Label: "Fig"},
	{Value: "grape", Label: "Grape"},
	{Value: "honeydew", Label: "Honeydew"},
	{Value: "kiwi", Label: "Kiwi"},
	{Value: "lemon", Label: "Lemon"},
	{Value: "mango", Label: "Mango"},
}

var sizes = []disclosure.Option{
	{Value: "s", Label: "Small"},
	{Value: "m", Label: "Medium"},
	{Value: "l", Label: "Large"},
}

// buildDemo assembles the form for one demo kind.
func buildDemo(kind string, cfg *config.Config, l *log.Logger) (*form.Form, error) {
	if !slices.Contains(demoKinds, kind) {
		return nil, fmt.Errorf("unknown demo %q (expected one of %v)", kind, demoKinds)
	}
	if cfg == nil {
		d := config.Default()
		cfg = &d
	}

	f := form.New("tuikit " + kind).WithLogger(l)
	if kind == "select" || kind == "all" {
		for _, w := range selectDemo(cfg, l) {
			f.Add(w)
		}
	}
	if kind == "dropdown" || kind == "all" {
		f.Add(dropdownDemo(cfg, l))
	}
	if kind == "tabs" || kind == "all" {
		t := tabsDemo(cfg, l)
		if kind == "tabs" {
			// requested before the strip is attached, retried on start
			t.Focus()
		}
		f.Add(t)
	}
	return f, nil
}

func selectDemo(cfg *config.Config, l *log.Logger) []form.Widget {
	fruitBox := selectbox.New("fruit", "Fruit", fruit).
		WithConfig(cfg.Select).
		WithLogger(l)

	var custom []string
	fruitBox.WithItems(
		disclosure.Divider(),
		disclosure.Item("surprise", "Surprise me", func() {
			custom = append(custom, "surprise")
			l.Debug("custom entry triggered", "count", len(custom))
		}),
	)

	size := selectbox.New("size", "Size", sizes).
		WithConfig(cfg.Select).
		WithSearchable(false).
		WithValue("m").
		WithLogger(l)

	locked := selectbox.New("region", "Region (read-only)", []disclosure.Option{
		{Value: "eu", Label: "Europe"},
	}).WithValue("eu").WithReadOnly(true)

	return []form.Widget{fruitBox, size, locked}
}

func dropdownDemo(cfg *config.Config, l *log.Logger) form.Widget {
	archive := disclosure.Item("archive", "Archive", nil)
	archive.Disabled = true

	return dropdown.New("actions", "Actions", "Actions",
		disclosure.Item("edit", "Edit", nil),
		disclosure.Item("duplicate", "Duplicate", nil),
		archive,
		disclosure.Divider(),
		disclosure.Item("delete", "Delete", nil),
	).WithConfig(cfg.Focus).WithLogger(l)
}

func tabsDemo(cfg *config.Config, l *log.Logger) *tabs.Model {
	return tabs.New("sections", "Sections",
		tabs.Tab{ID: "overview", Title: "Overview", Content: "Left and Right move between tabs.\nEnter opens the focused tab."},
		tabs.Tab{ID: "details", Title: "Details", Content: "Tab leaves the strip; Shift+Tab comes back\nto the tab you used last."},
		tabs.Tab{ID: "billing", Title: "Billing", Disabled: true},
		tabs.Tab{ID: "activity", Title: "Activity", Loading: true},
	).
		WithWrap(cfg.Focus.Wrap).
		WithConfig(cfg.Tabs).
		WithLogger(l)
}
