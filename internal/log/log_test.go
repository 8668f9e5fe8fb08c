package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
)

func TestPrintf(t *testing.T) {
	t.Parallel()

	t.Run("writes formatted output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, false)
		l.Printf("hello %s %d", "world", 42)
		if got := buf.String(); got != "hello world 42" {
			t.Errorf("Printf output = %q, want %q", got, "hello world 42")
		}
	})

	t.Run("suppressed when quiet", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, true)
		l.Printf("should not appear")
		if buf.Len() != 0 {
			t.Errorf("Printf wrote %q when quiet", buf.String())
		}
	})
}

func TestPrintln(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, false, false)
	l.Println("hello", "world")
	if got := buf.String(); got != "hello world\n" {
		t.Errorf("Println output = %q, want %q", got, "hello world\n")
	}
}

func TestDebug(t *testing.T) {
	t.Parallel()

	t.Run("verbose key-val format", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		l.Debug("focus claimed", "container", "tabs", "target", "tab-2")
		got := buf.String()
		if !strings.Contains(got, "focus claimed") {
			t.Errorf("Debug output = %q, want to contain message", got)
		}
		if !strings.Contains(got, "container=tabs") {
			t.Errorf("Debug output = %q, want to contain container=tabs", got)
		}
		if !strings.Contains(got, "target=tab-2") {
			t.Errorf("Debug output = %q, want to contain target=tab-2", got)
		}
	})

	t.Run("odd keyvals drops last", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		l.Debug("msg", "key1", "val1", "orphan")
		got := buf.String()
		if !strings.Contains(got, "key1=val1") {
			t.Errorf("Debug output = %q, want to contain key1=val1", got)
		}
		if strings.Contains(got, "orphan") {
			t.Errorf("Debug output = %q, should not contain orphan key", got)
		}
	})

	t.Run("not verbose is silent", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, false)
		l.Debug("should not appear", "key", "val")
		if buf.Len() != 0 {
			t.Errorf("Debug wrote %q when not verbose", buf.String())
		}
	})

	t.Run("quiet overrides verbose", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, true)
		l.Debug("should not appear")
		if buf.Len() != 0 {
			t.Errorf("Debug wrote %q when quiet", buf.String())
		}
	})

	t.Run("nil logger is safe", func(t *testing.T) {
		t.Parallel()
		var l *Logger
		l.Debug("nothing")
	})
}

func TestWarn(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(&buf, false, false).Warn("focus retry dropped", "container", "tabs")
	if got := buf.String(); !strings.Contains(got, "focus retry dropped") || !strings.Contains(got, "container=tabs") {
		t.Errorf("Warn output = %q, want message and container=tabs", got)
	}

	buf.Reset()
	New(&buf, false, true).Warn("hidden")
	if buf.Len() != 0 {
		t.Errorf("Warn wrote %q when quiet", buf.String())
	}
}

func TestWith(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := New(&buf, true, false).With("widget", "select")
	l.Debug("opened")
	if got := buf.String(); !strings.Contains(got, "widget=select") {
		t.Errorf("Debug output = %q, want to contain widget=select", got)
	}
}

func TestIsVerbose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		want    bool
	}{
		{"verbose only", true, false, true},
		{"quiet only", false, true, false},
		{"both", true, true, false},
		{"neither", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l := New(io.Discard, tt.verbose, tt.quiet)
			if got := l.IsVerbose(); got != tt.want {
				t.Errorf("IsVerbose() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		l := New(io.Discard, true, false)
		ctx := WithLogger(context.Background(), l)
		if got := FromContext(ctx); got != l {
			t.Error("FromContext did not return attached logger")
		}
	})

	t.Run("missing logger is no-op", func(t *testing.T) {
		t.Parallel()
		got := FromContext(context.Background())
		if got == nil {
			t.Fatal("FromContext returned nil")
		}
		if got.IsVerbose() {
			t.Error("fallback logger should not be verbose")
		}
	})
}
