package colour

import (
	"strings"
	"testing"
)

func TestRenderSwatchesDefaultMode(t *testing.T) {
	lines := RenderSwatches([]RGB{{R: 255}}, false)
	if len(lines) != 1 {
		t.Fatalf("RenderSwatches() returned %d lines, want 1", len(lines))
	}

	want := "\x1b[38;2;255;0;0m▇ #ff0000\x1b[0m"
	if lines[0] != want {
		t.Errorf("line = %q, want %q", lines[0], want)
	}
}

func TestRenderSwatchesPlainMode(t *testing.T) {
	lines := RenderSwatches([]RGB{{R: 255}, {G: 255}}, true)
	want := []string{"#ff0000", "#00ff00"}
	if len(lines) != len(want) {
		t.Fatalf("RenderSwatches() returned %d lines, want %d", len(lines), len(want))
	}
	for i, line := range lines {
		if line != want[i] {
			t.Errorf("line %d = %q, want %q", i, line, want[i])
		}
		if strings.Contains(line, "\x1b") {
			t.Errorf("plain line %d contains an escape sequence: %q", i, line)
		}
	}
}

func TestRenderSwatchesDeduplicatesByHex(t *testing.T) {
	colours := []RGB{
		{R: 255},
		{G: 255},
		{R: 255}, // duplicate of the first
		{G: 255}, // duplicate of the second
		{B: 255},
	}

	lines := RenderSwatches(colours, true)
	want := []string{"#ff0000", "#00ff00", "#0000ff"}
	if len(lines) != len(want) {
		t.Fatalf("RenderSwatches() returned %d lines, want %d: %v", len(lines), len(want), lines)
	}
	for i, line := range lines {
		if line != want[i] {
			t.Errorf("line %d = %q, want %q (first occurrence wins)", i, line, want[i])
		}
	}
}

func TestRenderSwatchesWrapsEveryLine(t *testing.T) {
	colours := []RGB{{R: 1, G: 2, B: 3}, {R: 200, G: 100, B: 50}}
	for i, line := range RenderSwatches(colours, false) {
		if !strings.HasPrefix(line, "\x1b[38;2;") {
			t.Errorf("line %d missing foreground escape prefix: %q", i, line)
		}
		if !strings.HasSuffix(line, "\x1b[0m") {
			t.Errorf("line %d missing trailing reset: %q", i, line)
		}
	}
}

func TestRenderSwatchesEmpty(t *testing.T) {
	if lines := RenderSwatches(nil, false); len(lines) != 0 {
		t.Errorf("RenderSwatches(nil) = %v, want no lines", lines)
	}
}
