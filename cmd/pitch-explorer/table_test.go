package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/pitch/pitch"
)

// TestWriteTable verifies row count, content and column alignment
func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := writeTable(&buf, pitch.Standard()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 109 {
		t.Fatalf("Expected header plus 108 rows, got %d lines", len(lines))
	}

	if !strings.HasPrefix(lines[1], "C ") || !strings.Contains(lines[1], "16.35") {
		t.Errorf("Expected first row C0 16.35 Hz, got %q", lines[1])
	}
	a4 := lines[1+57]
	for _, want := range []string{"A", "440.00", "69"} {
		if !strings.Contains(a4, want) {
			t.Errorf("Expected A4 row to contain %q, got %q", want, a4)
		}
	}
	if !strings.Contains(lines[2], "C♯/D♭") {
		t.Errorf("Expected second row C♯/D♭, got %q", lines[2])
	}

	width := runewidth.StringWidth(lines[0])
	for i, line := range lines {
		if w := runewidth.StringWidth(line); w != width {
			t.Errorf("Line %d: expected width %d, got %d: %q", i, width, w, line)
		}
	}
}
