package main

import (
	"strings"
	"testing"

	"github.com/lixenwraith/pitch/interval"
	"github.com/lixenwraith/pitch/pitch"
)

// TestExplorerMoves verifies semitone and octave steps
func TestExplorerMoves(t *testing.T) {
	ex := newExplorer(pitch.MustParse("A4"))

	ex.apply(actionUp)
	if ex.current.String() != "A♯4" {
		t.Errorf("Expected A♯4 after up, got %s", ex.current)
	}
	ex.apply(actionOctaveDown)
	if ex.current.String() != "A♯3" {
		t.Errorf("Expected A♯3 after octave down, got %s", ex.current)
	}
	ex.apply(actionDown)
	ex.apply(actionOctaveUp)
	if !ex.current.Equal(pitch.MustParse("A4")) {
		t.Errorf("Expected back at A4, got %s", ex.current)
	}
}

// TestExplorerDetune verifies +/- move by five cents and reset restores the start
func TestExplorerDetune(t *testing.T) {
	start := pitch.MustParse("C4")
	ex := newExplorer(start)

	ex.apply(actionSharpen)
	ex.apply(actionSharpen)
	if ex.current.String() != "C4+10.00c" {
		t.Errorf("Expected C4+10.00c, got %s", ex.current)
	}
	ex.apply(actionFlatten)
	if ex.current.String() != "C4+5.00c" {
		t.Errorf("Expected C4+5.00c, got %s", ex.current)
	}

	ex.apply(actionNextInterval)
	ex.apply(actionReset)
	if !ex.current.Equal(start) || ex.ref != 0 {
		t.Errorf("Expected reset to C4 and first interval, got %s and %d", ex.current, ex.ref)
	}
}

// TestExplorerIntervalCycle verifies the reference interval wraps
func TestExplorerIntervalCycle(t *testing.T) {
	ex := newExplorer(pitch.MustParse("C4"))
	for range referenceIntervals {
		ex.apply(actionNextInterval)
	}
	if ex.ref != 0 {
		t.Errorf("Expected interval index to wrap to 0, got %d", ex.ref)
	}

	for ex.reference() != interval.PerfectFifth {
		ex.apply(actionNextInterval)
	}
	if got := ex.upper().String(); got != "G4" {
		t.Errorf("Expected fifth above C4 to be G4, got %s", got)
	}
}

// TestExplorerLines verifies the panel text
func TestExplorerLines(t *testing.T) {
	ex := newExplorer(pitch.MustParse("C4"))
	text := strings.Join(ex.lines(), "\n")

	for _, want := range []string{
		"Pitch      C4",
		"Frequency  261.63 Hz",
		"From A4    -9 st (-900.00c)",
		"MIDI key   60",
		"m3 minor third → D♯4 (311.13 Hz)",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected panel to contain %q, got:\n%s", want, text)
		}
	}

	far := newExplorer(pitch.MustParse("C10"))
	if !strings.Contains(strings.Join(far.lines(), "\n"), "MIDI key   out of range") {
		t.Error("Expected out-of-range MIDI key to be reported")
	}

	ex.status = "Sound is off"
	lines := ex.lines()
	if lines[len(lines)-1] != "Sound is off" {
		t.Errorf("Expected status as last line, got %q", lines[len(lines)-1])
	}
}

// TestParseWave verifies wave flag names
func TestParseWave(t *testing.T) {
	for _, name := range []string{"sine", "square", "saw", "triangle"} {
		if _, err := parseWave(name); err != nil {
			t.Errorf("Expected %q to parse, got %v", name, err)
		}
	}
	if _, err := parseWave("noise"); err == nil {
		t.Error("Expected unknown wave to fail")
	}
}

// TestExplorerNonMotion verifies interval cycling, play, quit and no-op keys
// leave the pitch untouched
func TestExplorerNonMotion(t *testing.T) {
	ex := newExplorer(pitch.MustParse("C4"))
	ex.apply(actionSharpen)
	before := ex.current

	for _, a := range []action{actionNextInterval, actionPlay, actionQuit, actionNone} {
		ex.apply(a)
		if ex.current != before {
			t.Errorf("Action %d: expected pitch %s unchanged, got %s", a, before, ex.current)
		}
	}
	if ex.ref != 1 {
		t.Errorf("Expected one interval step, got index %d", ex.ref)
	}

	ex.apply(actionReset)
	if ex.current != ex.start {
		t.Errorf("Expected reset to restore %s exactly, got %s", ex.start, ex.current)
	}
}
