package note

import (
	"errors"
	"testing"
)

// TestNameOf verifies index lookup and its domain
func TestNameOf(t *testing.T) {
	for i := 0; i < Count; i++ {
		n, err := NameOf(i)
		if err != nil {
			t.Fatalf("Expected no error for index %d, got %v", i, err)
		}
		if n.Index() != i {
			t.Errorf("Expected index %d, got %d", i, n.Index())
		}
	}

	for _, i := range []int{-1, 12, 100} {
		if _, err := NameOf(i); !errors.Is(err, ErrArgument) {
			t.Errorf("Expected ErrArgument for index %d, got %v", i, err)
		}
	}
}

// TestWrap verifies modulo-12 reduction including negatives
func TestWrap(t *testing.T) {
	tests := []struct {
		in   int
		want Name
	}{
		{0, C},
		{9, A},
		{12, C},
		{13, CSharp},
		{-1, B},
		{-12, C},
		{-15, A},
	}
	for _, tt := range tests {
		if got := Wrap(tt.in); got != tt.want {
			t.Errorf("Wrap(%d): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

// TestNameString verifies canonical display spellings
func TestNameString(t *testing.T) {
	want := []string{
		"C", "C♯/D♭", "D", "D♯/E♭", "E", "F",
		"F♯/G♭", "G", "G♯/A♭", "A", "A♯/B♭", "B",
	}
	for i, n := range Names() {
		if n.String() != want[i] {
			t.Errorf("Expected %q for index %d, got %q", want[i], i, n.String())
		}
	}

	if ASharp.Sharp() != "A♯" {
		t.Errorf("Expected A♯, got %s", ASharp.Sharp())
	}
	if BFlat.Flat() != "B♭" {
		t.Errorf("Expected B♭, got %s", BFlat.Flat())
	}
	if E.Flat() != "E" {
		t.Errorf("Expected natural E to keep its letter, got %s", E.Flat())
	}
}

// TestTranspose verifies class arithmetic wraps at the octave
func TestTranspose(t *testing.T) {
	if got := A.Transpose(3); got != C {
		t.Errorf("Expected A+3 = C, got %v", got)
	}
	if got := C.Transpose(-1); got != B {
		t.Errorf("Expected C-1 = B, got %v", got)
	}
	if got := G.Transpose(24); got != G {
		t.Errorf("Expected G+24 = G, got %v", got)
	}
}

// TestNamesOrdered verifies Names covers every class once
func TestNamesOrdered(t *testing.T) {
	names := Names()
	if len(names) != Count {
		t.Fatalf("Expected %d names, got %d", Count, len(names))
	}
	for i, n := range names {
		if int(n) != i {
			t.Errorf("Expected name %d at position %d, got %d", i, i, n)
		}
	}
}
