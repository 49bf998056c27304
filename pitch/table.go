package pitch

import (
	"fmt"

	"github.com/lixenwraith/pitch/note"
)

// Bounds of the standard table, C0 (16.35 Hz) to B8 (7902.13 Hz)
var (
	StandardLow  = FromNote(note.C, 0)
	StandardHigh = FromNote(note.B, 8)
)

// MaxRange is the largest number of notes Range returns
const MaxRange = 1 << 16

// maxExact is the magnitude above which float64 no longer holds every integer
const maxExact = 1 << 53

// Range returns every equal-tempered note from the nearest note of from to the
// nearest note of to, inclusive and ascending. It is empty when from is higher.
// Spans longer than MaxRange notes, or bounds beyond 2^53 semitones, return
// ErrArgument.
func Range(from, to Pitch) ([]Pitch, error) {
	lo, hi := from.rounded(), to.rounded()
	if lo > hi {
		return nil, nil
	}
	if lo <= -maxExact || hi >= maxExact {
		return nil, fmt.Errorf("%w: range bound beyond %d semitones", ErrArgument, int64(maxExact))
	}
	if hi-lo >= MaxRange {
		return nil, fmt.Errorf("%w: range of %.0f notes exceeds %d", ErrArgument, hi-lo+1, MaxRange)
	}

	n := int(hi - lo)
	out := make([]Pitch, 0, n+1)
	for k := 0; k <= n; k++ {
		out = append(out, Pitch{offset: lo + float64(k)})
	}
	return out, nil
}

// Standard returns the 108 notes C0 through B8
func Standard() []Pitch {
	out, _ := Range(StandardLow, StandardHigh)
	return out
}
