// Package pitch models an absolute pitch of the 12-tone equal-tempered scale,
// A4 = 440 Hz.
//
// A Pitch stores one number, its signed semitone offset from A4. Frequency,
// note name and octave are derived from it on demand, so no two views of the
// same Pitch can disagree.
package pitch

import (
	"fmt"
	"math"

	"github.com/lixenwraith/pitch/note"
)

// Reference point and scale constants
const (
	ReferenceFrequency = 440.0  // Hz of A4
	ReferenceOctave    = 4      // octave of A4, scientific pitch notation
	ReferenceClass     = note.A // pitch class of A4
	ReferenceKey       = 69     // MIDI key of A4

	SemitonesPerOctave = 12
	CentsPerSemitone   = 100

	// Epsilon is the equality tolerance in semitones, absorbing log/exp
	// round-trip error through FromFrequency and Frequency
	Epsilon = 1e-9
)

var (
	ErrArgument = note.ErrArgument
	ErrParse    = note.ErrParse
)

// Pitch is an immutable absolute pitch. The zero value is A4.
type Pitch struct {
	offset float64 // semitones from A4
}

// FromFrequency converts a frequency in Hz; hz must be positive and finite
func FromFrequency(hz float64) (Pitch, error) {
	if math.IsNaN(hz) || math.IsInf(hz, 0) || hz <= 0 {
		return Pitch{}, fmt.Errorf("%w: frequency %v Hz must be positive and finite", ErrArgument, hz)
	}
	// Difference of logs stays finite for subnormal hz where hz/440 would underflow
	return Pitch{offset: SemitonesPerOctave * (math.Log2(hz) - math.Log2(ReferenceFrequency))}, nil
}

// FromNote places a pitch class in an octave, C4 through B4 being octave 4
func FromNote(name note.Name, octave int) Pitch {
	classOffset := float64(name.Index() - ReferenceClass.Index())
	octaveOffset := SemitonesPerOctave * (float64(octave) - ReferenceOctave)
	return Pitch{offset: classOffset + octaveOffset}
}

// FromSemitones builds a pitch from its offset to A4, fractional offsets allowed
func FromSemitones(offset float64) (Pitch, error) {
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return Pitch{}, fmt.Errorf("%w: semitone offset %v must be finite", ErrArgument, offset)
	}
	return Pitch{offset: offset}, nil
}

// FromKey builds a pitch from a MIDI key number, 69 being A4
func FromKey(key int) Pitch {
	return Pitch{offset: float64(key - ReferenceKey)}
}

// Shift returns the pitch moved by a number of semitones.
// Offsets that overflow float64 saturate at ±math.MaxFloat64.
func (p Pitch) Shift(semitones float64) Pitch {
	offset := p.offset + semitones
	switch {
	case math.IsNaN(offset):
		return p
	case math.IsInf(offset, 1):
		offset = math.MaxFloat64
	case math.IsInf(offset, -1):
		offset = -math.MaxFloat64
	}
	return Pitch{offset: offset}
}

// Semitones returns the exact, unrounded offset from A4
func (p Pitch) Semitones() float64 {
	return p.offset
}

// Frequency returns the pitch in Hz, always > 0.
// Offsets past the float64 range saturate instead of reaching 0 or +Inf.
func (p Pitch) Frequency() float64 {
	f := ReferenceFrequency * math.Exp2(p.offset/SemitonesPerOctave)
	switch {
	case f == 0:
		return math.SmallestNonzeroFloat64
	case math.IsInf(f, 1):
		return math.MaxFloat64
	}
	return f
}

// rounded is the offset of the nearest equal-tempered note
func (p Pitch) rounded() float64 {
	return math.Round(p.offset)
}

// Name returns the pitch class of the nearest note: offset 0.4 names A,
// offset 0.6 names A♯/B♭
func (p Pitch) Name() note.Name {
	class := math.Mod(p.rounded()+float64(ReferenceClass.Index()), SemitonesPerOctave)
	if class < 0 {
		class += SemitonesPerOctave
	}
	return note.Wrap(int(class))
}

// Octave returns the scientific octave number of the nearest note
func (p Pitch) Octave() int {
	fromC4 := p.rounded() + float64(ReferenceClass.Index())
	return ReferenceOctave + int(math.Floor(fromC4/SemitonesPerOctave))
}

// Key returns the MIDI key number of the nearest note, unbounded
func (p Pitch) Key() int {
	return int(p.rounded()) + ReferenceKey
}

// Cents returns the signed deviation from the nearest note, within [-50, 50]
func (p Pitch) Cents() float64 {
	return (p.offset - p.rounded()) * CentsPerSemitone
}

// Nearest returns the equal-tempered note closest to p
func (p Pitch) Nearest() Pitch {
	return Pitch{offset: p.rounded()}
}

// Equal compares offsets within Epsilon
func (p Pitch) Equal(o Pitch) bool {
	return math.Abs(p.offset-o.offset) <= Epsilon
}

// Compare returns -1 if p is lower than o, 1 if higher, 0 if Equal
func (p Pitch) Compare(o Pitch) int {
	switch {
	case p.Equal(o):
		return 0
	case p.offset < o.offset:
		return -1
	default:
		return 1
	}
}

// Less reports whether p is strictly lower than o
func (p Pitch) Less(o Pitch) bool {
	return p.Compare(o) < 0
}
