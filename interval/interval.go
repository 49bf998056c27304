// Package interval is the algebra of directed distances between pitches.
package interval

import (
	"fmt"
	"math"

	"github.com/lixenwraith/pitch/note"
	"github.com/lixenwraith/pitch/pitch"
)

var (
	ErrArgument = note.ErrArgument
	ErrParse    = note.ErrParse
)

// Interval is a signed distance in semitones; 1 semitone = 100 cents exactly
type Interval struct {
	semitones float64
}

// Common simple intervals
var (
	Unison        = Interval{0}
	MinorSecond   = Interval{1}
	MajorSecond   = Interval{2}
	MinorThird    = Interval{3}
	MajorThird    = Interval{4}
	PerfectFourth = Interval{5}
	Tritone       = Interval{6}
	PerfectFifth  = Interval{7}
	MinorSixth    = Interval{8}
	MajorSixth    = Interval{9}
	MinorSeventh  = Interval{10}
	MajorSeventh  = Interval{11}
	Octave        = Interval{12}
)

// FromSemitones builds an interval from a finite semitone count
func FromSemitones(semitones float64) (Interval, error) {
	if math.IsNaN(semitones) || math.IsInf(semitones, 0) {
		return Interval{}, fmt.Errorf("%w: interval of %v semitones must be finite", ErrArgument, semitones)
	}
	return Interval{semitones: semitones}, nil
}

// FromCents builds an interval from a finite cent count
func FromCents(cents float64) (Interval, error) {
	if math.IsNaN(cents) || math.IsInf(cents, 0) {
		return Interval{}, fmt.Errorf("%w: interval of %v cents must be finite", ErrArgument, cents)
	}
	return Interval{semitones: cents / pitch.CentsPerSemitone}, nil
}

// FromFrequencies measures the interval from f0 up to f1, positive when f0 < f1
func FromFrequencies(f0, f1 float64) (Interval, error) {
	if !validFrequency(f0) || !validFrequency(f1) {
		return Interval{}, fmt.Errorf("%w: frequencies %v Hz and %v Hz must be positive and finite", ErrArgument, f0, f1)
	}
	return Interval{semitones: pitch.SemitonesPerOctave * (math.Log2(f1) - math.Log2(f0))}, nil
}

// FromRatio converts a frequency ratio, 2 being an octave
func FromRatio(ratio float64) (Interval, error) {
	if !validFrequency(ratio) {
		return Interval{}, fmt.Errorf("%w: ratio %v must be positive and finite", ErrArgument, ratio)
	}
	return Interval{semitones: pitch.SemitonesPerOctave * math.Log2(ratio)}, nil
}

func validFrequency(f float64) bool {
	return f > 0 && !math.IsInf(f, 0)
}

// saturated clamps an overflowed sum to ±math.MaxFloat64
func saturated(semitones float64) Interval {
	switch {
	case math.IsInf(semitones, 1):
		semitones = math.MaxFloat64
	case math.IsInf(semitones, -1):
		semitones = -math.MaxFloat64
	}
	return Interval{semitones: semitones}
}

// Between returns the interval from a to b. Distances beyond float64 range
// saturate at ±math.MaxFloat64 semitones.
func Between(a, b pitch.Pitch) Interval {
	return saturated(b.Semitones() - a.Semitones())
}

// Apply transposes p by i. The result is not bounded to any audible range.
func Apply(p pitch.Pitch, i Interval) pitch.Pitch {
	return p.Shift(i.semitones)
}

// Invert negates the direction of i
func Invert(i Interval) Interval {
	return Interval{semitones: -i.semitones}
}

// Add sums two intervals, saturating like Between
func Add(a, b Interval) Interval {
	return saturated(a.semitones + b.semitones)
}

// Semitones returns the signed size in semitones
func (i Interval) Semitones() float64 {
	return i.semitones
}

// Cents returns the signed size in cents, exactly Semitones() × 100
func (i Interval) Cents() float64 {
	return i.semitones * pitch.CentsPerSemitone
}

// Ratio returns the frequency ratio 2^(semitones/12)
func (i Interval) Ratio() float64 {
	return math.Exp2(i.semitones / pitch.SemitonesPerOctave)
}

// Abs returns the undirected size
func (i Interval) Abs() Interval {
	return Interval{semitones: math.Abs(i.semitones)}
}

// Octaves returns the number of whole octaves in i, truncated toward zero and
// clamped to the int range
func (i Interval) Octaves() int {
	o := math.Trunc(i.semitones / pitch.SemitonesPerOctave)
	switch {
	case o >= maxIntFloat:
		return math.MaxInt
	case o <= -maxIntFloat:
		return math.MinInt
	}
	return int(o)
}

// maxIntFloat is the smallest float64 above math.MaxInt
const maxIntFloat = float64(math.MaxInt) + 1

// Simple returns i with whole octaves removed, keeping its direction
func (i Interval) Simple() Interval {
	return Interval{semitones: math.Mod(i.semitones, pitch.SemitonesPerOctave)}
}

// Equal compares sizes within pitch.Epsilon
func (i Interval) Equal(o Interval) bool {
	return math.Abs(i.semitones-o.semitones) <= pitch.Epsilon
}

// Compare returns -1 if i is smaller than o, 1 if larger, 0 if Equal
func (i Interval) Compare(o Interval) int {
	switch {
	case i.Equal(o):
		return 0
	case i.semitones < o.semitones:
		return -1
	default:
		return 1
	}
}
