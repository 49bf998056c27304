package interval

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lixenwraith/pitch/note"
	"github.com/lixenwraith/pitch/pitch"
)

var longNames = [...]string{
	"unison",
	"minor second",
	"major second",
	"minor third",
	"major third",
	"perfect fourth",
	"tritone",
	"perfect fifth",
	"minor sixth",
	"major sixth",
	"minor seventh",
	"major seventh",
	"octave",
}

var shortNames = [...]string{"P1", "m2", "M2", "m3", "M3", "P4", "TT", "P5", "m6", "M6", "m7", "M7", "P8"}

// Shorthand accepted by Parse beyond shortNames
var shortAliases = map[string]float64{
	"A4": 6,
	"d5": 6,
}

// whole returns the size as an integer number of semitones when it is one
func (i Interval) whole() (int, bool) {
	r := math.Round(i.semitones)
	if math.Abs(i.semitones-r) > pitch.Epsilon || math.Abs(r) > float64(len(longNames)-1) {
		return 0, false
	}
	return int(math.Abs(r)), true
}

// Name returns the common name of a whole-semitone interval up to an octave,
// ignoring direction, or "" for anything else
func (i Interval) Name() string {
	n, ok := i.whole()
	if !ok {
		return ""
	}
	return longNames[n]
}

// Short returns the shorthand such as "P5" or "m3", or "" when Name is ""
func (i Interval) Short() string {
	n, ok := i.whole()
	if !ok {
		return ""
	}
	return shortNames[n]
}

// String renders semitones: "+7 st" for whole sizes, "-3.50 st" otherwise
func (i Interval) String() string {
	r := math.Round(i.semitones)
	if math.Abs(i.semitones-r) <= pitch.Epsilon && math.Abs(r) < 1e15 {
		return fmt.Sprintf("%+d st", int64(r))
	}
	return fmt.Sprintf("%+.2f st", i.semitones)
}

// CentsString renders cents at two decimals: "+700.00c"
func (i Interval) CentsString() string {
	return fmt.Sprintf("%+.2fc", i.Cents())
}

// Parse reads an interval as shorthand ("P5", "-m3"), semitones ("7st",
// "-3.5 st") or cents ("+700c", "25¢")
func Parse(text string) (Interval, error) {
	s := note.Normalize(text)
	sign := 1.0
	switch {
	case strings.HasPrefix(s, "-"):
		sign = -1
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	if n, ok := lookupShort(s); ok {
		return Interval{semitones: sign * n}, nil
	}

	var body string
	var scale float64
	if b, ok := strings.CutSuffix(s, "st"); ok {
		body, scale = b, 1
	} else if b, ok := strings.CutSuffix(s, "c"); ok {
		body, scale = b, 1.0/pitch.CentsPerSemitone
	} else if b, ok := strings.CutSuffix(s, "¢"); ok {
		body, scale = b, 1.0/pitch.CentsPerSemitone
	} else {
		return Interval{}, fmt.Errorf("%w: %q: unknown interval", ErrParse, text)
	}

	body = strings.TrimSpace(body)
	if body == "" || body[0] == '+' || body[0] == '-' {
		return Interval{}, fmt.Errorf("%w: %q: malformed size", ErrParse, text)
	}
	v, err := strconv.ParseFloat(body, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Interval{}, fmt.Errorf("%w: %q: size is not a finite number", ErrParse, text)
	}
	return Interval{semitones: sign * v * scale}, nil
}

func lookupShort(s string) (float64, bool) {
	for n, short := range shortNames {
		if s == short {
			return float64(n), true
		}
	}
	v, ok := shortAliases[s]
	return v, ok
}
