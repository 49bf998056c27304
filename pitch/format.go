package pitch

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lixenwraith/pitch/note"
)

// centsShown is the smallest deviation String renders; smaller ones round to 0.00
const centsShown = 0.005

// String renders the nearest note with sharp spelling and octave, followed by
// the deviation in cents when there is one: "A4", "C♯4", "A4+25.00c"
func (p Pitch) String() string {
	s := p.Name().Sharp() + strconv.Itoa(p.Octave())
	if c := p.Cents(); math.Abs(c) >= centsShown {
		s += fmt.Sprintf("%+.2fc", c)
	}
	return s
}

// FrequencyString renders the frequency at two decimals: "440.00 Hz"
func (p Pitch) FrequencyString() string {
	return fmt.Sprintf("%.2f Hz", p.Frequency())
}

// Parse reads "<note><octave>[<±cents>c]" such as "C#4", "Db-1", "A4+25c" or
// "A4-13.5¢". Note spellings follow note.Parse; the octave may be negative.
func Parse(text string) (Pitch, error) {
	sp, rest, err := note.Scan(text)
	if err != nil {
		return Pitch{}, err
	}

	octaveEnd := scanInt(rest)
	if octaveEnd == 0 {
		return Pitch{}, fmt.Errorf("%w: %q: missing octave", ErrParse, text)
	}
	octave, err := strconv.Atoi(rest[:octaveEnd])
	if err != nil {
		return Pitch{}, fmt.Errorf("%w: %q: octave: %v", ErrParse, text, err)
	}
	p := FromNote(sp.Name(), octave)

	detune := rest[octaveEnd:]
	if detune == "" {
		return p, nil
	}
	cents, err := parseCents(detune)
	if err != nil {
		return Pitch{}, fmt.Errorf("%w: %q: %v", ErrParse, text, err)
	}
	return p.Shift(cents / CentsPerSemitone), nil
}

// MustParse is Parse for literals known to be valid; it panics on error
func MustParse(text string) Pitch {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}

// scanInt returns the length of an optionally signed run of digits at the start of s
func scanInt(s string) int {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	digits := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == digits {
		return 0
	}
	return i
}

// parseCents reads a signed detune suffix: "+25c", "-13.5¢"
func parseCents(s string) (float64, error) {
	if s[0] != '+' && s[0] != '-' {
		return 0, fmt.Errorf("detune %q must start with a sign", s)
	}
	body, ok := strings.CutSuffix(s, "c")
	if !ok {
		body, ok = strings.CutSuffix(s, "¢")
	}
	if !ok {
		return 0, fmt.Errorf("detune %q must end in c or ¢", s)
	}
	cents, err := strconv.ParseFloat(body, 64)
	if err != nil || math.IsNaN(cents) || math.IsInf(cents, 0) {
		return 0, fmt.Errorf("detune %q is not a finite number", s)
	}
	return cents, nil
}
