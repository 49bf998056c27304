package note

import (
	"fmt"
)

// Letter is a note letter, ordered C through B
type Letter uint8

const (
	LetterC Letter = iota
	LetterD
	LetterE
	LetterF
	LetterG
	LetterA
	LetterB
	letterCount
)

// Semitone class of each natural letter
var letterClass = [letterCount]Name{C, D, E, F, G, A, B}

var letterText = [letterCount]string{"C", "D", "E", "F", "G", "A", "B"}

// Next returns the following letter, B wraps to C
func (l Letter) Next() Letter {
	return (l + 1) % letterCount
}

// Previous returns the preceding letter, C wraps to B
func (l Letter) Previous() Letter {
	return (l + letterCount - 1) % letterCount
}

// Name returns the natural pitch class of the letter
func (l Letter) Name() Name {
	return letterClass[l%letterCount]
}

func (l Letter) String() string {
	return letterText[l%letterCount]
}

// Accidental is a single sharp or flat, or none
type Accidental uint8

const (
	Natural Accidental = iota
	Sharp
	Flat
)

func (a Accidental) String() string {
	switch a {
	case Sharp:
		return "♯"
	case Flat:
		return "♭"
	default:
		return ""
	}
}

// Semitones returns the pitch shift applied by the accidental
func (a Accidental) Semitones() int {
	switch a {
	case Sharp:
		return 1
	case Flat:
		return -1
	default:
		return 0
	}
}

// Spelling is one written form of a pitch class, e.g. C♯ or D♭
type Spelling struct {
	Letter     Letter
	Accidental Accidental
}

// NewSpelling validates a letter/accidental pair.
// E♯, B♯, C♭ and F♭ have no single-accidental identity here and are rejected.
func NewSpelling(l Letter, a Accidental) (Spelling, error) {
	if l >= letterCount {
		return Spelling{}, fmt.Errorf("%w: letter %d out of range", ErrArgument, l)
	}
	switch a {
	case Natural:
	case Sharp:
		if l == LetterE || l == LetterB {
			return Spelling{}, fmt.Errorf("%w: incorrect accidental %s%s", ErrArgument, l, a)
		}
	case Flat:
		if l == LetterC || l == LetterF {
			return Spelling{}, fmt.Errorf("%w: incorrect accidental %s%s", ErrArgument, l, a)
		}
	default:
		return Spelling{}, fmt.Errorf("%w: accidental %d out of range", ErrArgument, a)
	}
	return Spelling{Letter: l, Accidental: a}, nil
}

// Name returns the pitch class the spelling denotes
func (s Spelling) Name() Name {
	return s.Letter.Name().Transpose(s.Accidental.Semitones())
}

// Enharmonic returns the other spelling of the same class, C♯ <-> D♭.
// Naturals are returned unchanged.
func (s Spelling) Enharmonic() Spelling {
	switch s.Accidental {
	case Sharp:
		return Spelling{Letter: s.Letter.Next(), Accidental: Flat}
	case Flat:
		return Spelling{Letter: s.Letter.Previous(), Accidental: Sharp}
	default:
		return s
	}
}

func (s Spelling) String() string {
	return s.Letter.String() + s.Accidental.String()
}
