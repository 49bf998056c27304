// Package note names the twelve pitch classes of the equal-tempered octave.
package note

import (
	"fmt"
)

// Name is a pitch class, C-based: C = 0 ... B = 11
type Name uint8

const (
	C Name = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

// Flat aliases
const (
	DFlat = CSharp
	EFlat = DSharp
	GFlat = FSharp
	AFlat = GSharp
	BFlat = ASharp
)

// Count is the number of pitch classes in an octave
const Count = 12

var sharpSpellings = [Count]Spelling{
	{LetterC, Natural}, {LetterC, Sharp},
	{LetterD, Natural}, {LetterD, Sharp},
	{LetterE, Natural},
	{LetterF, Natural}, {LetterF, Sharp},
	{LetterG, Natural}, {LetterG, Sharp},
	{LetterA, Natural}, {LetterA, Sharp},
	{LetterB, Natural},
}

var flatSpellings = [Count]Spelling{
	{LetterC, Natural}, {LetterD, Flat},
	{LetterD, Natural}, {LetterE, Flat},
	{LetterE, Natural},
	{LetterF, Natural}, {LetterG, Flat},
	{LetterG, Natural}, {LetterA, Flat},
	{LetterA, Natural}, {LetterB, Flat},
	{LetterB, Natural},
}

// NameOf returns the pitch class at index i, which must lie in 0..11
func NameOf(i int) (Name, error) {
	if i < 0 || i >= Count {
		return 0, fmt.Errorf("%w: pitch class index %d not in 0..11", ErrArgument, i)
	}
	return Name(i), nil
}

// Wrap reduces any integer to a pitch class, negative values included
func Wrap(i int) Name {
	return Name(((i % Count) + Count) % Count)
}

// Names returns all pitch classes in ascending order from C
func Names() []Name {
	names := make([]Name, Count)
	for i := range names {
		names[i] = Name(i)
	}
	return names
}

// Index returns the class index in 0..11
func (n Name) Index() int {
	return int(n % Count)
}

// Transpose moves the class by a number of semitones, wrapping at the octave
func (n Name) Transpose(semitones int) Name {
	return Wrap(n.Index() + semitones)
}

// Natural reports whether the class has a spelling without accidental
func (n Name) Natural() bool {
	return sharpSpellings[n.Index()].Accidental == Natural
}

// Spelling returns the canonical spelling, sharps preferred
func (n Name) Spelling() Spelling {
	return sharpSpellings[n.Index()]
}

// FlatSpelling returns the flat-preferred spelling
func (n Name) FlatSpelling() Spelling {
	return flatSpellings[n.Index()]
}

// Sharp returns the sharp-preferred spelling text, e.g. "C♯"
func (n Name) Sharp() string {
	return n.Spelling().String()
}

// Flat returns the flat-preferred spelling text, e.g. "D♭"
func (n Name) Flat() string {
	return n.FlatSpelling().String()
}

// String returns the canonical display text: "C" for naturals, "C♯/D♭" otherwise
func (n Name) String() string {
	if n.Natural() {
		return n.Sharp()
	}
	return n.Sharp() + "/" + n.Flat()
}
