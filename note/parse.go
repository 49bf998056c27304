package note

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Normalize folds compatibility forms (full-width letters and signs) and trims
// surrounding space
func Normalize(text string) string {
	return strings.TrimSpace(norm.NFKC.String(text))
}

// Parse reads a pitch class from text such as "C", "c#", "Db", "C♯", "D♭" or the
// canonical display form "C♯/D♭". The letter is case-insensitive.
func Parse(text string) (Name, error) {
	s := Normalize(text)
	if first, second, ok := strings.Cut(s, "/"); ok {
		a, err := ParseSpelling(first)
		if err != nil {
			return 0, err
		}
		b, err := ParseSpelling(second)
		if err != nil {
			return 0, err
		}
		if a.Name() != b.Name() {
			return 0, fmt.Errorf("%w: %q: %s and %s are not enharmonic", ErrParse, text, a, b)
		}
		return a.Name(), nil
	}

	sp, err := ParseSpelling(s)
	if err != nil {
		return 0, err
	}
	return sp.Name(), nil
}

// ParseSpelling reads a single spelling and keeps it as written
func ParseSpelling(text string) (Spelling, error) {
	sp, rest, err := Scan(text)
	if err != nil {
		return Spelling{}, err
	}
	if rest != "" {
		return Spelling{}, fmt.Errorf("%w: %q: incorrect accidental %q", ErrParse, text, rest)
	}
	return sp, nil
}

// Scan reads a spelling from the start of text and returns the unread remainder.
// Used by parsers of larger forms such as "C#4".
func Scan(text string) (Spelling, string, error) {
	s := Normalize(text)
	if s == "" {
		return Spelling{}, "", fmt.Errorf("%w: empty note name", ErrParse)
	}

	r, size := utf8.DecodeRuneInString(s)
	letter, ok := letterOf(r)
	if !ok {
		return Spelling{}, "", fmt.Errorf("%w: %q: incorrect letter %q", ErrParse, text, r)
	}
	rest := s[size:]

	acc := Natural
	if r, size := utf8.DecodeRuneInString(rest); size > 0 {
		switch r {
		case '#', '♯':
			acc = Sharp
			rest = rest[size:]
		case 'b', 'B', '♭':
			acc = Flat
			rest = rest[size:]
		case '♮':
			rest = rest[size:]
		}
	}

	sp, err := NewSpelling(letter, acc)
	if err != nil {
		return Spelling{}, "", fmt.Errorf("%w: %q: incorrect accidental", ErrParse, text)
	}
	return sp, rest, nil
}

func letterOf(r rune) (Letter, bool) {
	switch unicode.ToUpper(r) {
	case 'C':
		return LetterC, true
	case 'D':
		return LetterD, true
	case 'E':
		return LetterE, true
	case 'F':
		return LetterF, true
	case 'G':
		return LetterG, true
	case 'A':
		return LetterA, true
	case 'B':
		return LetterB, true
	default:
		return 0, false
	}
}
