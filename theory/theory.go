package theory

import "errors"

// ErrInvalidArgument is returned for malformed clef names, wrong arity and
// similar caller mistakes. No-match conditions are nil results, not errors.
var ErrInvalidArgument = errors.New("invalid argument")

// Note is a MIDI-style note number in [0,127].
type Note = uint8

// PitchClass is a note identity reduced mod 12 (0 = C).
type PitchClass = uint8

func PC(n Note) PitchClass {
	return n % 12
}

// Octave returns the scientific octave of a note (60 -> 4).
func Octave(n Note) int {
	return int(n)/12 - 1
}

type Mode int

const (
	Major Mode = iota
	Minor
)

func (m Mode) String() string {
	if m == Minor {
		return "minor"
	}
	return "major"
}

// Letter is a diatonic letter name 'A'..'G'.
type Letter byte

var naturals = map[Letter]PitchClass{
	'C': 0,
	'D': 2,
	'E': 4,
	'F': 5,
	'G': 7,
	'A': 9,
	'B': 11,
}

// letter step positions within an octave starting at C
var letterSteps = map[Letter]int{
	'C': 0,
	'D': 1,
	'E': 2,
	'F': 3,
	'G': 4,
	'A': 5,
	'B': 6,
}

func NaturalPitchClass(l Letter) (PitchClass, bool) {
	pc, ok := naturals[l]
	return pc, ok
}

// Step returns the letter's position in the C..B cycle (C=0 .. B=6).
func Step(l Letter) int {
	return letterSteps[l]
}

// NextLetter returns the letter n diatonic steps above l.
func NextLetter(l Letter, n int) Letter {
	order := []Letter{'C', 'D', 'E', 'F', 'G', 'A', 'B'}
	return order[(letterSteps[l]+n)%7]
}

// Accidental is a signed semitone adjustment to a letter's natural pitch.
type Accidental int

const (
	DoubleFlat  Accidental = -2
	Flat        Accidental = -1
	Natural     Accidental = 0
	Sharp       Accidental = 1
	DoubleSharp Accidental = 2
)

func (a Accidental) String() string {
	switch a {
	case DoubleFlat:
		return "bb"
	case Flat:
		return "b"
	case Sharp:
		return "#"
	case DoubleSharp:
		return "##"
	}
	return ""
}

// Spelling is a letter plus accidental, e.g. F# or Bb.
type Spelling struct {
	Letter     Letter
	Accidental Accidental
}

func (s Spelling) PitchClass() PitchClass {
	nat := int(naturals[s.Letter])
	return PitchClass(((nat+int(s.Accidental))%12 + 12) % 12)
}

func (s Spelling) String() string {
	return string(s.Letter) + s.Accidental.String()
}
