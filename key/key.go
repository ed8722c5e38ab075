package key

import (
	"fmt"

	"github.com/johnfelipe/HarmonyLab/theory"
	"github.com/johnfelipe/HarmonyLab/util"
)

// Degree is one entry of a key's diatonic frame.
type Degree struct {
	PC         theory.PitchClass
	Letter     theory.Letter
	Accidental theory.Accidental
}

func (d Degree) Spelling() theory.Spelling {
	return theory.Spelling{Letter: d.Letter, Accidental: d.Accidental}
}

// Signature is an immutable key signature: tonic, mode and the 7-step
// diatonic frame. A key change replaces the whole value.
type Signature struct {
	tonic theory.PitchClass
	mode  theory.Mode
	frame [7]Degree
	short string
}

func (s *Signature) Tonic() theory.PitchClass { return s.tonic }
func (s *Signature) Mode() theory.Mode        { return s.mode }
func (s *Signature) Frame() [7]Degree         { return s.frame }
func (s *Signature) ShortName() string        { return s.short }

// DegreeOf returns the frame index (0-6) of a diatonic pitch class.
func (s *Signature) DegreeOf(pc theory.PitchClass) (int, bool) {
	for i, d := range s.frame {
		if d.PC == pc {
			return i, true
		}
	}
	return 0, false
}

func (s *Signature) IsDiatonic(pc theory.PitchClass) bool {
	_, ok := s.DegreeOf(pc)
	return ok
}

var majorSteps = [7]int{0, 2, 4, 5, 7, 9, 11}
var minorSteps = [7]int{0, 2, 3, 5, 7, 8, 10}

// Build derives a full signature from a tonic spelling and mode. It fails
// loudly on tonics that would need double accidentals anywhere in the frame;
// an engine running with a broken frame would mislabel everything.
func Build(tonic theory.Spelling, mode theory.Mode, short string) (*Signature, error) {
	steps := majorSteps
	if mode == theory.Minor {
		steps = minorSteps
	}

	tonicPC := tonic.PitchClass()
	var frame [7]Degree
	for i := 0; i < 7; i++ {
		letter := theory.NextLetter(tonic.Letter, i)
		nat, ok := theory.NaturalPitchClass(letter)
		if !ok {
			return nil, fmt.Errorf("bad letter %q in frame for %v", letter, tonic)
		}
		pc := theory.PitchClass((int(tonicPC) + steps[i]) % 12)
		diff := (int(pc) - int(nat) + 12) % 12
		if diff > 6 {
			diff -= 12
		}
		// standard keys never need double accidentals in the frame
		if diff < -1 || diff > 1 {
			return nil, fmt.Errorf("key %v %v needs a double accidental on %c", tonic, mode, letter)
		}
		frame[i] = Degree{PC: pc, Letter: letter, Accidental: theory.Accidental(diff)}
	}

	if err := validate(frame, tonicPC); err != nil {
		return nil, err
	}

	return &Signature{tonic: tonicPC, mode: mode, frame: frame, short: short}, nil
}

func validate(frame [7]Degree, tonic theory.PitchClass) error {
	if frame[0].PC != tonic {
		return fmt.Errorf("frame tonic %v does not match %v", frame[0].PC, tonic)
	}
	seen := make(map[theory.PitchClass]bool)
	for i, d := range frame {
		if d.Spelling().PitchClass() != d.PC {
			return fmt.Errorf("degree %v spelling %v disagrees with pitch class %v", i+1, d.Spelling(), d.PC)
		}
		if seen[d.PC] {
			return fmt.Errorf("duplicate pitch class %v in frame", d.PC)
		}
		seen[d.PC] = true
	}
	return nil
}

type namedKey struct {
	tonic theory.Spelling
	mode  theory.Mode
}

// catalog holds the 15 major and 15 minor spellings. Major keys are named
// with an upper-case tonic, minor keys lower-case.
var catalog = map[string]namedKey{
	"C":  {theory.Spelling{Letter: 'C'}, theory.Major},
	"G":  {theory.Spelling{Letter: 'G'}, theory.Major},
	"D":  {theory.Spelling{Letter: 'D'}, theory.Major},
	"A":  {theory.Spelling{Letter: 'A'}, theory.Major},
	"E":  {theory.Spelling{Letter: 'E'}, theory.Major},
	"B":  {theory.Spelling{Letter: 'B'}, theory.Major},
	"F#": {theory.Spelling{Letter: 'F', Accidental: theory.Sharp}, theory.Major},
	"C#": {theory.Spelling{Letter: 'C', Accidental: theory.Sharp}, theory.Major},
	"F":  {theory.Spelling{Letter: 'F'}, theory.Major},
	"Bb": {theory.Spelling{Letter: 'B', Accidental: theory.Flat}, theory.Major},
	"Eb": {theory.Spelling{Letter: 'E', Accidental: theory.Flat}, theory.Major},
	"Ab": {theory.Spelling{Letter: 'A', Accidental: theory.Flat}, theory.Major},
	"Db": {theory.Spelling{Letter: 'D', Accidental: theory.Flat}, theory.Major},
	"Gb": {theory.Spelling{Letter: 'G', Accidental: theory.Flat}, theory.Major},
	"Cb": {theory.Spelling{Letter: 'C', Accidental: theory.Flat}, theory.Major},

	"a":  {theory.Spelling{Letter: 'A'}, theory.Minor},
	"e":  {theory.Spelling{Letter: 'E'}, theory.Minor},
	"b":  {theory.Spelling{Letter: 'B'}, theory.Minor},
	"f#": {theory.Spelling{Letter: 'F', Accidental: theory.Sharp}, theory.Minor},
	"c#": {theory.Spelling{Letter: 'C', Accidental: theory.Sharp}, theory.Minor},
	"g#": {theory.Spelling{Letter: 'G', Accidental: theory.Sharp}, theory.Minor},
	"d#": {theory.Spelling{Letter: 'D', Accidental: theory.Sharp}, theory.Minor},
	"a#": {theory.Spelling{Letter: 'A', Accidental: theory.Sharp}, theory.Minor},
	"d":  {theory.Spelling{Letter: 'D'}, theory.Minor},
	"g":  {theory.Spelling{Letter: 'G'}, theory.Minor},
	"c":  {theory.Spelling{Letter: 'C'}, theory.Minor},
	"f":  {theory.Spelling{Letter: 'F'}, theory.Minor},
	"bb": {theory.Spelling{Letter: 'B', Accidental: theory.Flat}, theory.Minor},
	"eb": {theory.Spelling{Letter: 'E', Accidental: theory.Flat}, theory.Minor},
	"ab": {theory.Spelling{Letter: 'A', Accidental: theory.Flat}, theory.Minor},
}

// Named looks up a signature by its short name ("C", "f#", "Eb", "bb").
func Named(name string) (*Signature, error) {
	nk, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("unknown key %q: %w", name, theory.ErrInvalidArgument)
	}
	sig, err := Build(nk.tonic, nk.mode, name)
	if err != nil {
		// catalog entries are all buildable; a failure here is a table bug
		panic("Could not build key " + name + ": " + err.Error())
	}
	return sig, nil
}

// Names returns every short name in the catalog, sorted.
func Names() []string {
	return util.SortedKeys(catalog)
}
