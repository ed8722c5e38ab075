package degree

import (
	"fmt"

	"github.com/johnfelipe/HarmonyLab/key"
	"github.com/johnfelipe/HarmonyLab/theory"
	"github.com/johnfelipe/HarmonyLab/util"
)

// TieBreak decides which step claims a chromatic tone equidistant between
// two diatonic steps. Lower is the default; the rule is configurable rather
// than hard-coded since either convention is defensible.
type TieBreak int

const (
	TieLower TieBreak = iota
	TieUpper
)

func ParseTieBreak(s string) (TieBreak, error) {
	switch s {
	case "lower":
		return TieLower, nil
	case "upper":
		return TieUpper, nil
	}
	return TieLower, fmt.Errorf("unknown tie-break %q: %w", s, theory.ErrInvalidArgument)
}

// Result names a single note's scale degree. Alter is the chromatic
// adjustment relative to the claimed step: 0 diatonic, +1 raised, -1
// lowered.
type Result struct {
	Caret int // 1-7
	Alter int
}

func (r Result) Altered() bool {
	return r.Alter != 0
}

// String renders the caret numeral, e.g. "^4" or "#^4".
func (r Result) String() string {
	prefix := ""
	switch {
	case r.Alter > 0:
		prefix = "#"
	case r.Alter < 0:
		prefix = "b"
	}
	return fmt.Sprintf("%s^%d", prefix, r.Caret)
}

// Caret maps one note to its scale degree in the key. Diatonic tones return
// their step unaltered; chromatic tones are charged to the nearest step and
// marked raised or lowered.
func Caret(n theory.Note, sig *key.Signature, tb TieBreak) Result {
	pc := theory.PC(n)
	if i, ok := sig.DegreeOf(pc); ok {
		return Result{Caret: i + 1}
	}
	step, alter := nearestStep(pc, sig, tb)
	return Result{Caret: step + 1, Alter: alter}
}

// nearestStep returns the frame index claiming pc and the signed alteration
// from that step. Natural scales never leave a chromatic tone more than one
// semitone from a step, so alter is always ±1.
func nearestStep(pc theory.PitchClass, sig *key.Signature, tb TieBreak) (int, int) {
	frame := sig.Frame()
	best, bestAbs := 0, 12
	for i, d := range frame {
		abs := util.Abs(signedDiff(int(pc), int(d.PC)))
		if abs < bestAbs || (abs == bestAbs && tb == TieUpper) {
			best, bestAbs = i, abs
		}
	}
	return best, signedDiff(int(pc), int(frame[best].PC))
}

func signedDiff(a, b int) int {
	d := ((a-b)%12 + 12) % 12
	if d > 6 {
		d -= 12
	}
	return d
}

// Solfège tables, do-based in both modes so the syllable tracks the caret.
var baseSyllables = map[theory.Mode][7]string{
	theory.Major: {"do", "re", "mi", "fa", "sol", "la", "ti"},
	theory.Minor: {"do", "re", "me", "fa", "sol", "le", "te"},
}

var raisedSyllables = map[theory.Mode]map[int]string{
	theory.Major: {1: "di", 2: "ri", 4: "fi", 5: "si", 6: "li"},
	theory.Minor: {1: "di", 2: "ri", 3: "mi", 4: "fi", 5: "si", 6: "la", 7: "ti"},
}

var loweredSyllables = map[theory.Mode]map[int]string{
	theory.Major: {1: "de", 2: "ra", 3: "me", 5: "se", 6: "le", 7: "te"},
	theory.Minor: {1: "de", 2: "ra", 4: "fe", 5: "se", 7: "ta"},
}

// Solfege returns the movable-do syllable for one note, with raised and
// lowered variants for altered degrees. Empty when no variant exists.
func Solfege(n theory.Note, sig *key.Signature, tb TieBreak) string {
	r := Caret(n, sig, tb)
	mode := sig.Mode()
	switch {
	case r.Alter > 0:
		return raisedSyllables[mode][r.Caret]
	case r.Alter < 0:
		return loweredSyllables[mode][r.Caret]
	}
	return baseSyllables[mode][r.Caret-1]
}
