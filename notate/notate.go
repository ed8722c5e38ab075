package notate

import (
	"fmt"

	"github.com/johnfelipe/HarmonyLab/key"
	"github.com/johnfelipe/HarmonyLab/noteset"
	"github.com/johnfelipe/HarmonyLab/spell"
	"github.com/johnfelipe/HarmonyLab/theory"
)

// Position places one spelled note on a stave, as letter-step offsets from
// the variant's middle line (positive = above).
type Position struct {
	Note     theory.Note
	Spelling theory.Spelling
	Octave   int
	Offset   int
	// Accidental to engrave in front of the note; nil when the key
	// signature already covers it.
	Accidental *theory.Accidental
}

// Variant is one clef's notation strategy. All variants share the same
// operation set; only the clef name and middle-line origin differ.
type Variant struct {
	Clef   string
	origin theory.Spelling
	octave int
}

var variants = map[string]Variant{
	noteset.Treble: {Clef: noteset.Treble, origin: theory.Spelling{Letter: 'B'}, octave: 4},
	noteset.Bass:   {Clef: noteset.Bass, origin: theory.Spelling{Letter: 'D'}, octave: 3},
}

// For selects the notation variant for a clef name.
func For(clef string) (*Variant, error) {
	v, ok := variants[clef]
	if !ok {
		return nil, fmt.Errorf("unknown clef %q: %w", clef, theory.ErrInvalidArgument)
	}
	return &v, nil
}

// VerticalPosition is the letter-step offset of a spelled note from the
// variant's middle line.
func (v *Variant) VerticalPosition(sp theory.Spelling, octave int) int {
	originIdx := v.octave*7 + theory.Step(v.origin.Letter)
	return octave*7 + theory.Step(sp.Letter) - originIdx
}

func (v *Variant) position(n theory.Note, sig *key.Signature) Position {
	sp, octave := spell.Note(n, sig)
	pos := Position{
		Note:     n,
		Spelling: sp,
		Octave:   octave,
		Offset:   v.VerticalPosition(sp, octave),
	}
	if !sig.IsDiatonic(theory.PC(n)) {
		acc := sp.Accidental
		pos.Accidental = &acc
	}
	return pos
}

// Chord places an explicit group of notes on this variant's stave.
func (v *Variant) Chord(notes []theory.Note, sig *key.Signature) []Position {
	res := make([]Position, 0, len(notes))
	for _, n := range notes {
		res = append(res, v.position(n, sig))
	}
	return res
}

// Stave places the sounding notes belonging to this variant's clef.
func (v *Variant) Stave(set *noteset.Set, sig *key.Signature) ([]Position, error) {
	notes, err := set.ForClef(v.Clef)
	if err != nil {
		return nil, err
	}
	return v.Chord(notes, sig), nil
}
