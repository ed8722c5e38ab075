package spell

import (
	"fmt"
	"strings"

	"github.com/johnfelipe/HarmonyLab/key"
	"github.com/johnfelipe/HarmonyLab/theory"
	"github.com/johnfelipe/HarmonyLab/util"
)

type candidate struct {
	spelling theory.Spelling
	dist     int // signed semitone distance to the frame step
	degree   int
}

// Spell names a pitch class in the context of a key. Diatonic tones take
// their frame spelling verbatim. Chromatic tones borrow the letter of the
// nearest diatonic step (ties resolve toward the step below) and carry
// whatever accidental reaches the target from that letter, avoiding double
// accidentals whenever a single-accidental spelling exists.
func Spell(pc theory.PitchClass, sig *key.Signature) theory.Spelling {
	frame := sig.Frame()
	if i, ok := sig.DegreeOf(pc); ok {
		return frame[i].Spelling()
	}

	var cands []candidate
	for i, d := range frame {
		delta := signedDiff(int(pc), int(d.PC))
		nat, _ := theory.NaturalPitchClass(d.Letter)
		acc := signedDiff(int(pc), int(nat))
		if acc < -2 || acc > 2 {
			continue
		}
		cands = append(cands, candidate{
			spelling: theory.Spelling{Letter: d.Letter, Accidental: theory.Accidental(acc)},
			dist:     delta,
			degree:   i,
		})
	}

	best := cands[0]
	for _, c := range cands[1:] {
		if better(c, best) {
			best = c
		}
	}
	return best.spelling
}

func better(a, b candidate) bool {
	aDouble := util.Abs(int(a.spelling.Accidental)) > 1
	bDouble := util.Abs(int(b.spelling.Accidental)) > 1
	if aDouble != bDouble {
		return !aDouble
	}
	if util.Abs(a.dist) != util.Abs(b.dist) {
		return util.Abs(a.dist) < util.Abs(b.dist)
	}
	// tie: prefer the step below the target (positive distance)
	if (a.dist > 0) != (b.dist > 0) {
		return a.dist > 0
	}
	return a.degree < b.degree
}

// signedDiff reduces a-b to the signed interval in (-6, 6].
func signedDiff(a, b int) int {
	d := ((a-b)%12 + 12) % 12
	if d > 6 {
		d -= 12
	}
	return d
}

// Note spells a full note, returning the spelling and the octave the
// spelled letter belongs to. The letter octave shifts across the C boundary
// when the accidental wraps (B#3 sounds as 60, Cb4 sounds as 59).
func Note(n theory.Note, sig *key.Signature) (theory.Spelling, int) {
	sp := Spell(theory.PC(n), sig)
	octave := theory.Octave(n)
	nat, _ := theory.NaturalPitchClass(sp.Letter)
	raw := int(theory.PC(n)) - int(nat)
	if raw > 6 {
		octave++
	} else if raw < -6 {
		octave--
	}
	return sp, octave
}

// Helmholtz renders a spelled note in Helmholtz pitch notation: lower-case
// with apostrophes from the small octave (scientific 3) upward, upper-case
// with commas below.
func Helmholtz(sp theory.Spelling, octave int) string {
	acc := sp.Accidental.String()
	if octave >= 3 {
		letter := strings.ToLower(string(sp.Letter))
		return letter + acc + strings.Repeat("'", octave-3)
	}
	return string(sp.Letter) + acc + strings.Repeat(",", 2-octave)
}

// Scientific renders a spelled note with its octave number, e.g. "F#4".
func Scientific(sp theory.Spelling, octave int) string {
	return fmt.Sprintf("%s%d", sp, octave)
}
