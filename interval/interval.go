package interval

import (
	"github.com/johnfelipe/HarmonyLab/key"
	"github.com/johnfelipe/HarmonyLab/spell"
	"github.com/johnfelipe/HarmonyLab/theory"
)

type Interval struct {
	Semitones int
	Steps     int // diatonic letter steps between the spelled notes
	Quality   string
	Name      string
	Compound  bool
}

// Label is the display string, with the compound marker when the interval
// spans more than an octave.
func (iv *Interval) Label() string {
	if iv.Compound {
		return "compound " + iv.Quality + " " + iv.Name
	}
	return iv.Quality + " " + iv.Name
}

type shape struct {
	quality string
	name    string
}

// keyed by (semitones mod 12, steps mod 7)
var table = map[[2]int]shape{
	{0, 0}:  {"perfect", "octave"},
	{1, 0}:  {"augmented", "unison"},
	{11, 0}: {"diminished", "octave"},
	{1, 1}:  {"minor", "second"},
	{2, 1}:  {"major", "second"},
	{3, 1}:  {"augmented", "second"},
	{2, 2}:  {"diminished", "third"},
	{3, 2}:  {"minor", "third"},
	{4, 2}:  {"major", "third"},
	{4, 3}:  {"diminished", "fourth"},
	{5, 3}:  {"perfect", "fourth"},
	{6, 3}:  {"augmented", "fourth"},
	{6, 4}:  {"diminished", "fifth"},
	{7, 4}:  {"perfect", "fifth"},
	{8, 4}:  {"augmented", "fifth"},
	{7, 5}:  {"diminished", "sixth"},
	{8, 5}:  {"minor", "sixth"},
	{9, 5}:  {"major", "sixth"},
	{10, 5}: {"augmented", "sixth"},
	{9, 6}:  {"diminished", "seventh"},
	{10, 6}: {"minor", "seventh"},
	{11, 6}: {"major", "seventh"},
}

// Name identifies the interval between two distinct notes in the context of
// a key. The semitone distance is left unfolded so compound intervals stay
// distinct from simple ones; the step count comes from the key-aware
// spellings, since quality depends on diatonic position, not semitones
// alone. Unrecognized combinations return nil, which callers treat as
// "nothing to display".
func Name(low, high theory.Note, sig *key.Signature) *Interval {
	if low == high {
		// zero semitones is not a recognized interval
		return nil
	}
	if low > high {
		low, high = high, low
	}

	semitones := int(high) - int(low)

	lowSp, lowOct := spell.Note(low, sig)
	highSp, highOct := spell.Note(high, sig)
	lowIdx := lowOct*7 + theory.Step(lowSp.Letter)
	highIdx := highOct*7 + theory.Step(highSp.Letter)
	steps := highIdx - lowIdx

	sh, ok := table[[2]int{semitones % 12, ((steps % 7) + 7) % 7}]
	if !ok {
		return nil
	}

	compound := semitones > 12
	if sh.name == "unison" && steps >= 7 {
		// C4 to C#5 is an augmented octave, not a wrapped unison
		sh = shape{sh.quality, "octave"}
		compound = steps > 7
	}

	return &Interval{
		Semitones: semitones,
		Steps:     steps,
		Quality:   sh.quality,
		Name:      sh.name,
		Compound:  compound,
	}
}
