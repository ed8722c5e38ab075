package analysis

import (
	"github.com/johnfelipe/HarmonyLab/chord"
	"github.com/johnfelipe/HarmonyLab/config"
	"github.com/johnfelipe/HarmonyLab/degree"
	"github.com/johnfelipe/HarmonyLab/interval"
	"github.com/johnfelipe/HarmonyLab/key"
	"github.com/johnfelipe/HarmonyLab/model"
	"github.com/johnfelipe/HarmonyLab/spell"
	"github.com/johnfelipe/HarmonyLab/theory"
)

// Analyze runs the analyzers enabled by cfg over one snapshot of sounding
// notes. It is a pure function of (notes, key, cfg): no state, no I/O, and
// "nothing recognized" shows up as absent fields, never as an error.
func Analyze(notes []theory.Note, sig *key.Signature, cfg config.Config) model.Analysis {
	res := model.Analysis{Key: sig.ShortName()}
	if !cfg.Enabled || len(notes) == 0 {
		return res
	}

	for _, n := range notes {
		label := model.NoteLabel{Note: n}
		sp, octave := spell.Note(n, sig)
		if cfg.Modes.NoteNames {
			label.Name = spell.Scientific(sp, octave)
		}
		if cfg.Modes.Helmholtz {
			label.Helmholtz = spell.Helmholtz(sp, octave)
		}
		// degree and solfège labels apply to single notes only
		if len(notes) == 1 {
			if cfg.Modes.ScaleDegrees {
				label.Degree = degree.Caret(n, sig, cfg.TieBreak).String()
			}
			if cfg.Modes.Solfege {
				label.Solfege = degree.Solfege(n, sig, cfg.TieBreak)
			}
		}
		res.Notes = append(res.Notes, label)
	}

	if cfg.Modes.Intervals && len(notes) == 2 {
		if iv := interval.Name(notes[0], notes[1], sig); iv != nil {
			res.Interval = iv.Label()
		}
	}

	if cfg.Modes.RomanNumerals {
		if m := chord.Find(notes, sig); m != nil {
			res.Chord = &model.ChordLabel{
				Root:    m.RootName,
				Quality: m.Quality,
				Numeral: m.Numeral,
				Figure:  m.Figure,
			}
		}
	}

	return res
}
