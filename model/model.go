package model

// Notes is a list of MIDI note numbers.
type Notes = []uint8

// NoteLabel carries every per-note label the display modes asked for.
type NoteLabel struct {
	Note      uint8  `json:"note"`
	Name      string `json:"name,omitempty"`
	Helmholtz string `json:"helmholtz,omitempty"`
	Degree    string `json:"degree,omitempty"`
	Solfege   string `json:"solfege,omitempty"`
}

type ChordLabel struct {
	Root    string `json:"root"`
	Quality string `json:"quality"`
	Numeral string `json:"numeral"`
	Figure  string `json:"figure,omitempty"`
}

// Analysis is one snapshot's worth of labels. Empty fields mean the
// corresponding analyzer found nothing or was not requested.
type Analysis struct {
	Key      string      `json:"key"`
	Notes    []NoteLabel `json:"notes,omitempty"`
	Interval string      `json:"interval,omitempty"`
	Chord    *ChordLabel `json:"chord,omitempty"`
}
