package analysis

import (
	"testing"

	"github.com/johnfelipe/HarmonyLab/config"
	"github.com/johnfelipe/HarmonyLab/degree"
	"github.com/johnfelipe/HarmonyLab/key"
	"github.com/johnfelipe/HarmonyLab/theory"
	"github.com/stretchr/testify/assert"
)

func allModes() config.Config {
	return config.Config{
		Enabled: true,
		Modes: config.DisplayModes{
			NoteNames:     true,
			Helmholtz:     true,
			ScaleDegrees:  true,
			Solfege:       true,
			Intervals:     true,
			RomanNumerals: true,
		},
		Key:      "C",
		TieBreak: degree.TieLower,
	}
}

func TestSingleNoteGetsEveryLabel(t *testing.T) {
	sig, _ := key.Named("C")
	a := Analyze([]theory.Note{62}, sig, allModes())

	assert := assert.New(t)
	assert.Equal("C", a.Key)
	assert.Equal(1, len(a.Notes))
	assert.Equal("D4", a.Notes[0].Name)
	assert.Equal("d'", a.Notes[0].Helmholtz)
	assert.Equal("^2", a.Notes[0].Degree)
	assert.Equal("re", a.Notes[0].Solfege)
	assert.Empty(a.Interval)
	assert.Nil(a.Chord)
}

func TestTwoNotesGetAnInterval(t *testing.T) {
	sig, _ := key.Named("C")
	a := Analyze([]theory.Note{60, 67}, sig, allModes())

	assert := assert.New(t)
	assert.Equal("perfect fifth", a.Interval)
	// degree and solfège are single-note displays
	for _, label := range a.Notes {
		assert.Empty(label.Degree)
		assert.Empty(label.Solfege)
	}
}

func TestTriadGetsAChord(t *testing.T) {
	sig, _ := key.Named("C")
	a := Analyze([]theory.Note{60, 64, 67}, sig, allModes())

	assert := assert.New(t)
	assert.NotNil(a.Chord)
	assert.Equal("I", a.Chord.Numeral)
	assert.Equal("", a.Chord.Figure)
	assert.Equal("C", a.Chord.Root)
	assert.Empty(a.Interval)
}

func TestUnrecognizedClusterIsQuietlyEmpty(t *testing.T) {
	sig, _ := key.Named("C")
	a := Analyze([]theory.Note{60, 61, 62}, sig, allModes())

	assert := assert.New(t)
	assert.Nil(a.Chord)
	assert.Empty(a.Interval)
	assert.Equal(3, len(a.Notes))
}

func TestDisabledModesProduceNoLabels(t *testing.T) {
	sig, _ := key.Named("C")
	cfg := allModes()
	cfg.Modes = config.DisplayModes{NoteNames: true}

	a := Analyze([]theory.Note{60, 64, 67}, sig, cfg)

	assert := assert.New(t)
	assert.Nil(a.Chord)
	assert.Equal("C4", a.Notes[0].Name)
	assert.Empty(a.Notes[0].Helmholtz)
}

func TestDisabledAnalysisReturnsOnlyTheKey(t *testing.T) {
	sig, _ := key.Named("C")
	cfg := allModes()
	cfg.Enabled = false

	a := Analyze([]theory.Note{60, 64, 67}, sig, cfg)

	assert := assert.New(t)
	assert.Equal("C", a.Key)
	assert.Empty(a.Notes)
	assert.Nil(a.Chord)
}
