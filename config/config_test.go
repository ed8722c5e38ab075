package config

import (
	"testing"

	"github.com/johnfelipe/HarmonyLab/degree"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load()

	assert := assert.New(t)
	assert.NoError(err)
	assert.True(cfg.Enabled)
	assert.Equal("C", cfg.Key)
	assert.Equal(degree.TieLower, cfg.TieBreak)
	assert.True(cfg.Modes.NoteNames)
	assert.True(cfg.Modes.Intervals)
	assert.True(cfg.Modes.RomanNumerals)
	assert.False(cfg.Modes.Helmholtz)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HARMONY_KEY", "f#")
	t.Setenv("HARMONY_DISPLAY", "helmholtz,solfege")
	t.Setenv("HARMONY_ANALYSIS", "off")
	t.Setenv("HARMONY_TIEBREAK", "upper")

	cfg, err := Load()

	assert := assert.New(t)
	assert.NoError(err)
	assert.False(cfg.Enabled)
	assert.Equal("f#", cfg.Key)
	assert.Equal(degree.TieUpper, cfg.TieBreak)
	assert.True(cfg.Modes.Helmholtz)
	assert.True(cfg.Modes.Solfege)
	assert.False(cfg.Modes.NoteNames)
}

func TestUnknownDisplayModeFailsAtLoad(t *testing.T) {
	t.Setenv("HARMONY_DISPLAY", "note_names,klingon")
	_, err := Load()
	assert.Error(t, err)
}

func TestBadTieBreakFailsAtLoad(t *testing.T) {
	t.Setenv("HARMONY_TIEBREAK", "sideways")
	_, err := Load()
	assert.Error(t, err)
}

func TestParseModesSkipsEmptyNames(t *testing.T) {
	m, err := ParseModes([]string{"intervals", "", " roman_numerals "})

	assert := assert.New(t)
	assert.NoError(err)
	assert.True(m.Intervals)
	assert.True(m.RomanNumerals)
}
