package interval

import (
	"testing"

	"github.com/johnfelipe/HarmonyLab/key"
	"github.com/stretchr/testify/assert"
)

func TestPerfectFifth(t *testing.T) {
	sig, _ := key.Named("C")
	iv := Name(60, 67, sig)

	assert := assert.New(t)
	assert.NotNil(iv)
	assert.Equal("perfect", iv.Quality)
	assert.Equal("fifth", iv.Name)
	assert.False(iv.Compound)
	assert.Equal("perfect fifth", iv.Label())
}

func TestSameNoteIsNotAnInterval(t *testing.T) {
	sig, _ := key.Named("C")
	assert.Nil(t, Name(60, 60, sig))
}

func TestArgumentOrderDoesNotMatter(t *testing.T) {
	sig, _ := key.Named("C")
	assert.Equal(t, Name(60, 67, sig), Name(67, 60, sig))
}

func TestMajorVersusMinorThird(t *testing.T) {
	sig, _ := key.Named("C")
	assert := assert.New(t)

	maj := Name(60, 64, sig)
	assert.Equal("major third", maj.Label())

	min := Name(64, 67, sig)
	assert.Equal("minor third", min.Label())
}

func TestDiminishedFourthNeedsSpelling(t *testing.T) {
	// B3 to Eb4 is 4 semitones like a major third, but the letters span
	// B..E, so it is a diminished fourth
	sig, _ := key.Named("c")
	iv := Name(59, 63, sig)

	assert := assert.New(t)
	assert.NotNil(iv)
	assert.Equal("diminished", iv.Quality)
	assert.Equal("fourth", iv.Name)
}

func TestTritoneSpellingDependsOnKey(t *testing.T) {
	assert := assert.New(t)

	// F to B: augmented fourth in C
	sig, _ := key.Named("C")
	iv := Name(65, 71, sig)
	assert.Equal("augmented fourth", iv.Label())

	// B to F: diminished fifth in C
	iv = Name(59, 65, sig)
	assert.Equal("diminished fifth", iv.Label())
}

func TestOctaveAndCompound(t *testing.T) {
	sig, _ := key.Named("C")
	assert := assert.New(t)

	octave := Name(60, 72, sig)
	assert.Equal("perfect octave", octave.Label())
	assert.False(octave.Compound)

	tenth := Name(60, 76, sig)
	assert.True(tenth.Compound)
	assert.Equal("compound major third", tenth.Label())

	ninth := Name(60, 74, sig)
	assert.Equal("compound major second", ninth.Label())
}

func TestAugmentedUnison(t *testing.T) {
	sig, _ := key.Named("C")
	iv := Name(60, 61, sig) // C4 to C#4
	assert.NotNil(t, iv)
	assert.Equal(t, "augmented unison", iv.Label())
}

func TestAugmentedOctave(t *testing.T) {
	sig, _ := key.Named("C")
	assert := assert.New(t)

	// C4 to C#5 spans an octave in letters, so it is not a unison at all
	iv := Name(60, 73, sig)
	assert.NotNil(iv)
	assert.Equal("augmented octave", iv.Label())
	assert.False(iv.Compound)
}
