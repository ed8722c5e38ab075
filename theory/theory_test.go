package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPitchClassAndOctave(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(PitchClass(0), PC(60))
	assert.Equal(4, Octave(60))
	assert.Equal(PitchClass(9), PC(21))
	assert.Equal(0, Octave(21))
	assert.Equal(PitchClass(7), PC(127))
	assert.Equal(9, Octave(127))
}

func TestSpellingPitchClass(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(PitchClass(6), Spelling{Letter: 'F', Accidental: Sharp}.PitchClass())
	assert.Equal(PitchClass(10), Spelling{Letter: 'B', Accidental: Flat}.PitchClass())
	assert.Equal(PitchClass(0), Spelling{Letter: 'B', Accidental: Sharp}.PitchClass())
	assert.Equal(PitchClass(11), Spelling{Letter: 'C', Accidental: Flat}.PitchClass())
}

func TestSpellingString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Eb", Spelling{Letter: 'E', Accidental: Flat}.String())
	assert.Equal("G", Spelling{Letter: 'G'}.String())
	assert.Equal("F##", Spelling{Letter: 'F', Accidental: DoubleSharp}.String())
}

func TestNextLetter(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Letter('D'), NextLetter('C', 1))
	assert.Equal(Letter('C'), NextLetter('B', 1))
	assert.Equal(Letter('A'), NextLetter('C', 5))
}
