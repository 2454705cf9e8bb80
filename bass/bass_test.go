package bass

import (
	"testing"

	"github.com/jsphweid/chordpad/chord"
	"github.com/jsphweid/chordpad/model"
	"github.com/jsphweid/chordpad/note"
	"github.com/stretchr/testify/assert"
)

func TestOffIsSilent(t *testing.T) {
	_, ok := Resolve(note.C, model.Notes{60, 64, 67}, Off)
	assert.False(t, ok)
}

func TestRootBassOnCMajor(t *testing.T) {
	assert := assert.New(t)
	c, _ := chord.Build(note.C, chord.Major, 0, 0)
	pitch, ok := Resolve(c.Root, c.Notes, Root)
	assert.True(ok)
	assert.Equal(uint8(48), pitch)
}

func TestRootBassFollowsOctaveAndInversion(t *testing.T) {
	assert := assert.New(t)
	c, _ := chord.Build(note.C, chord.Major, 1, 0)
	pitch, _ := Resolve(c.Root, c.Notes, Root)
	assert.Equal(uint8(60), pitch)

	// first inversion moves the root up to 72
	c, _ = chord.Build(note.C, chord.Major, 0, 1)
	pitch, _ = Resolve(c.Root, c.Notes, Root)
	assert.Equal(uint8(60), pitch)
}

func TestNumericOffsetsStayInFixedRegister(t *testing.T) {
	assert := assert.New(t)
	for octave := -2; octave <= 2; octave++ {
		c, _ := chord.Build(note.C, chord.Major, octave, 0)
		pitch, ok := Resolve(c.Root, c.Notes, 4)
		assert.True(ok)
		assert.Equal(uint8(52), pitch)
	}
	pitch, _ := Resolve(note.A, nil, 5)
	assert.Equal(uint8(50), pitch)
	pitch, _ = Resolve(note.C, nil, -1)
	assert.Equal(uint8(59), pitch)
}

func TestParseAndString(t *testing.T) {
	assert := assert.New(t)
	for _, o := range order {
		parsed, err := ParseOffset(o.String())
		assert.NoError(err)
		assert.Equal(o, parsed)
	}
	_, err := ParseOffset("+6")
	assert.ErrorIs(err, ErrInvalidOffset)
	_, err = ParseOffset("-7")
	assert.ErrorIs(err, ErrInvalidOffset)
	_, err = ParseOffset("low")
	assert.ErrorIs(err, ErrInvalidOffset)
}

func TestControlStepping(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Offset(1), Root.Next())
	assert.Equal(Offset(-6), Offset(5).Next())
	assert.Equal(Off, Offset(-1).Next())
	assert.Equal(Root, Off.Next())
	assert.Equal(Off, Root.Prev())
}
