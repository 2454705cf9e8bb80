package scale

import (
	"fmt"
	"testing"

	"github.com/jsphweid/chordpad/note"
	"github.com/stretchr/testify/assert"
)

func TestRestrictedModesHaveSevenAscendingNotes(t *testing.T) {
	for _, m := range Modes() {
		if m == Free {
			continue
		}
		for _, root := range note.All() {
			t.Run(fmt.Sprintf("%v %v", root, m), func(t *testing.T) {
				assert := assert.New(t)
				notes := Notes(root, m)
				assert.Len(notes, 7)
				assert.Equal(root, notes[0])
				prev := -1
				for i, n := range notes {
					d := note.Distance(root, n)
					assert.Greater(d, prev)
					prev = d
					degree, ok := Degree(root, m, n)
					assert.True(ok)
					assert.Equal(i+1, degree)
				}
			})
		}
	}
}

func TestFreeModeIsChromatic(t *testing.T) {
	assert := assert.New(t)
	notes := Notes(note.A, Free)
	assert.Len(notes, 12)
	for _, p := range note.All() {
		assert.True(Contains(note.A, Free, p))
	}
}

func TestCMajorScale(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]note.PitchClass{note.C, note.D, note.E, note.F, note.G, note.A, note.B}, Notes(note.C, Major))
	assert.False(Contains(note.C, Major, note.CSharp))
	degree, ok := Degree(note.C, Major, note.G)
	assert.True(ok)
	assert.Equal(5, degree)
}

func TestAMinorSharesNotesWithCMajor(t *testing.T) {
	assert := assert.New(t)
	assert.ElementsMatch(Notes(note.C, Major), Notes(note.A, Minor))
}

func TestParseMode(t *testing.T) {
	assert := assert.New(t)
	for _, m := range Modes() {
		parsed, err := ParseMode(m.String())
		assert.NoError(err)
		assert.Equal(m, parsed)
	}
	m, err := ParseMode("Mixolydian")
	assert.NoError(err)
	assert.Equal(Mixolydian, m)
	_, err = ParseMode("blues")
	assert.ErrorIs(err, ErrUnknownMode)
}
