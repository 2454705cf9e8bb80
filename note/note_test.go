package note

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestSpellingsCoverSeventeenNames(t *testing.T) {
	assert := assert.New(t)
	assert.Len(Spellings(), 17)
	for _, s := range Spellings() {
		_, err := Parse(s)
		assert.NoError(err)
	}
}

func TestSharpFlatRoundTrip(t *testing.T) {
	for _, s := range Spellings() {
		t.Run(fmt.Sprintf("round trip for %v", s), func(t *testing.T) {
			assert := assert.New(t)
			flat, err := ToFlat(s)
			assert.NoError(err)
			viaFlat, err := ToSharp(flat)
			assert.NoError(err)
			direct, err := ToSharp(s)
			assert.NoError(err)
			assert.Equal(direct, viaFlat)

			again, _ := ToFlat(flat)
			assert.Equal(flat, again)
		})
	}
}

func TestEnharmonicPairsShareAPitchClass(t *testing.T) {
	assert := assert.New(t)
	pairs := [][2]string{{"C#", "Db"}, {"D#", "Eb"}, {"F#", "Gb"}, {"G#", "Ab"}, {"A#", "Bb"}}
	for _, pair := range pairs {
		a, _ := Parse(pair[0])
		b, _ := Parse(pair[1])
		assert.Equal(a, b)
		assert.True(a.IsAccidental())
	}
	assert.False(E.IsAccidental())
}

func TestParseRejectsUnknownSpellings(t *testing.T) {
	for _, s := range []string{"", "H", "Cb", "E#", "c", "C##"} {
		_, err := Parse(s)
		assert.True(t, errors.Is(err, ErrUnknownNote), s)
	}
}

func TestDistance(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, Distance(C, C))
	assert.Equal(7, Distance(C, G))
	assert.Equal(5, Distance(G, C))
	assert.Equal(11, Distance(CSharp, C))
	for _, a := range All() {
		for _, b := range All() {
			d := Distance(a, b)
			assert.True(d >= 0 && d < 12)
			assert.Equal(b, Transpose(a, d))
		}
	}
}

func TestNameUsesFlatsWhenAsked(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Db", CSharp.Name(true))
	assert.Equal("C#", CSharp.Name(false))
	assert.Equal("C4", Spell(60, false))
	assert.Equal("Bb2", Spell(46, true))
}
