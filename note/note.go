package note

import (
	"fmt"

	"github.com/jsphweid/chordpad/util"
	"github.com/pkg/errors"
)

// PitchClass is one of the 12 note identities, C=0 through B=11.
type PitchClass uint8

const (
	C PitchClass = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

const NumPitchClasses = 12

var ErrUnknownNote = errors.New("unknown note")

var sharpNames = [NumPitchClasses]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [NumPitchClasses]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// spellings holds all 17 display spellings
var spellings map[string]PitchClass

func init() {
	spellings = make(map[string]PitchClass, 17)
	for i := range sharpNames {
		spellings[sharpNames[i]] = PitchClass(i)
		spellings[flatNames[i]] = PitchClass(i)
	}
}

// All returns the 12 pitch classes starting at C.
func All() []PitchClass {
	res := make([]PitchClass, NumPitchClasses)
	for i := range res {
		res[i] = PitchClass(i)
	}
	return res
}

func Parse(s string) (PitchClass, error) {
	p, ok := spellings[s]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownNote, "%q", s)
	}
	return p, nil
}

// Spellings returns every accepted display spelling, sharps first.
func Spellings() []string {
	res := append([]string{}, sharpNames[:]...)
	for i, name := range flatNames {
		if name != sharpNames[i] {
			res = append(res, name)
		}
	}
	return res
}

func ToFlat(s string) (string, error) {
	p, err := Parse(s)
	if err != nil {
		return "", err
	}
	return p.Flat(), nil
}

func ToSharp(s string) (string, error) {
	p, err := Parse(s)
	if err != nil {
		return "", err
	}
	return p.Sharp(), nil
}

func (p PitchClass) Sharp() string {
	return sharpNames[p%NumPitchClasses]
}

func (p PitchClass) Flat() string {
	return flatNames[p%NumPitchClasses]
}

func (p PitchClass) Name(useFlats bool) string {
	if useFlats {
		return p.Flat()
	}
	return p.Sharp()
}

func (p PitchClass) String() string {
	return p.Sharp()
}

// IsAccidental reports whether p sits on a black key.
func (p PitchClass) IsAccidental() bool {
	return sharpNames[p%NumPitchClasses] != flatNames[p%NumPitchClasses]
}

// Distance is the upward semitone distance from a to b, in [0, 11].
func Distance(a, b PitchClass) int {
	return util.Mod(int(b)-int(a), NumPitchClasses)
}

func Transpose(p PitchClass, semitones int) PitchClass {
	return PitchClass(util.Mod(int(p)+semitones, NumPitchClasses))
}

func FromPitch(pitch uint8) PitchClass {
	return PitchClass(pitch % NumPitchClasses)
}

// Spell names an absolute pitch with its octave, 60 being "C4".
func Spell(pitch uint8, useFlats bool) string {
	octave := int(pitch)/NumPitchClasses - 1
	return fmt.Sprintf("%v%v", FromPitch(pitch).Name(useFlats), octave)
}
