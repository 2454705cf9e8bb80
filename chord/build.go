package chord

import (
	"github.com/jsphweid/chordpad/constants"
	"github.com/jsphweid/chordpad/model"
	"github.com/jsphweid/chordpad/note"
	"github.com/jsphweid/chordpad/util"
	"golang.org/x/exp/slices"
)

// Chord is built once per key press or display refresh and never mutated.
type Chord struct {
	Root  note.PitchClass
	Type  Type
	Notes model.Notes
	Name  string
}

func Name(root note.PitchClass, t Type, useFlats bool) string {
	return root.Name(useFlats) + t.Suffix()
}

// Build instantiates t on root around middle C, shifted by octave and
// rotated by inversion. Notes keep their rotation order. Octave and inversion
// are clamped to the control ranges so every pitch fits a byte.
func Build(root note.PitchClass, t Type, octave int, inversion int) (Chord, error) {
	offsets, err := Offsets(t)
	if err != nil {
		return Chord{}, err
	}
	octave = util.Clamp(octave, constants.MinOctave, constants.MaxOctave)
	inversion = util.Clamp(inversion, constants.MinInversion, constants.MaxInversion)

	base := constants.ReferencePitch + int(root) + 12*octave
	pitches := make([]int, len(offsets))
	for i, offset := range offsets {
		pitches[i] = base + offset
	}

	pitches = Invert(pitches, inversion)
	notes := make(model.Notes, len(pitches))
	for i, p := range pitches {
		notes[i] = uint8(p)
	}

	return Chord{
		Root:  root,
		Type:  t,
		Notes: notes,
		Name:  Name(root, t, false),
	}, nil
}

// Invert rotates n times. Each positive step raises the first note an octave
// and moves it to the end; each negative step lowers the last note an octave
// and moves it to the front. The input is left untouched.
func Invert(pitches []int, n int) []int {
	res := slices.Clone(pitches)
	if len(res) == 0 {
		return res
	}
	for ; n > 0; n-- {
		first := res[0] + 12
		res = append(res[1:], first)
	}
	for ; n < 0; n++ {
		last := res[len(res)-1] - 12
		res = append([]int{last}, res[:len(res)-1]...)
	}
	return res
}
