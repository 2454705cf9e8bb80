package scale

import (
	"strings"

	"github.com/jsphweid/chordpad/note"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

type Mode uint8

const (
	Free Mode = iota
	Major
	Minor
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Locrian
	numModes
)

var ErrUnknownMode = errors.New("unknown mode")

var modeNames = [numModes]string{
	Free:       "free",
	Major:      "major",
	Minor:      "minor",
	Dorian:     "dorian",
	Phrygian:   "phrygian",
	Lydian:     "lydian",
	Mixolydian: "mixolydian",
	Locrian:    "locrian",
}

// patterns are semitone offsets from the root in ascending degree order
var patterns = [numModes][]int{
	Free:       {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	Major:      {0, 2, 4, 5, 7, 9, 11},
	Minor:      {0, 2, 3, 5, 7, 8, 10},
	Dorian:     {0, 2, 3, 5, 7, 9, 10},
	Phrygian:   {0, 1, 3, 5, 7, 8, 10},
	Lydian:     {0, 2, 4, 6, 7, 9, 11},
	Mixolydian: {0, 2, 4, 5, 7, 9, 10},
	Locrian:    {0, 1, 3, 5, 6, 8, 10},
}

func Modes() []Mode {
	res := make([]Mode, numModes)
	for i := range res {
		res[i] = Mode(i)
	}
	return res
}

func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(name, s) {
			return Mode(i), nil
		}
	}
	return Free, errors.Wrapf(ErrUnknownMode, "%q", s)
}

func (m Mode) String() string {
	if m >= numModes {
		return "unknown"
	}
	return modeNames[m]
}

func (m Mode) Valid() bool {
	return m < numModes
}

// Pattern returns a copy of the mode's semitone offsets.
func Pattern(m Mode) []int {
	if !m.Valid() {
		return nil
	}
	return slices.Clone(patterns[m])
}

// Notes applies the mode's pattern to root, in ascending degree order.
func Notes(root note.PitchClass, m Mode) []note.PitchClass {
	if !m.Valid() {
		return nil
	}
	res := make([]note.PitchClass, 0, len(patterns[m]))
	for _, offset := range patterns[m] {
		res = append(res, note.Transpose(root, offset))
	}
	return res
}

// Degree returns the 1-based scale degree of p, or false when p is outside
// the scale.
func Degree(root note.PitchClass, m Mode, p note.PitchClass) (int, bool) {
	if !m.Valid() {
		return 0, false
	}
	i := slices.Index(patterns[m], note.Distance(root, p))
	if i < 0 {
		return 0, false
	}
	return i + 1, true
}

func Contains(root note.PitchClass, m Mode, p note.PitchClass) bool {
	_, ok := Degree(root, m, p)
	return ok
}
