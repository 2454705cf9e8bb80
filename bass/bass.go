package bass

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/chordpad/constants"
	"github.com/jsphweid/chordpad/model"
	"github.com/jsphweid/chordpad/note"
	"github.com/jsphweid/chordpad/util"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Offset selects the added bass note: Off, Root ("BASS"), or a signed
// semitone offset from the chord root in [-6, +5].
type Offset int8

const (
	Root Offset = 0
	Off  Offset = -128

	MinOffset Offset = -6
	MaxOffset Offset = 5
)

var ErrInvalidOffset = errors.New("invalid bass offset")

// order is how the bass control steps through its settings
var order = []Offset{Root, 1, 2, 3, 4, 5, -6, -5, -4, -3, -2, -1, Off}

func (o Offset) Valid() bool {
	return o == Off || (o >= MinOffset && o <= MaxOffset)
}

func (o Offset) String() string {
	switch {
	case o == Off:
		return "OFF"
	case o == Root:
		return "BASS"
	case o > 0:
		return fmt.Sprintf("+%d", o)
	default:
		return fmt.Sprintf("%d", o)
	}
}

func ParseOffset(s string) (Offset, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "OFF":
		return Off, nil
	case "BASS":
		return Root, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Off, errors.Wrapf(ErrInvalidOffset, "%q", s)
	}
	if n < int(MinOffset) || n > int(MaxOffset) {
		return Off, errors.Wrapf(ErrInvalidOffset, "%d out of range", n)
	}
	return Offset(n), nil
}

// Next returns the following setting on the bass control, wrapping.
func (o Offset) Next() Offset {
	return step(o, 1)
}

func (o Offset) Prev() Offset {
	return step(o, -1)
}

func step(o Offset, by int) Offset {
	i := slices.Index(order, o)
	if i < 0 {
		return Off
	}
	return order[util.Mod(i+by, len(order))]
}

// Resolve computes the added bass pitch for a chord on root. Root takes the
// chord's lowest root occurrence down an octave. Numeric offsets land in the
// fixed low register regardless of the chord's octave or inversion.
func Resolve(root note.PitchClass, notes model.Notes, o Offset) (uint8, bool) {
	switch {
	case o == Off || !o.Valid():
		return 0, false
	case o == Root:
		lowest := -1
		for _, n := range notes {
			if note.FromPitch(n) == root && (lowest < 0 || int(n) < lowest) {
				lowest = int(n)
			}
		}
		if lowest < 12 {
			return uint8(constants.BassAnchor + int(root)), true
		}
		return uint8(lowest - 12), true
	default:
		return uint8(constants.BassAnchor + util.Mod(int(root)+int(o), note.NumPitchClasses)), true
	}
}
