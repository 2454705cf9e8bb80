package chord

import (
	"github.com/jsphweid/chordpad/scale"
	"golang.org/x/exp/slices"
)

// diatonic chord choices per scale degree, index 0 is degree 1
var majorDegrees = [7][]Type{
	{Major, Major7, Major9, Six},
	{Minor, Minor7, Minor9, Minor11},
	{Minor, Minor7, Minor11},
	{Major, Major7, Major7Sharp11, SixNine},
	{Major, Dominant7, Dominant9, Sus4},
	{Minor, Minor7, Minor9, Minor11},
	{Diminished, HalfDiminished7, Diminished7},
}

var minorDegrees = [7][]Type{
	{Minor, Minor7, Minor9, Minor11},
	{Diminished, HalfDiminished7, Diminished7},
	{Major, Major7, Major9, Six},
	{Minor, Minor7, Minor9, Minor6},
	{Minor, Minor7, Major, Dominant7},
	{Major, Major7, Major7Sharp11},
	{Major, Dominant7, Dominant9, Sus4},
}

// Eligible returns the chord types a key at the given 1-based scale degree
// can cycle through. Free mode offers the whole catalog on every key. Modes
// without a table of their own use the major table.
func Eligible(mode scale.Mode, degree int) []Type {
	if mode == scale.Free {
		return Types()
	}
	if degree < 1 || degree > 7 || !mode.Valid() {
		return nil
	}
	if mode == scale.Minor {
		return slices.Clone(minorDegrees[degree-1])
	}
	return slices.Clone(majorDegrees[degree-1])
}
