package chord

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Type is a chord quality. The declaration order is the cycling order used
// in free mode and must stay stable.
type Type uint8

const (
	// triads
	Major Type = iota
	Minor
	Diminished
	Augmented

	// sevenths
	Major7
	Dominant7
	Minor7
	MinorMajor7
	HalfDiminished7
	Diminished7
	Augmented7
	AugmentedMajor7

	// ninths
	Major9
	Dominant9
	Minor9
	MinorMajor9
	Add9
	MinorAdd9
	Dominant7Flat9
	Dominant7Sharp9

	// elevenths
	Dominant11
	Minor11
	Major11
	Add11
	Dominant7Sharp11
	Major7Sharp11

	// thirteenths
	Dominant13
	Minor13
	Major13
	Dominant7Flat13
	Add13

	// suspended
	Sus2
	Sus4
	Dominant7Sus4
	Dominant7Sus2
	Dominant9Sus4
	Major7Sus4

	// sixths
	Six
	Minor6
	SixNine
	MinorSixNine

	// altered
	Dominant7Flat5
	Dominant7Flat5Flat9
	Dominant7Sharp5Sharp9
	Dominant7Sharp5Flat9
	Dominant7Flat9Flat13
	Dominant7Sharp9Flat13
	Augmented9
	Dominant7Sharp9Sharp11

	Power

	numTypes
)

var ErrUnknownChordType = errors.New("unknown chord type")

type definition struct {
	suffix  string
	offsets []int
}

var table = [numTypes]definition{
	Major:      {"", []int{0, 4, 7}},
	Minor:      {"m", []int{0, 3, 7}},
	Diminished: {"dim", []int{0, 3, 6}},
	Augmented:  {"aug", []int{0, 4, 8}},

	Major7:          {"maj7", []int{0, 4, 7, 11}},
	Dominant7:       {"7", []int{0, 4, 7, 10}},
	Minor7:          {"m7", []int{0, 3, 7, 10}},
	MinorMajor7:     {"mMaj7", []int{0, 3, 7, 11}},
	HalfDiminished7: {"m7b5", []int{0, 3, 6, 10}},
	Diminished7:     {"dim7", []int{0, 3, 6, 9}},
	Augmented7:      {"aug7", []int{0, 4, 8, 10}},
	AugmentedMajor7: {"augMaj7", []int{0, 4, 8, 11}},

	Major9:          {"maj9", []int{0, 4, 7, 11, 14}},
	Dominant9:       {"9", []int{0, 4, 7, 10, 14}},
	Minor9:          {"m9", []int{0, 3, 7, 10, 14}},
	MinorMajor9:     {"mMaj9", []int{0, 3, 7, 11, 14}},
	Add9:            {"add9", []int{0, 4, 7, 14}},
	MinorAdd9:       {"madd9", []int{0, 3, 7, 14}},
	Dominant7Flat9:  {"7b9", []int{0, 4, 7, 10, 13}},
	Dominant7Sharp9: {"7#9", []int{0, 4, 7, 10, 15}},

	Dominant11:       {"11", []int{0, 4, 7, 10, 14, 17}},
	Minor11:          {"m11", []int{0, 3, 7, 10, 14, 17}},
	Major11:          {"maj11", []int{0, 4, 7, 11, 14, 17}},
	Add11:            {"add11", []int{0, 4, 7, 17}},
	Dominant7Sharp11: {"7#11", []int{0, 4, 7, 10, 18}},
	Major7Sharp11:    {"maj7#11", []int{0, 4, 7, 11, 18}},

	Dominant13:      {"13", []int{0, 4, 7, 10, 14, 21}},
	Minor13:         {"m13", []int{0, 3, 7, 10, 14, 21}},
	Major13:         {"maj13", []int{0, 4, 7, 11, 14, 21}},
	Dominant7Flat13: {"7b13", []int{0, 4, 7, 10, 20}},
	Add13:           {"add13", []int{0, 4, 7, 21}},

	Sus2:          {"sus2", []int{0, 2, 7}},
	Sus4:          {"sus4", []int{0, 5, 7}},
	Dominant7Sus4: {"7sus4", []int{0, 5, 7, 10}},
	Dominant7Sus2: {"7sus2", []int{0, 2, 7, 10}},
	Dominant9Sus4: {"9sus4", []int{0, 5, 7, 10, 14}},
	Major7Sus4:    {"maj7sus4", []int{0, 5, 7, 11}},

	Six:          {"6", []int{0, 4, 7, 9}},
	Minor6:       {"m6", []int{0, 3, 7, 9}},
	SixNine:      {"6/9", []int{0, 4, 7, 9, 14}},
	MinorSixNine: {"m6/9", []int{0, 3, 7, 9, 14}},

	Dominant7Flat5:         {"7b5", []int{0, 4, 6, 10}},
	Dominant7Flat5Flat9:    {"7b5b9", []int{0, 4, 6, 10, 13}},
	Dominant7Sharp5Sharp9:  {"7#5#9", []int{0, 4, 8, 10, 15}},
	Dominant7Sharp5Flat9:   {"7#5b9", []int{0, 4, 8, 10, 13}},
	Dominant7Flat9Flat13:   {"7b9b13", []int{0, 4, 7, 10, 13, 20}},
	Dominant7Sharp9Flat13:  {"7#9b13", []int{0, 4, 7, 10, 15, 20}},
	Augmented9:             {"aug9", []int{0, 4, 8, 10, 14}},
	Dominant7Sharp9Sharp11: {"7#9#11", []int{0, 4, 7, 10, 15, 18}},

	Power: {"5", []int{0, 7}},
}

// Types returns the whole catalog in cycling order.
func Types() []Type {
	res := make([]Type, numTypes)
	for i := range res {
		res[i] = Type(i)
	}
	return res
}

func (t Type) Valid() bool {
	return t < numTypes
}

// Offsets returns a copy of the semitone offsets from the chord root.
func Offsets(t Type) ([]int, error) {
	if !t.Valid() {
		return nil, errors.Wrapf(ErrUnknownChordType, "type %d", t)
	}
	return slices.Clone(table[t].offsets), nil
}

// Suffix is the label appended to the root name, "" for a major triad.
func (t Type) Suffix() string {
	if !t.Valid() {
		return "?"
	}
	return table[t].suffix
}

func (t Type) String() string {
	if t == Major {
		return "maj"
	}
	return t.Suffix()
}

// ParseType accepts a suffix as printed by String, so "maj" for the major
// triad and "" as well.
func ParseType(s string) (Type, error) {
	if s == "maj" {
		return Major, nil
	}
	for i, def := range table {
		if def.suffix == s {
			return Type(i), nil
		}
	}
	return Major, errors.Wrapf(ErrUnknownChordType, "%q", s)
}
