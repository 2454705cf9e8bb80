package cursor

import (
	"github.com/jsphweid/chordpad/chord"
	"github.com/jsphweid/chordpad/note"
	"github.com/jsphweid/chordpad/scale"
	"github.com/jsphweid/chordpad/util"
	"golang.org/x/exp/slices"
)

type Direction int

const (
	Down Direction = -1
	Up   Direction = 1
)

// Cursor remembers, per pitch class, which entry of that key's eligible
// chord list is selected. Missing entries read as 0.
type Cursor struct {
	indexes map[note.PitchClass]int
}

func New() *Cursor {
	return &Cursor{indexes: make(map[note.PitchClass]int)}
}

// Index returns the stored index for n and whether n has an entry.
func (c *Cursor) Index(n note.PitchClass) (int, bool) {
	i, ok := c.indexes[n]
	return i, ok
}

// Set stores a raw index. It is reduced against the eligible list on read.
func (c *Cursor) Set(n note.PitchClass, index int) {
	c.indexes[n] = index
}

func (c *Cursor) Len() int {
	return len(c.indexes)
}

func (c *Cursor) Reset() {
	c.indexes = make(map[note.PitchClass]int)
}

// Current resolves the selected chord type for n. Stale indexes from another
// mode are reduced modulo the current list length. An empty list yields
// chord.Major.
func (c *Cursor) Current(n note.PitchClass, mode scale.Mode, degree int) chord.Type {
	types := chord.Eligible(mode, degree)
	if len(types) == 0 {
		return chord.Major
	}
	return types[util.Mod(c.indexes[n], len(types))]
}

// Advance steps n's selection in dir, wrapping in both directions, and
// returns the newly selected type.
func (c *Cursor) Advance(n note.PitchClass, dir Direction, mode scale.Mode, degree int) chord.Type {
	types := chord.Eligible(mode, degree)
	if len(types) == 0 {
		return chord.Major
	}
	next := util.Mod(util.Mod(c.indexes[n], len(types))+int(dir), len(types))
	c.indexes[n] = next
	return types[next]
}

// Transition applies the reset policy for a mode change. Entering free mode
// keeps every entry and seeds the notes free mode newly makes playable; any
// other change of mode starts clean.
func (c *Cursor) Transition(from, to scale.Mode, fromScale, toScale []note.PitchClass) {
	switch {
	case from == to:
	case to == scale.Free:
		for _, n := range toScale {
			if slices.Contains(fromScale, n) {
				continue
			}
			if _, ok := c.indexes[n]; !ok {
				c.indexes[n] = 0
			}
		}
	default:
		c.Reset()
	}
}
