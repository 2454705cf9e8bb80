package chord

import (
	"fmt"
	"sort"

	"github.com/jsphweid/chordpad/model"
	"github.com/jsphweid/chordpad/note"
	"golang.org/x/exp/slices"
)

// CreateChordKey joins sorted intervals into a lookup key such as "0-4-7".
func CreateChordKey(intervals []int) string {
	sorted := slices.Clone(intervals)
	sort.Ints(sorted)
	var res string
	for i, interval := range sorted {
		res += fmt.Sprintf("%v", interval)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}

var exactKeys map[string]Type
var classKeys map[string]Type

func init() {
	exactKeys = make(map[string]Type)
	classKeys = make(map[string]Type)
	// walk backwards so the earliest catalog entry wins on collisions
	for i := len(table) - 1; i >= 0; i-- {
		offsets := table[i].offsets
		exactKeys[CreateChordKey(offsets)] = Type(i)
		classKeys[CreateChordKey(pitchClassSet(offsets))] = Type(i)
	}
}

func pitchClassSet(offsets []int) []int {
	seen := make(map[int]bool)
	var res []int
	for _, o := range offsets {
		pc := o % 12
		if !seen[pc] {
			seen[pc] = true
			res = append(res, pc)
		}
	}
	return res
}

// Identify names a set of sounding pitches. Root position voicings are
// matched exactly; anything else is matched by pitch-class content, trying
// the lowest note as root first.
func Identify(notes model.Notes) (Chord, bool) {
	if len(notes) < 2 {
		return Chord{}, false
	}
	sorted := slices.Clone(notes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	lowest := sorted[0]
	intervals := make([]int, len(sorted))
	for i, n := range sorted {
		intervals[i] = int(n) - int(lowest)
	}
	if t, ok := exactKeys[CreateChordKey(intervals)]; ok {
		return identified(note.FromPitch(lowest), t, sorted), true
	}

	for _, candidate := range sorted {
		root := note.FromPitch(candidate)
		var classes []int
		for _, n := range sorted {
			classes = append(classes, note.Distance(root, note.FromPitch(n)))
		}
		if t, ok := classKeys[CreateChordKey(pitchClassSet(classes))]; ok {
			return identified(root, t, sorted), true
		}
	}
	return Chord{}, false
}

func identified(root note.PitchClass, t Type, notes model.Notes) Chord {
	return Chord{Root: root, Type: t, Notes: notes, Name: Name(root, t, false)}
}
