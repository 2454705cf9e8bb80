package midi

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jsphweid/chordpad/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, errors.Wrap(err, "Error reading midi file...")
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, errors.Wrap(err, "Error parsing midi file...")
	}

	return res, nil
}

// Chords groups note-ons that start on the same tick into the chords they
// form, in playing order. Track boundaries flush the current group.
func Chords(s *smf.SMF) []model.Notes {
	var res []model.Notes

	for _, track := range s.Tracks {
		var absTicks int64
		var current model.Notes
		var currentStart int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			if !event.Message.GetNoteOn(&channel, &key, &velocity) || velocity == 0 {
				continue
			}
			if len(current) > 0 && absTicks != currentStart {
				res = append(res, current)
				current = nil
			}
			if len(current) == 0 {
				currentStart = absTicks
			}
			current = append(current, key)
		}
		if len(current) > 0 {
			res = append(res, current)
		}
	}

	return res
}

// Describe formats a chord's notes for printing, e.g. "60-64-67".
func Describe(notes model.Notes) string {
	var res string
	for i, n := range notes {
		res += fmt.Sprintf("%v", n)
		if i < len(notes)-1 {
			res += "-"
		}
	}
	return res
}
