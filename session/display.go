package session

import (
	"log"

	"github.com/jsphweid/chordpad/chord"
	"github.com/jsphweid/chordpad/note"
)

// Display is notified synchronously after each state change. Callbacks run
// while the session is locked and must not call back into it.
type Display interface {
	OnChordChange(c *chord.Chord)
	OnScaleNotesChange(notes []note.PitchClass)
	OnNoteSelect(n note.PitchClass)
}

type NopDisplay struct{}

func (NopDisplay) OnChordChange(*chord.Chord) {}
func (NopDisplay) OnScaleNotesChange([]note.PitchClass) {}
func (NopDisplay) OnNoteSelect(note.PitchClass) {}

type LogDisplay struct {
	Logger *log.Logger
}

func (d LogDisplay) logger() *log.Logger {
	if d.Logger == nil {
		return log.Default()
	}
	return d.Logger
}

func (d LogDisplay) OnChordChange(c *chord.Chord) {
	if c == nil {
		d.logger().Printf("chord: none")
		return
	}
	d.logger().Printf("chord: %v %v", c.Name, c.Notes)
}

func (d LogDisplay) OnScaleNotesChange(notes []note.PitchClass) {
	d.logger().Printf("scale: %v", notes)
}

func (d LogDisplay) OnNoteSelect(n note.PitchClass) {
	d.logger().Printf("selected: %v", n)
}
