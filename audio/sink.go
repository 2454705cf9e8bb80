package audio

import (
	"log"
	"strings"

	"github.com/jsphweid/chordpad/model"
	"github.com/pkg/errors"
)

// Sink receives the sounds the instrument makes. Calls are fire and forget:
// failures stay inside the sink.
type Sink interface {
	PlayChord(notes model.Notes, instrument Instrument)
	StopChord()
	PlayBassNote(pitch uint8)
}

type Instrument uint8

const (
	Piano Instrument = iota
	ElectricPiano
	Organ
	Guitar
	Strings
	Pad
	numInstruments
)

var ErrUnknownInstrument = errors.New("unknown instrument")

var instruments = [numInstruments]struct {
	name    string
	program uint8
}{
	Piano:         {"piano", 0},
	ElectricPiano: {"epiano", 4},
	Organ:         {"organ", 16},
	Guitar:        {"guitar", 24},
	Strings:       {"strings", 48},
	Pad:           {"pad", 88},
}

func Instruments() []Instrument {
	res := make([]Instrument, numInstruments)
	for i := range res {
		res[i] = Instrument(i)
	}
	return res
}

func ParseInstrument(s string) (Instrument, error) {
	for i, inst := range instruments {
		if strings.EqualFold(inst.name, s) {
			return Instrument(i), nil
		}
	}
	return Piano, errors.Wrapf(ErrUnknownInstrument, "%q", s)
}

func (i Instrument) String() string {
	if i >= numInstruments {
		return "unknown"
	}
	return instruments[i].name
}

// Program is the General MIDI program number for the instrument.
func (i Instrument) Program() uint8 {
	if i >= numInstruments {
		return 0
	}
	return instruments[i].program
}

// LogSink only logs what would be played.
type LogSink struct {
	Logger *log.Logger
}

func (s LogSink) logf(format string, v ...any) {
	if s.Logger == nil {
		log.Printf(format, v...)
		return
	}
	s.Logger.Printf(format, v...)
}

func (s LogSink) PlayChord(notes model.Notes, instrument Instrument) {
	s.logf("playChord %v on %v", notes, instrument)
}

func (s LogSink) StopChord() {
	s.logf("stopChord")
}

func (s LogSink) PlayBassNote(pitch uint8) {
	s.logf("playBassNote %v", pitch)
}

// Tee forwards every call to each of its sinks in order.
type Tee []Sink

func (t Tee) PlayChord(notes model.Notes, instrument Instrument) {
	for _, s := range t {
		s.PlayChord(notes, instrument)
	}
}

func (t Tee) StopChord() {
	for _, s := range t {
		s.StopChord()
	}
}

func (t Tee) PlayBassNote(pitch uint8) {
	for _, s := range t {
		s.PlayBassNote(pitch)
	}
}
