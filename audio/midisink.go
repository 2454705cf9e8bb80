package audio

import (
	"log"
	"sync"

	"github.com/jsphweid/chordpad/constants"
	"github.com/jsphweid/chordpad/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
)

const maxMidiNote = 127

// MidiSink plays through a MIDI output. It keeps track of what is sounding
// so StopChord releases exactly those notes.
type MidiSink struct {
	mu       sync.Mutex
	send     func(midi.Message) error
	logger   *log.Logger
	channel  uint8
	velocity uint8
	program  int
	sounding []uint8
}

func NewMidiSink(send func(midi.Message) error, logger *log.Logger) *MidiSink {
	if logger == nil {
		logger = log.Default()
	}
	return &MidiSink{
		send:     send,
		logger:   logger,
		channel:  constants.MidiChannel,
		velocity: constants.MidiVelocity,
		program:  -1,
	}
}

// OpenMidiSink opens the numbered output port of the registered driver.
func OpenMidiSink(port int, logger *log.Logger) (*MidiSink, error) {
	out, err := midi.OutPort(port)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open midi out port %d", port)
	}
	send, err := midi.SendTo(out)
	if err != nil {
		return nil, errors.Wrapf(err, "could not send to midi out port %d", port)
	}
	return NewMidiSink(send, logger), nil
}

func (s *MidiSink) write(msg midi.Message) {
	if err := s.send(msg); err != nil {
		s.logger.Printf("midi send failed for %v: %v", msg, err)
	}
}

func (s *MidiSink) stop() {
	for _, n := range s.sounding {
		s.write(midi.NoteOff(s.channel, n))
	}
	s.sounding = s.sounding[:0]
}

func (s *MidiSink) noteOn(pitch uint8) {
	if pitch > maxMidiNote {
		s.logger.Printf("skipping pitch %v, out of midi range", pitch)
		return
	}
	s.write(midi.NoteOn(s.channel, pitch, s.velocity))
	s.sounding = append(s.sounding, pitch)
}

func (s *MidiSink) PlayChord(notes model.Notes, instrument Instrument) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stop()
	if s.program != int(instrument.Program()) {
		s.write(midi.ProgramChange(s.channel, instrument.Program()))
		s.program = int(instrument.Program())
	}
	for _, n := range notes {
		s.noteOn(n)
	}
}

func (s *MidiSink) StopChord() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stop()
}

func (s *MidiSink) PlayBassNote(pitch uint8) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.noteOn(pitch)
}
