package audio

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/jsphweid/chordpad/constants"
	"github.com/jsphweid/chordpad/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type recordedEvent struct {
	delta uint32
	msg   midi.Message
}

// Recorder is a Sink that captures a performance as a standard MIDI file.
// Deltas come from wall clock time at 120bpm.
type Recorder struct {
	mu       sync.Mutex
	now      func() time.Time
	last     time.Time
	events   []recordedEvent
	sounding []uint8
	program  int
}

func NewRecorder() *Recorder {
	return NewRecorderWithClock(time.Now)
}

func NewRecorderWithClock(now func() time.Time) *Recorder {
	return &Recorder{now: now, program: -1}
}

func (r *Recorder) ticksSinceLast() uint32 {
	t := r.now()
	if r.last.IsZero() {
		r.last = t
		return 0
	}
	elapsed := t.Sub(r.last)
	r.last = t
	return uint32(elapsed.Milliseconds() * constants.TicksPerQuarter / 500)
}

func (r *Recorder) add(msg midi.Message) {
	r.events = append(r.events, recordedEvent{delta: r.ticksSinceLast(), msg: msg})
}

func (r *Recorder) stop() {
	for _, n := range r.sounding {
		r.add(midi.NoteOff(constants.MidiChannel, n))
	}
	r.sounding = r.sounding[:0]
}

func (r *Recorder) noteOn(pitch uint8) {
	if pitch > maxMidiNote {
		return
	}
	r.add(midi.NoteOn(constants.MidiChannel, pitch, constants.MidiVelocity))
	r.sounding = append(r.sounding, pitch)
}

func (r *Recorder) PlayChord(notes model.Notes, instrument Instrument) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stop()
	if r.program != int(instrument.Program()) {
		r.add(midi.ProgramChange(constants.MidiChannel, instrument.Program()))
		r.program = int(instrument.Program())
	}
	for _, n := range notes {
		r.noteOn(n)
	}
}

func (r *Recorder) StopChord() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stop()
}

func (r *Recorder) PlayBassNote(pitch uint8) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.noteOn(pitch)
}

// NumEvents is the number of channel messages captured so far.
func (r *Recorder) NumEvents() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// SMF renders the captured events into a single track file. Notes still
// sounding are released at the end.
func (r *Recorder) SMF() (*smf.SMF, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var track smf.Track
	track.Add(0, smf.MetaTempo(120))
	for _, e := range r.events {
		track.Add(e.delta, e.msg)
	}
	for _, n := range r.sounding {
		track.Add(0, midi.NoteOff(constants.MidiChannel, n))
	}
	track.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)
	if err := s.Add(track); err != nil {
		return nil, errors.Wrap(err, "could not add recorded track")
	}
	return s, nil
}

func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	s, err := r.SMF()
	if err != nil {
		return 0, err
	}
	return s.WriteTo(w)
}

func (r *Recorder) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create recording %v", path)
	}
	defer f.Close()

	if _, err := r.WriteTo(f); err != nil {
		return errors.Wrapf(err, "could not write recording %v", path)
	}
	return nil
}
