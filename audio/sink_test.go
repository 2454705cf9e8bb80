package audio

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/jsphweid/chordpad/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type sent struct {
	msgs []midi.Message
	err  error
}

func (s *sent) send(msg midi.Message) error {
	s.msgs = append(s.msgs, msg)
	return s.err
}

func (s *sent) noteOns() []uint8 {
	var res []uint8
	for _, msg := range s.msgs {
		var ch, key, vel uint8
		if msg.GetNoteOn(&ch, &key, &vel) && vel > 0 {
			res = append(res, key)
		}
	}
	return res
}

func (s *sent) noteOffs() []uint8 {
	var res []uint8
	for _, msg := range s.msgs {
		var ch, key, vel uint8
		if msg.GetNoteOff(&ch, &key, &vel) {
			res = append(res, key)
		}
	}
	return res
}

func quietLogger() *log.Logger {
	return log.New(&bytes.Buffer{}, "", 0)
}

func TestParseInstrument(t *testing.T) {
	assert := assert.New(t)
	for _, i := range Instruments() {
		parsed, err := ParseInstrument(i.String())
		assert.NoError(err)
		assert.Equal(i, parsed)
	}
	_, err := ParseInstrument("kazoo")
	assert.ErrorIs(err, ErrUnknownInstrument)
	assert.Equal(uint8(16), Organ.Program())
}

func TestMidiSinkPlaysAndStops(t *testing.T) {
	assert := assert.New(t)
	out := &sent{}
	s := NewMidiSink(out.send, quietLogger())

	s.PlayChord(model.Notes{60, 64, 67}, Piano)
	s.PlayBassNote(48)
	assert.Equal([]uint8{60, 64, 67, 48}, out.noteOns())

	var ch, program uint8
	assert.True(out.msgs[0].GetProgramChange(&ch, &program))
	assert.Equal(uint8(0), program)

	s.StopChord()
	assert.ElementsMatch([]uint8{60, 64, 67, 48}, out.noteOffs())
}

func TestMidiSinkReleasesPreviousChord(t *testing.T) {
	assert := assert.New(t)
	out := &sent{}
	s := NewMidiSink(out.send, quietLogger())

	s.PlayChord(model.Notes{60, 64, 67}, Piano)
	s.PlayChord(model.Notes{62, 65, 69}, Piano)
	assert.ElementsMatch([]uint8{60, 64, 67}, out.noteOffs())

	// program change only sent once for an unchanged instrument
	changes := 0
	for _, msg := range out.msgs {
		var ch, program uint8
		if msg.GetProgramChange(&ch, &program) {
			changes++
		}
	}
	assert.Equal(1, changes)
}

func TestMidiSinkSkipsOutOfRangePitches(t *testing.T) {
	out := &sent{}
	s := NewMidiSink(out.send, quietLogger())
	s.PlayChord(model.Notes{120, 130}, Strings)
	assert.Equal(t, []uint8{120}, out.noteOns())
}

func TestMidiSinkSwallowsSendErrors(t *testing.T) {
	var buf bytes.Buffer
	out := &sent{err: errors.New("port closed")}
	s := NewMidiSink(out.send, log.New(&buf, "", 0))
	s.PlayChord(model.Notes{60}, Piano)
	assert.Contains(t, buf.String(), "port closed")
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	s := LogSink{Logger: log.New(&buf, "", 0)}
	s.PlayChord(model.Notes{60, 64, 67}, Organ)
	s.PlayBassNote(48)
	s.StopChord()
	assert.Equal(t, "playChord [60 64 67] on organ\nplayBassNote 48\nstopChord\n", buf.String())
}

func TestTeeFansOut(t *testing.T) {
	a, b := &sent{}, &sent{}
	tee := Tee{NewMidiSink(a.send, quietLogger()), NewMidiSink(b.send, quietLogger())}
	tee.PlayChord(model.Notes{60, 64}, Piano)
	tee.StopChord()
	assert.Equal(t, a.msgs, b.msgs)
	assert.Len(t, a.msgs, 5)
}

func TestRecorderTiming(t *testing.T) {
	assert := assert.New(t)
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rec := NewRecorderWithClock(func() time.Time { return clock })

	rec.PlayChord(model.Notes{60, 64, 67}, Piano)
	clock = clock.Add(500 * time.Millisecond)
	rec.StopChord()
	assert.Equal(7, rec.NumEvents())

	var buf bytes.Buffer
	_, err := rec.WriteTo(&buf)
	assert.NoError(err)

	s, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	assert.NoError(err)
	assert.Len(s.Tracks, 1)

	var absTicks uint32
	var offAt []uint32
	for _, ev := range s.Tracks[0] {
		absTicks += ev.Delta
		var ch, key, vel uint8
		if ev.Message.GetNoteOff(&ch, &key, &vel) {
			offAt = append(offAt, absTicks)
		}
	}
	assert.Equal([]uint32{960, 960, 960}, offAt)
}
