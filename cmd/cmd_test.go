package cmd

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsphweid/chordpad/audio"
	"github.com/jsphweid/chordpad/chord"
	"github.com/jsphweid/chordpad/model"
	"github.com/jsphweid/chordpad/note"
	"github.com/jsphweid/chordpad/scale"
	"github.com/stretchr/testify/assert"
)

func TestFlagsOverrideConfig(t *testing.T) {
	assert := assert.New(t)
	t.Setenv("CHORDPAD_CONFIG", "")
	rootNote, modeName, instrument = "E", "lydian", "pad"
	defer func() { rootNote, modeName, instrument = "", "", "" }()

	opts, err := loadOptions()
	assert.NoError(err)
	assert.Equal(note.E, opts.Root)
	assert.Equal(scale.Lydian, opts.Mode)
	assert.Equal(audio.Pad, opts.Instrument)
}

func TestRecordAndInspect(t *testing.T) {
	assert := assert.New(t)
	t.Setenv("CHORDPAD_CONFIG", "")
	outDir := t.TempDir()
	t.Setenv("CHORDPAD_OUT_PATH", outDir)
	outPort, record = -1, true
	defer func() { record = false }()

	p, err := newPlayer()
	assert.NoError(err)
	p.session.Press(note.ASharp)
	p.session.Release(note.ASharp)
	assert.NoError(p.finish())

	matches, _ := filepath.Glob(filepath.Join(outDir, "*.mid"))
	assert.Len(matches, 1)
	assert.NoError(inspect(matches[0]))

	rec := audio.NewRecorderWithClock(func() time.Time { return time.Unix(0, 0) })
	rec.PlayChord(model.Notes{62, 65, 69}, audio.Piano)
	path := filepath.Join(t.TempDir(), "take.mid")
	assert.NoError(rec.WriteFile(path))
	assert.NoError(inspect(path))
}

func TestChordsFor(t *testing.T) {
	assert := assert.New(t)

	all, err := chordsFor(nil)
	assert.NoError(err)
	assert.Equal(chord.Types(), all)

	tonic, err := chordsFor([]string{"major", "1"})
	assert.NoError(err)
	assert.Equal([]chord.Type{chord.Major, chord.Major7, chord.Major9, chord.Six}, tonic)

	_, err = chordsFor([]string{"minor", "9"})
	assert.Error(err)
	_, err = chordsFor([]string{"nope"})
	assert.Error(err)
}

func TestAbortReportsFailedRecording(t *testing.T) {
	assert := assert.New(t)
	t.Setenv("CHORDPAD_CONFIG", "")
	blocker := filepath.Join(t.TempDir(), "blocker")
	assert.NoError(os.WriteFile(blocker, nil, 0644))
	t.Setenv("CHORDPAD_OUT_PATH", filepath.Join(blocker, "out"))
	outPort, record = -1, true
	defer func() { record = false }()

	p, err := newPlayer()
	assert.NoError(err)
	p.session.Press(note.ASharp)
	assert.Error(p.finish())

	r, w, err := os.Pipe()
	assert.NoError(err)
	stdout := os.Stdout
	os.Stdout = w
	p.abort()
	os.Stdout = stdout
	w.Close()

	printed, _ := io.ReadAll(r)
	assert.Contains(string(printed), "ERROR: could not create output dir")
}
