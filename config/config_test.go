package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsphweid/chordpad/audio"
	"github.com/jsphweid/chordpad/bass"
	"github.com/jsphweid/chordpad/note"
	"github.com/jsphweid/chordpad/scale"
	"github.com/stretchr/testify/assert"
)

func TestDefaultsMatchSessionDefaults(t *testing.T) {
	assert := assert.New(t)
	opts, err := Default().Options()
	assert.NoError(err)
	assert.Equal(note.ASharp, opts.Root)
	assert.Equal(scale.Free, opts.Mode)
	assert.Equal(bass.Root, opts.Bass)
	assert.Equal(audio.Piano, opts.Instrument)
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "chordpad.yml")
	data := "root: Eb\nmode: dorian\nbass: \"-3\"\nuse_flats: true\nhold_interval: 80ms\n"
	assert.NoError(os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	assert.NoError(err)
	opts, err := cfg.Options()
	assert.NoError(err)
	assert.Equal(note.DSharp, opts.Root)
	assert.Equal(scale.Dorian, opts.Mode)
	assert.Equal(bass.Offset(-3), opts.Bass)
	assert.True(opts.UseFlats)
	assert.Equal(80*time.Millisecond, opts.HoldInterval)
	assert.Equal(audio.Piano, opts.Instrument)
}

func TestLoadFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chordpad.yml")
	assert.NoError(t, os.WriteFile(path, []byte("instrument: organ\n"), 0644))
	t.Setenv("CHORDPAD_CONFIG", path)

	cfg, err := Load("")
	assert.NoError(t, err)
	assert.Equal(t, "organ", cfg.Instrument)
}

func TestInvalidValuesAreReported(t *testing.T) {
	cfg := Default()
	cfg.Mode = "blues"
	_, err := cfg.Options()
	assert.ErrorIs(t, err, scale.ErrUnknownMode)

	cfg = Default()
	cfg.Root = "H"
	_, err = cfg.Options()
	assert.ErrorIs(t, err, note.ErrUnknownNote)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
