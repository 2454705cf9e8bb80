package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/chordpad/audio"
	"github.com/jsphweid/chordpad/config"
	"github.com/jsphweid/chordpad/session"
	"github.com/jsphweid/chordpad/util"
	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

// player is a session wired to the sinks picked on the command line.
type player struct {
	session  *session.Session
	recorder *audio.Recorder
	midiOpen bool
}

func loadOptions() (session.Options, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return session.Options{}, err
	}
	if rootNote != "" {
		cfg.Root = rootNote
	}
	if modeName != "" {
		cfg.Mode = modeName
	}
	if instrument != "" {
		cfg.Instrument = instrument
	}
	return cfg.Options()
}

func newPlayer() (*player, error) {
	opts, err := loadOptions()
	if err != nil {
		return nil, err
	}

	logger := log.New(os.Stderr, "", log.Ltime)
	opts.Logger = logger
	p := &player{}
	var sinks audio.Tee
	if verbose || (outPort < 0 && !record) {
		sinks = append(sinks, audio.LogSink{Logger: logger})
	}
	if outPort >= 0 {
		out, err := audio.OpenMidiSink(outPort, logger)
		if err != nil {
			gomidi.CloseDriver()
			return nil, err
		}
		p.midiOpen = true
		sinks = append(sinks, out)
	}
	if record {
		p.recorder = audio.NewRecorder()
		sinks = append(sinks, p.recorder)
	}

	var display session.Display
	if verbose {
		display = session.LogDisplay{Logger: logger}
	}
	p.session = session.New(sinks, display, opts)
	return p, nil
}

func (p *player) finish() error {
	p.session.Unhold()
	if p.midiOpen {
		gomidi.CloseDriver()
	}
	if p.recorder == nil || p.recorder.NumEvents() == 0 {
		return nil
	}

	dir, err := util.EnsureOutputDir()
	if err != nil {
		return errors.Wrap(err, "could not create output dir")
	}
	path := filepath.Join(dir, uuid.New().String()+".mid")
	if err := p.recorder.WriteFile(path); err != nil {
		return err
	}
	fmt.Printf("Saved recording to %v\n", path)
	return nil
}

// abort finishes after a failed command. The command error wins, so a failed
// recording write is only reported.
func (p *player) abort() {
	if err := p.finish(); err != nil {
		fmt.Printf("ERROR: %s\n", err)
	}
}
