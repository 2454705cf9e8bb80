package config

import (
	"os"
	"time"

	"github.com/jsphweid/chordpad/audio"
	"github.com/jsphweid/chordpad/bass"
	"github.com/jsphweid/chordpad/constants"
	"github.com/jsphweid/chordpad/note"
	"github.com/jsphweid/chordpad/scale"
	"github.com/jsphweid/chordpad/session"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the starting selection for a session, as written in a YAML
// file. Fields left out keep their defaults.
type Config struct {
	Root            string        `yaml:"root"`
	Mode            string        `yaml:"mode"`
	Octave          int           `yaml:"octave"`
	Inversion       int           `yaml:"inversion"`
	Bass            string        `yaml:"bass"`
	UseFlats        bool          `yaml:"use_flats"`
	Instrument      string        `yaml:"instrument"`
	HoldDelay       time.Duration `yaml:"hold_delay"`
	HoldInterval    time.Duration `yaml:"hold_interval"`
	LoadingDuration time.Duration `yaml:"loading_duration"`
}

func Default() Config {
	return Config{
		Root:            "A#",
		Mode:            "free",
		Bass:            "BASS",
		Instrument:      "piano",
		HoldDelay:       constants.HoldDelay,
		HoldInterval:    constants.HoldInterval,
		LoadingDuration: constants.LoadingDuration,
	}
}

// Load reads path on top of the defaults. An empty path falls back to the
// CHORDPAD_CONFIG variable, and to plain defaults when that is unset too.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = constants.GetConfigPath()
	}
	if path == "" {
		return cfg, nil
	}

	dat, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "could not read config %v", path)
	}
	if err := Parse(dat, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "could not parse config %v", path)
	}
	return cfg, nil
}

func Parse(dat []byte, cfg *Config) error {
	return yaml.Unmarshal(dat, cfg)
}

// Options validates the config and converts it for session.New.
func (c Config) Options() (session.Options, error) {
	opts := session.DefaultOptions()

	root, err := note.Parse(c.Root)
	if err != nil {
		return opts, errors.Wrap(err, "root")
	}
	mode, err := scale.ParseMode(c.Mode)
	if err != nil {
		return opts, errors.Wrap(err, "mode")
	}
	offset, err := bass.ParseOffset(c.Bass)
	if err != nil {
		return opts, errors.Wrap(err, "bass")
	}
	instrument, err := audio.ParseInstrument(c.Instrument)
	if err != nil {
		return opts, errors.Wrap(err, "instrument")
	}

	opts.Root = root
	opts.Mode = mode
	opts.Octave = c.Octave
	opts.Inversion = c.Inversion
	opts.Bass = offset
	opts.UseFlats = c.UseFlats
	opts.Instrument = instrument
	opts.HoldDelay = c.HoldDelay
	opts.HoldInterval = c.HoldInterval
	opts.LoadingDuration = c.LoadingDuration
	return opts, nil
}
