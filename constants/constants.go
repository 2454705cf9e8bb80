package constants

import (
	"os"
	"strconv"
	"time"
)

func GetOutDir() string {
	path := os.Getenv("CHORDPAD_OUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetConfigPath() string {
	return os.Getenv("CHORDPAD_CONFIG")
}

// GetMidiOutPort returns the output port number, or -1 when MIDI output is
// not configured.
func GetMidiOutPort() int {
	return getIntEnv("CHORDPAD_MIDI_OUT", -1)
}

func GetMidiInPort() int {
	return getIntEnv("CHORDPAD_MIDI_IN", 0)
}

func getIntEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// middle C, the anchor every chord root is built from
const ReferencePitch = 60

// C3, the fixed register numeric bass offsets are anchored at
const BassAnchor = 48

const (
	MinOctave    = -2
	MaxOctave    = 2
	MinInversion = -3
	MaxInversion = 3
)

const NumSlots = 8

const (
	HoldDelay       = 400 * time.Millisecond
	HoldInterval    = 150 * time.Millisecond
	LoadingDuration = 500 * time.Millisecond
)

const (
	MidiChannel  = 0
	MidiVelocity = 100
	// NOTE: recordings assume 120bpm, so a quarter note is 500ms
	TicksPerQuarter = 960
)
