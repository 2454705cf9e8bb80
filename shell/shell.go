package shell

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jsphweid/chordpad/audio"
	"github.com/jsphweid/chordpad/bass"
	"github.com/jsphweid/chordpad/chord"
	"github.com/jsphweid/chordpad/cursor"
	"github.com/jsphweid/chordpad/note"
	"github.com/jsphweid/chordpad/scale"
	"github.com/jsphweid/chordpad/session"
	"github.com/pkg/errors"
)

var ErrUnknownCommand = errors.New("unknown command")
var ErrMissingArgument = errors.New("missing argument")

const Help = `press <note>        hold a key down
release <note>      let a key go
tap <note>          press and release
up | +              next chord type for the last key
down | -            previous chord type for the last key
hold <up|down> <d>  keep cycling for a duration, e.g. hold up 1s
root <note>         change key
mode <mode>         free major minor dorian phrygian lydian mixolydian locrian
octave <n>          -2..2
inv <n>             -3..3
bass <offset>       BASS OFF +1..+5 -1..-6
flats <on|off>      spell with flats
instrument <name>   piano epiano organ guitar strings pad
save|recall|clear <slot>
scale | keys | state | help | quit`

func describe(c *chord.Chord) string {
	if c == nil {
		return "-"
	}
	return fmt.Sprintf("%v %v", c.Name, c.Notes)
}

func arg(fields []string, i int) (string, error) {
	if len(fields) <= i {
		return "", errors.Wrapf(ErrMissingArgument, "%v", fields[0])
	}
	return fields[i], nil
}

func noteArg(fields []string) (note.PitchClass, error) {
	s, err := arg(fields, 1)
	if err != nil {
		return 0, err
	}
	return note.Parse(s)
}

func intArg(fields []string) (int, error) {
	s, err := arg(fields, 1)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(s)
}

// slotArg reads a 1-based slot number.
func slotArg(fields []string) (int, error) {
	n, err := intArg(fields)
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}

func direction(s string) (cursor.Direction, error) {
	switch s {
	case "up", "+":
		return cursor.Up, nil
	case "down", "-":
		return cursor.Down, nil
	}
	return cursor.Up, errors.Errorf("unknown direction %q", s)
}

func press(s *session.Session, n note.PitchClass) (string, error) {
	c, err := s.Press(n)
	if err != nil {
		return "", err
	}
	if c == nil {
		return fmt.Sprintf("%v is not in the scale", n), nil
	}
	return describe(c), nil
}

func keys(s *session.Session) string {
	var lines []string
	for _, n := range note.All() {
		label, ok := s.KeyLabel(n)
		if !ok {
			label = "."
		}
		lines = append(lines, fmt.Sprintf("%-3v %v", n, label))
	}
	return strings.Join(lines, "\n")
}

// Exec runs one gesture line against s and returns what to print.
func Exec(s *session.Session, line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}

	command := strings.ToLower(fields[0])
	switch command {
	case "press", "p":
		n, err := noteArg(fields)
		if err != nil {
			return "", err
		}
		return press(s, n)

	case "release", "r":
		n, err := noteArg(fields)
		if err != nil {
			return "", err
		}
		s.Release(n)
		return "", nil

	case "tap", "t":
		n, err := noteArg(fields)
		if err != nil {
			return "", err
		}
		out, err := press(s, n)
		s.Release(n)
		return out, err

	case "up", "+", "down", "-":
		dir, _ := direction(command)
		c, err := s.Advance(dir)
		if err != nil {
			return "", err
		}
		if c == nil {
			return "no key selected", nil
		}
		return describe(c), nil

	case "hold":
		d, err := arg(fields, 1)
		if err != nil {
			return "", err
		}
		dir, err := direction(strings.ToLower(d))
		if err != nil {
			return "", err
		}
		length := time.Second
		if len(fields) > 2 {
			length, err = time.ParseDuration(fields[2])
			if err != nil {
				return "", err
			}
		}
		if _, err := s.Hold(dir); err != nil {
			return "", err
		}
		time.Sleep(length)
		s.Unhold()
		n, ok := s.LastPressed()
		if !ok {
			return "no key selected", nil
		}
		label, _ := s.KeyLabel(n)
		return label, nil

	case "root":
		n, err := noteArg(fields)
		if err != nil {
			return "", err
		}
		s.SetRoot(n)
		return fmt.Sprintf("%v", s.ScaleNotes()), nil

	case "mode":
		m, err := arg(fields, 1)
		if err != nil {
			return "", err
		}
		mode, err := scale.ParseMode(m)
		if err != nil {
			return "", err
		}
		s.SetMode(mode)
		return fmt.Sprintf("%v", s.ScaleNotes()), nil

	case "octave":
		n, err := intArg(fields)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("octave %v", s.SetOctave(n)), nil

	case "inv", "inversion":
		n, err := intArg(fields)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("inversion %v", s.SetInversion(n)), nil

	case "bass":
		v, err := arg(fields, 1)
		if err != nil {
			return "", err
		}
		o, err := bass.ParseOffset(v)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("bass %v", o), s.SetBass(o)

	case "flats":
		v, err := arg(fields, 1)
		if err != nil {
			return "", err
		}
		switch strings.ToLower(v) {
		case "on", "true":
			s.SetFlats(true)
		case "off", "false":
			s.SetFlats(false)
		default:
			return "", errors.Errorf("flats takes on or off, got %q", v)
		}
		return "", nil

	case "instrument":
		v, err := arg(fields, 1)
		if err != nil {
			return "", err
		}
		i, err := audio.ParseInstrument(v)
		if err != nil {
			return "", err
		}
		s.SetInstrument(i)
		return fmt.Sprintf("loading %v", i), nil

	case "save":
		i, err := slotArg(fields)
		if err != nil {
			return "", err
		}
		return "", s.SaveSlot(i)

	case "recall":
		i, err := slotArg(fields)
		if err != nil {
			return "", err
		}
		c, err := s.RecallSlot(i)
		if err != nil {
			return "", err
		}
		return describe(c), nil

	case "clear":
		i, err := slotArg(fields)
		if err != nil {
			return "", err
		}
		return "", s.ClearSlot(i)

	case "scale":
		return fmt.Sprintf("%v", s.ScaleNotes()), nil

	case "keys":
		return keys(s), nil

	case "state":
		dat, err := json.MarshalIndent(s.Snapshot(), "", "  ")
		if err != nil {
			return "", err
		}
		return string(dat), nil

	case "help", "?":
		return Help, nil
	}

	return "", errors.Wrapf(ErrUnknownCommand, "%q", fields[0])
}

// Run executes lines from r until EOF or quit. Errors are printed and the
// shell carries on.
func Run(r io.Reader, w io.Writer, s *session.Session) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		out, err := Exec(s, line)
		if err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
			continue
		}
		if out != "" {
			fmt.Fprintln(w, out)
		}
	}
	return scanner.Err()
}
