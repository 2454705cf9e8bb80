package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/jsphweid/chordpad/chord"
	"github.com/jsphweid/chordpad/constants"
	"github.com/jsphweid/chordpad/note"
	"github.com/jsphweid/chordpad/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
)

var (
	inPort   int
	identify bool
)

func init() {
	listenCmd.Flags().IntVar(&inPort, "in-port", constants.GetMidiInPort(), "MIDI input port number")
	listenCmd.Flags().BoolVar(&identify, "identify", false, "name the chords being held instead of playing the pad")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Plays the pad from a MIDI keyboard",
	Long: `Plays the pad from a MIDI keyboard. Each incoming key presses the pad
key of the same pitch class. With --identify, held notes are named instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if identify {
			return listenAndIdentify()
		}
		return listenAndPlay()
	},
}

func waitForInterrupt() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c
}

func listenAndPlay() error {
	p, err := newPlayer()
	if err != nil {
		return err
	}
	defer p.finish()

	// finish closes the driver once this is set
	p.midiOpen = true
	in, err := gomidi.InPort(inPort)
	if err != nil {
		return errors.Wrapf(err, "can't find midi in port %d", inPort)
	}

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			c, err := p.session.Press(note.FromPitch(key))
			if err != nil {
				fmt.Printf("ERROR: %s\n", err)
				return
			}
			if c != nil {
				fmt.Printf("%v %v\n", c.Name, c.Notes)
			}
		case msg.GetNoteEnd(&ch, &key):
			p.session.Release(note.FromPitch(key))
		default:
			// ignore
		}
	})
	if err != nil {
		return errors.Wrap(err, "could not listen")
	}

	fmt.Println("Listening, ctrl-c to stop")
	waitForInterrupt()
	stop()
	return nil
}

func listenAndIdentify() error {
	defer gomidi.CloseDriver()
	in, err := gomidi.InPort(inPort)
	if err != nil {
		return errors.Wrapf(err, "can't find midi in port %d", inPort)
	}

	onNotes := make(map[uint8]bool)
	report := func() {
		keys := util.GetKeysSorted(onNotes)
		if len(keys) == 0 {
			return
		}
		if c, ok := chord.Identify(keys); ok {
			fmt.Printf("%v %v\n", c.Name, keys)
		} else {
			fmt.Printf("? %v\n", keys)
		}
	}

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			onNotes[key] = true
			report()
		case msg.GetNoteEnd(&ch, &key):
			delete(onNotes, key)
			report()
		default:
			// ignore
		}
	})
	if err != nil {
		return errors.Wrap(err, "could not listen")
	}

	fmt.Println("Listening, ctrl-c to stop")
	waitForInterrupt()
	stop()
	return nil
}
