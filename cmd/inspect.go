package cmd

import (
	"fmt"

	"github.com/jsphweid/chordpad/chord"
	"github.com/jsphweid/chordpad/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Names the chords in a recording",
	Long:  `Names the chords in a recording`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args[0])
	},
}

func inspect(path string) error {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	for i, notes := range midi.Chords(s) {
		name := "?"
		if c, ok := chord.Identify(notes); ok {
			name = c.Name
		}
		fmt.Printf("%3d  %-16v %v\n", i+1, midi.Describe(notes), name)
	}
	return nil
}
