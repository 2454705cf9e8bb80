package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordpad/chord"
	"github.com/jsphweid/chordpad/note"
	"github.com/jsphweid/chordpad/scale"
	"github.com/spf13/cobra"
)

var scaleFlats bool

func init() {
	scaleCmd.Flags().BoolVar(&scaleFlats, "flats", false, "spell with flats")
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale <root> [mode]",
	Short: "Prints a scale and the chords each degree offers",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := note.Parse(args[0])
		if err != nil {
			return err
		}
		mode := scale.Major
		if len(args) == 2 {
			mode, err = scale.ParseMode(args[1])
			if err != nil {
				return err
			}
		}
		printScale(root, mode)
		return nil
	},
}

func printScale(root note.PitchClass, mode scale.Mode) {
	fmt.Printf("%v %v\n", root.Name(scaleFlats), mode)
	for i, n := range scale.Notes(root, mode) {
		var names []string
		for _, t := range chord.Eligible(mode, i+1) {
			names = append(names, chord.Name(n, t, scaleFlats))
		}
		if mode == scale.Free {
			names = []string{fmt.Sprintf("%v chord types", len(names))}
		}
		fmt.Printf("%2d  %-3v %v\n", i+1, n.Name(scaleFlats), strings.Join(names, " "))
	}
}
