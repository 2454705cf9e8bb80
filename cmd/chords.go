package cmd

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/chordpad/chord"
	"github.com/jsphweid/chordpad/scale"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(chordsCmd)
}

var chordsCmd = &cobra.Command{
	Use:   "chords [mode] [degree]",
	Short: "Lists chord types in cycling order",
	Long: `Lists the chord types a key cycles through. With no arguments every
type is listed in the order free mode uses. Given a mode and a 1-based scale
degree, only the types eligible on that degree are listed.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		types, err := chordsFor(args)
		if err != nil {
			return err
		}
		for i, t := range types {
			offsets, _ := chord.Offsets(t)
			fmt.Printf("%2d  %-8v %v\n", i, t, offsets)
		}
		return nil
	},
}

func chordsFor(args []string) ([]chord.Type, error) {
	if len(args) == 0 {
		return chord.Types(), nil
	}
	mode, err := scale.ParseMode(args[0])
	if err != nil {
		return nil, err
	}
	degree := 1
	if len(args) > 1 {
		degree, err = strconv.Atoi(args[1])
		if err != nil {
			return nil, errors.Wrapf(err, "degree %q", args[1])
		}
	}
	types := chord.Eligible(mode, degree)
	if types == nil {
		return nil, errors.Errorf("degree %v is out of range for %v", degree, mode)
	}
	return types, nil
}
