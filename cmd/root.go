package cmd

import (
	"github.com/jsphweid/chordpad/constants"
	"github.com/spf13/cobra"
)

var (
	cfgPath    string
	rootNote   string
	modeName   string
	instrument string
	outPort    int
	record     bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "chordpad",
	Short: "Chord keyboard",
	Long:  `A twelve key chord keyboard. Every key plays a chord picked from the current root and mode.`,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgPath, "config", "", "YAML config file (default $CHORDPAD_CONFIG)")
	flags.StringVar(&rootNote, "root", "", "root note, overrides the config")
	flags.StringVar(&modeName, "mode", "", "mode, overrides the config")
	flags.StringVar(&instrument, "instrument", "", "instrument, overrides the config")
	flags.IntVar(&outPort, "out-port", constants.GetMidiOutPort(), "MIDI output port number, -1 to only log")
	flags.BoolVar(&record, "record", false, "save what is played as a .mid file in $CHORDPAD_OUT_PATH")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log sink calls and display changes")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
