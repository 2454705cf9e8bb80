package cmd

import (
	"fmt"
	"os"

	"github.com/jsphweid/chordpad/shell"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replCmd)
}

var playCmd = &cobra.Command{
	Use:   "play <gesture>...",
	Short: "Plays a list of gestures",
	Long: `Plays a list of gestures, one per argument, for example:

  chordpad play "mode major" "root C" "tap C" up "tap C"

` + shell.Help,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPlayer()
		if err != nil {
			return err
		}
		for _, line := range args {
			out, err := shell.Exec(p.session, line)
			if err != nil {
				p.abort()
				return err
			}
			if out != "" {
				fmt.Println(out)
			}
		}
		return p.finish()
	},
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Reads gestures from stdin",
	Long:  shell.Help,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPlayer()
		if err != nil {
			return err
		}
		if err := shell.Run(os.Stdin, os.Stdout, p.session); err != nil {
			p.abort()
			return err
		}
		return p.finish()
	},
}
