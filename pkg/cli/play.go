package cli

import (
	"strings"

	"github.com/gucio32/morsekey/pkg/morse"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play <text>...",
	Short: "Key text through the sound device",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		g, err := newGenerator()
		if err != nil {
			exitErr("open sound device", err)
		}

		if err := morse.NewPlayer(g).PlayString(strings.Join(args, " ")); err != nil {
			exitErr("playback", err)
		}
	},
}

func init() {
	RootCmd.AddCommand(playCmd)
}
