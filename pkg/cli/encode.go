package cli

import (
	"fmt"
	"strings"

	"github.com/gucio32/morsekey/pkg/morse"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <text>...",
	Short: "Print the dot/dash form of text",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(morse.EncodeString(strings.Join(args, " ")).String())
	},
}

func init() {
	RootCmd.AddCommand(encodeCmd)
}
