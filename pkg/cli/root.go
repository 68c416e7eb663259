// Package cli implements the morsekey CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/gucio32/morsekey/pkg/generator"
	"github.com/spf13/cobra"
)

var (
	parisFlag int
	freqFlag  float64
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "morsekey",
	Short: "Morse code playback and training",
	Long:  "Encode text to Morse code, key it through the sound device, practice receiving by ear, and generate typed Morse literals for Go sources.",
}

func init() {
	RootCmd.PersistentFlags().IntVar(&parisFlag, "paris", generator.DefaultPARIS, "Speed in words per minute (PARIS convention)")
	RootCmd.PersistentFlags().Float64Var(&freqFlag, "freq", generator.DefaultFrequency, "Sidetone frequency in Hz")
}

func newGenerator() (*generator.Generator, error) {
	g, err := generator.NewGenerator()
	if err != nil {
		return nil, err
	}

	g.SetPARIS(parisFlag).SetFrequency(freqFlag)
	return g, nil
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
