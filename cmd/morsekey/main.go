package main

import (
	"os"

	"github.com/gucio32/morsekey/pkg/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
