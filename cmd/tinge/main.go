// Tinge - a dominant-colour picker for the terminal
//
// Tinge finds the dominant colours in an image and prints them as
// coloured swatches with their hex codes.
package main

import (
	"os"

	"github.com/colourlab/tinge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
