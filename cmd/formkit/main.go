// Command formkit fills, validates and scores forms from the terminal.
package main

import (
	"os"

	"github.com/thoreinstein/formkit/cmd/formkit/commands"
	"github.com/thoreinstein/formkit/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		commands.PrintError(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}
