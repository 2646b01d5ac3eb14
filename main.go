package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/colgrid/cmd"
	"github.com/thenoetrevino/colgrid/internal/cli"
)

func main() {
	err := cmd.Execute()

	// Coded errors were already written by the command's formatter
	var coded *cli.CodedError
	if err != nil && !errors.As(err, &coded) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.ExitCode(err))
}
