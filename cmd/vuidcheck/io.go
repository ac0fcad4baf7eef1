package main

import (
	"os"
	"runtime"

	"golang.org/x/term"
)

// allowEscapeSequences is true if colors can be printed to stdout.
func allowEscapeSequences() bool {
	if runtime.GOOS == "windows" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
