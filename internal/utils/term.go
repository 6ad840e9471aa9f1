// Package utils provides prompts and small helpers for the command line.
package utils

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Stdin and Stdout are the streams prompts use; tests replace them.
var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
)

// IsInteractive reports whether both stdin and stdout are terminals, which
// the huh forms need.
func IsInteractive() bool {
	in, ok := Stdin.(*os.File)
	if !ok {
		return false
	}
	out, ok := Stdout.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd()))
}
