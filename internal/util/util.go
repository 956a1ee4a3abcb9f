package util

import (
	"os"

	"golang.org/x/term"
)

const (
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Red wraps s in ANSI red when color is true.
func Red(s string, color bool) string {
	if !color {
		return s
	}
	return ansiRed + s + ansiReset
}
