// Package ui holds small terminal formatting helpers.
package ui

import (
	"os"

	"golang.org/x/term"
)

// StyleEnabled reports whether ANSI styling should be written to file.
func StyleEnabled(file *os.File) bool {
	if file == nil {
		return false
	}
	return styleAllowed(os.Getenv("NO_COLOR"), os.Getenv("TERM")) && term.IsTerminal(int(file.Fd()))
}

func styleAllowed(noColor, termName string) bool {
	if noColor != "" {
		return false
	}
	return termName != "dumb"
}
