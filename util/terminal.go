package util

import (
	"io"
	"os"

	"golang.org/x/term"
)

// DefaultWidth is the column width assumed when the output is not a terminal
const DefaultWidth = 80

// TerminalWidth returns the column width of the terminal behind w.
// Non-file writers and non-terminal files report DefaultWidth.
func TerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return DefaultWidth
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return DefaultWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return DefaultWidth
	}

	return width
}
