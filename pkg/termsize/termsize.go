// Package termsize queries the dimensions of the terminal attached to a file,
// typically standard output. It supports Unix systems via the TIOCGWINSZ ioctl
// and Windows via the console screen buffer API.
package termsize

import (
	"os"

	"golang.org/x/term"
)

// Size represents the dimensions of a terminal window in columns and rows.
type Size struct {
	Cols int // Number of columns (width) of the terminal
	Rows int // Number of rows (height) of the terminal
}

// Get retrieves the current terminal size from stdout.
// It returns an error if stdout is not attached to a terminal, e.g.,
// when output is redirected to a file or pipe.
func Get() (Size, error) {
	return GetFile(os.Stdout)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
