//go:build !windows
// +build !windows

package termsize

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// GetFile retrieves the terminal size for the given file descriptor.
// It issues a TIOCGWINSZ ioctl against f and returns the reported window
// size, or an error if f does not refer to a terminal.
func GetFile(f *os.File) (Size, error) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return Size{}, fmt.Errorf("ioctl(%s, TIOCGWINSZ): %s", f.Name(), err)
	}

	return Size{
		Cols: int(ws.Col),
		Rows: int(ws.Row),
	}, nil
}
