//go:build windows
// +build windows

package termsize

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

// GetFile retrieves the terminal size for the given console handle.
// It requests the console screen buffer info and derives the dimensions from
// the visible window rectangle, or returns an error if f is not a console.
func GetFile(f *os.File) (Size, error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(f.Fd()), &info); err != nil {
		return Size{}, fmt.Errorf("GetConsoleScreenBufferInfo(%s): %s", f.Name(), err)
	}

	return sizeFromWindow(info.Window), nil
}

func sizeFromWindow(w windows.SmallRect) Size {
	return Size{
		Cols: int(w.Right-w.Left) + 1,
		Rows: int(w.Bottom-w.Top) + 1,
	}
}
