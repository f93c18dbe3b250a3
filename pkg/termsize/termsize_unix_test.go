//go:build !windows
// +build !windows

package termsize

import (
	"os"
	"testing"

	"github.com/creack/pty"
)

// openPTY opens a pseudo-terminal resized to the given dimensions and
// returns the slave end.
func openPTY(t *testing.T, cols, rows uint16) *os.File {
	t.Helper()

	ptm, pts, err := pty.Open()
	if err != nil {
		t.Fatalf("pty.Open(): %s", err)
	}
	t.Cleanup(func() {
		ptm.Close()
		pts.Close()
	})

	if err := pty.Setsize(ptm, &pty.Winsize{Rows: rows, Cols: cols}); err != nil {
		t.Fatalf("pty.Setsize(%dx%d): %s", cols, rows, err)
	}

	return pts
}

func TestGetFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cols uint16
		rows uint16
	}{
		{"standard terminal", 80, 24},
		{"wide terminal", 120, 30},
		{"narrow terminal", 20, 5},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			pts := openPTY(t, tc.cols, tc.rows)

			size, err := GetFile(pts)
			if err != nil {
				t.Fatalf("GetFile(): %s", err)
			}

			if size.Cols != int(tc.cols) {
				t.Errorf("Cols = %d, want %d", size.Cols, tc.cols)
			}
			if size.Rows != int(tc.rows) {
				t.Errorf("Rows = %d, want %d", size.Rows, tc.rows)
			}
		})
	}
}

func TestGetFile_Stable(t *testing.T) {
	t.Parallel()

	pts := openPTY(t, 80, 24)

	first, err := GetFile(pts)
	if err != nil {
		t.Fatalf("GetFile() 1st call: %s", err)
	}
	second, err := GetFile(pts)
	if err != nil {
		t.Fatalf("GetFile() 2nd call: %s", err)
	}

	if first != second {
		t.Errorf("consecutive queries differ: %+v vs %+v", first, second)
	}
}

func TestGetFile_NotATerminal(t *testing.T) {
	t.Parallel()

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("os.CreateTemp(): %s", err)
	}
	defer f.Close()

	if _, err := GetFile(f); err == nil {
		t.Error("GetFile() on a regular file: expected error, got nil")
	}
}

func TestGet_RedirectedStdout(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("os.CreateTemp(): %s", err)
	}
	defer f.Close()

	old := os.Stdout
	os.Stdout = f
	defer func() { os.Stdout = old }()

	if _, err := Get(); err == nil {
		t.Error("Get() with stdout redirected to a file: expected error, got nil")
	}
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	pts := openPTY(t, 80, 24)
	if !IsTerminal(pts) {
		t.Error("IsTerminal(pts) = false, want true")
	}

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("os.CreateTemp(): %s", err)
	}
	defer f.Close()

	if IsTerminal(f) {
		t.Error("IsTerminal(regular file) = true, want false")
	}
}
