//go:build windows
// +build windows

package termsize

import (
	"os"
	"testing"

	"golang.org/x/sys/windows"
)

func TestSizeFromWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rect windows.SmallRect
		want Size
	}{
		{
			name: "standard console",
			rect: windows.SmallRect{Left: 0, Top: 0, Right: 79, Bottom: 23},
			want: Size{Cols: 80, Rows: 24},
		},
		{
			name: "wide console",
			rect: windows.SmallRect{Left: 0, Top: 0, Right: 119, Bottom: 29},
			want: Size{Cols: 120, Rows: 30},
		},
		{
			name: "scrolled window",
			rect: windows.SmallRect{Left: 0, Top: 100, Right: 79, Bottom: 123},
			want: Size{Cols: 80, Rows: 24},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := sizeFromWindow(tc.rect); got != tc.want {
				t.Errorf("sizeFromWindow(%+v) = %+v, want %+v", tc.rect, got, tc.want)
			}
		})
	}
}

func TestGetFile_NotAConsole(t *testing.T) {
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
