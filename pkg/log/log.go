// Package log provides colored status output on stderr.
package log

import (
	"os"

	"github.com/fatih/color"
)

var red = color.New(color.FgRed).FprintfFunc()
var cyan = color.New(color.FgCyan).FprintfFunc()

// ErrorMsg prints an error message to stderr in red color.
func ErrorMsg(format string, a ...interface{}) {
	red(os.Stderr, "error: "+format, a...)
}

// InfoMsg prints an informational message to stderr in cyan color.
func InfoMsg(format string, a ...interface{}) {
	cyan(os.Stderr, format, a...)
}
