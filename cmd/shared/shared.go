// Package shared provides common CLI flag definitions and parsers used
// across termtab's command-line interface.
package shared

import (
	"github.com/urfave/cli/v3"
)

const categoryLayout = "layout"
const categoryOutput = "output"

// StyleFlag is the name of the flag to select the border style.
const StyleFlag = "style"

// AlignFlag is the name of the flag to set per-column alignment.
const AlignFlag = "align"

// MaxColWidthFlag is the name of the flag to cap individual column widths.
const MaxColWidthFlag = "max-col-width"

// WidthFlag is the name of the flag to set the total table width.
const WidthFlag = "width"

// SeparatorFlag is the name of the flag to set the input field separator.
const SeparatorFlag = "separator"

// NoColorFlag is the name of the flag to disable colored output.
const NoColorFlag = "no-color"

// ConfigFlag is the name of the flag to load settings from a YAML file.
const ConfigFlag = "config"

// OutputFlag is the name of the flag to write output to a file.
const OutputFlag = "output"

// GetRenderFlags returns the CLI flags of the render command.
func GetRenderFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     StyleFlag,
			Usage:    "Border style: single|double|rounded|ascii|none",
			Category: categoryLayout,
			Value:    "single",
			Required: false,
		},
		&cli.StringFlag{
			Name:     AlignFlag,
			Aliases:  []string{"a"},
			Usage:    "Comma-separated column alignment, e.g. 'left,right,center' or 'l,r,c'",
			Category: categoryLayout,
			Value:    "",
			Required: false,
		},
		&cli.IntFlag{
			Name:     MaxColWidthFlag,
			Usage:    "Maximum display width per column, 0 for unlimited",
			Category: categoryLayout,
			Value:    0,
			Required: false,
		},
		&cli.IntFlag{
			Name:     WidthFlag,
			Aliases:  []string{"w"},
			Usage:    "Total table width, 0 to fit the current terminal",
			Category: categoryLayout,
			Value:    0,
			Required: false,
		},
		&cli.StringFlag{
			Name:     SeparatorFlag,
			Aliases:  []string{"s"},
			Usage:    "Input field separator",
			Category: categoryLayout,
			Value:    ",",
			Required: false,
		},
		&cli.BoolFlag{
			Name:     NoColorFlag,
			Usage:    "Disable colored output",
			Category: categoryOutput,
			Value:    false,
			Required: false,
		},
		&cli.StringFlag{
			Name:     ConfigFlag,
			Aliases:  []string{"c"},
			Usage:    "YAML file with render settings, overridden by flags",
			Category: categoryOutput,
			Value:    "",
			Required: false,
		},
		&cli.StringFlag{
			Name:     OutputFlag,
			Aliases:  []string{"o"},
			Usage:    "Write the table to a file instead of stdout",
			Category: categoryOutput,
			Value:    "",
			Required: false,
		},
	}
}
