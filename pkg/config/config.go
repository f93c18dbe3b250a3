// Package config holds the settings of the render command and their
// validation. Settings come from CLI flags and optionally from a YAML file,
// with flags taking precedence.
package config

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// StyleNames lists the accepted border style names.
var StyleNames = []string{"single", "double", "rounded", "ascii", "none"}

// AlignNames lists the accepted per-column alignment tokens.
var AlignNames = []string{"left", "center", "right", "l", "c", "r"}

// Render holds the settings of the render command.
type Render struct {
	Style       string `yaml:"style"`         // border style name
	Align       string `yaml:"align"`         // comma-separated alignment per column
	MaxColWidth int    `yaml:"max_col_width"` // cap per column, 0 = unlimited
	Width       int    `yaml:"width"`         // total table width, 0 = fit to terminal
	Separator   string `yaml:"separator"`     // CSV field separator
	NoColor     bool   `yaml:"no_color"`
	Output      string `yaml:"output"` // output file, empty = stdout
}

// Default returns the render settings used when nothing else is specified.
func Default() Render {
	return Render{
		Style:     "single",
		Separator: ",",
	}
}

// ApplyFile overrides c with the settings from a YAML file.
func (c *Render) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("os.ReadFile(%s): %s", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %s", path, err)
	}

	return nil
}

// Validate ...
func (c *Render) Validate() []error {
	var errors []error

	if !contains(StyleNames, c.Style) {
		errors = append(errors, fmt.Errorf("'--style' must be one of %s", strings.Join(StyleNames, "|")))
	}

	if c.Align != "" {
		for _, tok := range strings.Split(c.Align, ",") {
			if !contains(AlignNames, strings.TrimSpace(tok)) {
				errors = append(errors, fmt.Errorf("'--align' token %q must be one of %s", tok, strings.Join(AlignNames, "|")))
			}
		}
	}

	if c.MaxColWidth < 0 {
		errors = append(errors, fmt.Errorf("'--max-col-width' must not be negative"))
	}

	if c.Width < 0 {
		errors = append(errors, fmt.Errorf("'--width' must not be negative"))
	}

	if utf8.RuneCountInString(c.Separator) != 1 {
		errors = append(errors, fmt.Errorf("'--separator' must be a single character"))
	}

	return errors
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
