package shared

import (
	"fmt"
	"strings"

	"termtab/pkg/table"
)

// ParseStyle maps a style name to its border style.
func ParseStyle(s string) (table.Style, error) {
	switch s {
	case "single":
		return table.StyleSingle, nil
	case "double":
		return table.StyleDouble, nil
	case "rounded":
		return table.StyleRounded, nil
	case "ascii":
		return table.StyleASCII, nil
	case "none":
		return table.StyleNone, nil
	default:
		return table.Style{}, fmt.Errorf("parsing %s: style should be single|double|rounded|ascii|none", s)
	}
}

// ParseAligns parses a comma-separated alignment list like "left,center,r"
// into per-column alignments. An empty string yields no alignments.
func ParseAligns(s string) ([]table.Align, error) {
	if s == "" {
		return nil, nil
	}

	tokens := strings.Split(s, ",")
	aligns := make([]table.Align, len(tokens))

	for i, tok := range tokens {
		switch strings.TrimSpace(tok) {
		case "left", "l":
			aligns[i] = table.AlignLeft
		case "center", "c":
			aligns[i] = table.AlignCenter
		case "right", "r":
			aligns[i] = table.AlignRight
		default:
			return nil, fmt.Errorf("parsing %s: alignment should be left|center|right (or l|c|r)", tok)
		}
	}

	return aligns, nil
}
