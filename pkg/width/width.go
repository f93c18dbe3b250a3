// Package width measures the display width of strings as a terminal renders
// them: ANSI escape sequences take no columns, East Asian wide characters
// take two.
package width

import "github.com/mattn/go-runewidth"

// Visible returns the number of terminal columns s occupies.
func Visible(s string) int {
	if isASCII(s) {
		return len(s)
	}

	return runewidth.StringWidth(StripANSI(s))
}

// Truncate cuts s down to at most max display columns, skipping over ANSI
// escape sequences. When content was removed and at least one column remains,
// the last column becomes an ellipsis.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if Visible(s) <= max {
		return s
	}

	plain := StripANSI(s)
	cut := runewidth.Truncate(plain, max, "")
	if max >= 2 {
		cut = runewidth.Truncate(plain, max-1, "") + "…"
	}

	return cut
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 || s[i] == '\x1b' {
			return false
		}
	}
	return true
}
