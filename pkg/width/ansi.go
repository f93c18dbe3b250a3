package width

import "strings"

// HasANSI reports whether s contains an ANSI escape sequence.
func HasANSI(s string) bool {
	return strings.ContainsRune(s, '\x1b')
}

// StripANSI removes all ANSI escape sequences from s.
func StripANSI(s string) string {
	if !HasANSI(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	i := 0
	for i < len(s) {
		if s[i] == '\x1b' {
			i = skipSequence(s, i)
			continue
		}
		b.WriteByte(s[i])
		i++
	}

	return b.String()
}

// skipSequence advances past the escape sequence starting at s[i] and returns
// the index of the first byte after it. Handles CSI (ESC [ ... final byte in
// 0x40-0x7E), OSC (ESC ] ... BEL or ST) and plain two-byte ESC sequences.
func skipSequence(s string, i int) int {
	i++ // ESC
	if i >= len(s) {
		return i
	}

	switch s[i] {
	case '[':
		i++
		for i < len(s) {
			if s[i] >= 0x40 && s[i] <= 0x7e {
				return i + 1
			}
			i++
		}
		return i
	case ']':
		i++
		for i < len(s) {
			if s[i] == '\x07' {
				return i + 1
			}
			if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
			i++
		}
		return i
	default:
		return i + 1
	}
}
