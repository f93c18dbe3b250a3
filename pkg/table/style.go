package table

import "strings"

// Style holds the border characters used to draw a table.
type Style struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
	Cross       rune
	TopTee      rune
	BottomTee   rune
	LeftTee     rune
	RightTee    rune
}

var (
	// StyleSingle uses single line box drawing characters: ┌─┬┐│├┼┤└┴┘
	StyleSingle = Style{
		TopLeft:     '┌',
		TopRight:    '┐',
		BottomLeft:  '└',
		BottomRight: '┘',
		Horizontal:  '─',
		Vertical:    '│',
		Cross:       '┼',
		TopTee:      '┬',
		BottomTee:   '┴',
		LeftTee:     '├',
		RightTee:    '┤',
	}

	// StyleDouble uses double line box drawing characters: ╔═╦╗║╠╬╣╚╩╝
	StyleDouble = Style{
		TopLeft:     '╔',
		TopRight:    '╗',
		BottomLeft:  '╚',
		BottomRight: '╝',
		Horizontal:  '═',
		Vertical:    '║',
		Cross:       '╬',
		TopTee:      '╦',
		BottomTee:   '╩',
		LeftTee:     '╠',
		RightTee:    '╣',
	}

	// StyleRounded uses rounded corners: ╭─┬╮│├┼┤╰┴╯
	StyleRounded = Style{
		TopLeft:     '╭',
		TopRight:    '╮',
		BottomLeft:  '╰',
		BottomRight: '╯',
		Horizontal:  '─',
		Vertical:    '│',
		Cross:       '┼',
		TopTee:      '┬',
		BottomTee:   '┴',
		LeftTee:     '├',
		RightTee:    '┤',
	}

	// StyleASCII uses only ASCII characters: +-+|
	StyleASCII = Style{
		TopLeft:     '+',
		TopRight:    '+',
		BottomLeft:  '+',
		BottomRight: '+',
		Horizontal:  '-',
		Vertical:    '|',
		Cross:       '+',
		TopTee:      '+',
		BottomTee:   '+',
		LeftTee:     '+',
		RightTee:    '+',
	}

	// StyleNone draws no borders, only spacing.
	StyleNone = Style{
		TopLeft:     ' ',
		TopRight:    ' ',
		BottomLeft:  ' ',
		BottomRight: ' ',
		Horizontal:  ' ',
		Vertical:    ' ',
		Cross:       ' ',
		TopTee:      ' ',
		BottomTee:   ' ',
		LeftTee:     ' ',
		RightTee:    ' ',
	}
)

// IsNone reports whether the style draws no visible borders.
func (s Style) IsNone() bool {
	return s.Horizontal == ' ' && s.Vertical == ' '
}

type borderKind int

const (
	borderTop borderKind = iota
	borderMiddle
	borderBottom
)

// borderLine renders one horizontal border line for columns of the given
// widths, including the trailing newline.
func (s Style) borderLine(widths []int, kind borderKind) string {
	if len(widths) == 0 {
		return ""
	}

	var start, end, sep rune
	switch kind {
	case borderTop:
		start, end, sep = s.TopLeft, s.TopRight, s.TopTee
	case borderBottom:
		start, end, sep = s.BottomLeft, s.BottomRight, s.BottomTee
	default:
		start, end, sep = s.LeftTee, s.RightTee, s.Cross
	}

	var b strings.Builder
	b.WriteRune(start)
	for i, w := range widths {
		for j := 0; j < w+2; j++ { // cell width plus one space of padding per side
			b.WriteRune(s.Horizontal)
		}
		if i < len(widths)-1 {
			b.WriteRune(sep)
		}
	}
	b.WriteRune(end)
	b.WriteByte('\n')

	return b.String()
}
