package table

import "testing"

func TestStyle_BorderLine(t *testing.T) {
	t.Parallel()

	widths := []int{2, 5}

	tests := []struct {
		name  string
		style Style
		kind  borderKind
		want  string
	}{
		{"single top", StyleSingle, borderTop, "┌────┬───────┐\n"},
		{"single middle", StyleSingle, borderMiddle, "├────┼───────┤\n"},
		{"single bottom", StyleSingle, borderBottom, "└────┴───────┘\n"},
		{"double top", StyleDouble, borderTop, "╔════╦═══════╗\n"},
		{"rounded top", StyleRounded, borderTop, "╭────┬───────╮\n"},
		{"rounded bottom", StyleRounded, borderBottom, "╰────┴───────╯\n"},
		{"ascii top", StyleASCII, borderTop, "+----+-------+\n"},
		{"none top", StyleNone, borderTop, "              \n"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := tc.style.borderLine(widths, tc.kind); got != tc.want {
				t.Errorf("borderLine(%v) = %q, want %q", widths, got, tc.want)
			}
		})
	}
}

func TestStyle_BorderLine_NoColumns(t *testing.T) {
	t.Parallel()

	if got := StyleSingle.borderLine(nil, borderTop); got != "" {
		t.Errorf("borderLine(nil) = %q, want empty", got)
	}
}

func TestStyle_IsNone(t *testing.T) {
	t.Parallel()

	if !StyleNone.IsNone() {
		t.Error("StyleNone.IsNone() = false, want true")
	}
	for _, s := range []Style{StyleSingle, StyleDouble, StyleRounded, StyleASCII} {
		if s.IsNone() {
			t.Error("IsNone() = true for a bordered style, want false")
		}
	}
}
