// Package table renders text tables with Unicode or ASCII borders. Cell
// widths are measured as a terminal displays them, so colored cells and wide
// characters line up, and a table can be shrunk to fit a terminal width.
package table

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"termtab/pkg/width"
)

// Align controls how cell content is placed within its column.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Table holds headers, rows and rendering options. All setters return the
// table so calls can be chained.
type Table struct {
	headers   []string
	rows      [][]string
	style     Style
	aligns    []Align
	maxWidths []int // 0 = unlimited

	headerColor *color.Color
	colColors   []*color.Color
}

// New creates a table with the given column headers.
func New(headers ...string) *Table {
	return &Table{
		headers:   append([]string(nil), headers...),
		style:     StyleSingle,
		aligns:    make([]Align, len(headers)),
		maxWidths: make([]int, len(headers)),
		colColors: make([]*color.Color, len(headers)),
	}
}

// AddRow appends a row. Values beyond the header count are dropped, missing
// values become empty cells.
func (t *Table) AddRow(values ...interface{}) *Table {
	if len(t.headers) == 0 {
		return t
	}

	row := make([]string, len(t.headers))
	for i, val := range values {
		if i >= len(t.headers) {
			break
		}
		row[i] = cellString(val)
	}

	t.rows = append(t.rows, row)
	return t
}

func cellString(val interface{}) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// SetStyle sets the border style.
func (t *Table) SetStyle(style Style) *Table {
	t.style = style
	return t
}

// SetAlign sets the alignment of column col.
func (t *Table) SetAlign(col int, align Align) *Table {
	if col >= 0 && col < len(t.aligns) {
		t.aligns[col] = align
	}
	return t
}

// SetMaxWidth caps the display width of column col. Zero means unlimited.
func (t *Table) SetMaxWidth(col int, w int) *Table {
	if col >= 0 && col < len(t.maxWidths) {
		t.maxWidths[col] = w
	}
	return t
}

// SetHeaderColor styles the header row.
func (t *Table) SetHeaderColor(c *color.Color) *Table {
	t.headerColor = c
	return t
}

// SetColumnColor styles the body cells of column col.
func (t *Table) SetColumnColor(col int, c *color.Color) *Table {
	if col >= 0 && col < len(t.colColors) {
		t.colColors[col] = c
	}
	return t
}

// FitTo shrinks column width caps until the rendered table is at most total
// columns wide. The widest column loses space first. Columns never shrink
// below one column of content.
func (t *Table) FitTo(total int) *Table {
	n := len(t.headers)
	if n == 0 {
		return t
	}

	widths := t.measureColumns()
	overhead := 3*n + 1 // per column: 2 padding + right border; plus left border

	sum := 0
	for _, w := range widths {
		sum += w
	}

	for sum+overhead > total {
		widest := 0
		for i, w := range widths {
			if w > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= 1 {
			break
		}
		widths[widest]--
		sum--
	}

	copy(t.maxWidths, widths)
	return t
}

// measureColumns returns the display width of each column, capped by any
// configured max widths.
func (t *Table) measureColumns() []int {
	widths := make([]int, len(t.headers))

	for i, h := range t.headers {
		widths[i] = width.Visible(h)
	}

	for _, row := range t.rows {
		for i, cell := range row {
			if w := width.Visible(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	for i, max := range t.maxWidths {
		if max > 0 && widths[i] > max {
			widths[i] = max
		}
	}

	return widths
}

func alignCell(cell string, w int, align Align) string {
	vis := width.Visible(cell)
	if vis > w {
		cell = width.Truncate(cell, w)
		vis = width.Visible(cell)
	}

	pad := w - vis
	if pad <= 0 {
		return cell
	}

	switch align {
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + cell + strings.Repeat(" ", pad-left)
	case AlignRight:
		return strings.Repeat(" ", pad) + cell
	default:
		return cell + strings.Repeat(" ", pad)
	}
}

// colorFor returns the color of column i for header or body cells.
func (t *Table) colorFor(i int, header bool) *color.Color {
	if header {
		return t.headerColor
	}
	return t.colColors[i]
}

func (t *Table) renderRow(b *strings.Builder, row []string, widths []int, header bool) {
	b.WriteRune(t.style.Vertical)

	for i, w := range widths {
		var cell string
		if i < len(row) {
			cell = row[i]
		}

		cell = alignCell(cell, w, t.aligns[i])

		if c := t.colorFor(i, header); c != nil {
			cell = c.Sprint(cell)
		}

		b.WriteByte(' ')
		b.WriteString(cell)
		b.WriteByte(' ')
		b.WriteRune(t.style.Vertical)
	}

	b.WriteByte('\n')
}

// String renders the table.
func (t *Table) String() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := t.measureColumns()

	var b strings.Builder
	b.WriteString(t.style.borderLine(widths, borderTop))
	t.renderRow(&b, t.headers, widths, true)
	b.WriteString(t.style.borderLine(widths, borderMiddle))

	for _, row := range t.rows {
		t.renderRow(&b, row, widths, false)
	}

	b.WriteString(t.style.borderLine(widths, borderBottom))

	return b.String()
}

// Fprint renders the table to w.
func (t *Table) Fprint(w io.Writer) error {
	_, err := io.WriteString(w, t.String())
	return err
}

// WriteTo renders the table to w, implementing io.WriterTo.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.String())
	return int64(n), err
}
