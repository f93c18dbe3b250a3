package format

import (
	"fmt"

	"termtab/pkg/termsize"
)

// Dimensions formats terminal dimensions as "COLSxROWS", e.g. "120x30".
func Dimensions(s termsize.Size) string {
	return fmt.Sprintf("%dx%d", s.Cols, s.Rows)
}
