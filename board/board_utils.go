package board

import (
	"fmt"
	"strings"
)

// ToDisplayText returns a printable rendering of the board, top row first,
// with X for filled cells.
func (b *Board) ToDisplayText() string {
	var str strings.Builder
	str.WriteString("  ")
	for x := 0; x < b.width; x++ {
		str.WriteString(fmt.Sprintf("%d", x%10))
	}
	str.WriteString("\n")
	for y := b.height - 1; y >= 0; y-- {
		str.WriteString(fmt.Sprintf("%2d", y))
		for x := 0; x < b.width; x++ {
			if b.IsFilled(x, y) {
				str.WriteString("X")
			} else {
				str.WriteString(".")
			}
		}
		str.WriteString("\n")
	}
	return str.String()
}

func (b *Board) String() string {
	return b.ToDisplayText()
}

// SetFromRows replaces the board contents from a textual description, top
// row first. A '.' or ' ' is an empty cell; anything else is filled. Rows
// shorter than the board leave the remaining cells empty; fewer rows than
// the board height describe only the bottom of the field.
func (b *Board) SetFromRows(rows []string) error {
	if len(rows) > b.height {
		return fmt.Errorf("%d rows exceed board height %d", len(rows), b.height)
	}
	b.Reset()
	for i, row := range rows {
		if len(row) > b.width {
			return fmt.Errorf("row %d is wider than the board (%d > %d)",
				i, len(row), b.width)
		}
		y := len(rows) - 1 - i
		for x := 0; x < len(row); x++ {
			if row[x] != '.' && row[x] != ' ' {
				b.FillCell(x, y)
			}
		}
	}
	return nil
}
