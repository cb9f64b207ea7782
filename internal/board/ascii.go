package board

import (
	"fmt"
	"strings"
)

// String renders the board as ASCII, top row first, one colour letter per
// cell and '.' for empty cells.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := g.height - 1; y >= 0; y-- {
		for x := 0; x < g.width; x++ {
			sb.WriteRune(g.ColorAt(C(x, y)).Char())
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Parse builds a grid from an ASCII layout as produced by String: rows are
// separated by newlines, the first row is the top of the board, '.' marks an
// empty cell. Leading and trailing whitespace of each row is ignored.
func Parse(layout string, opts ...Option) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(strings.TrimSpace(layout), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("parse layout: %w", ErrInvalidDimensions)
	}

	width := len([]rune(rows[0]))
	g, err := New(width, len(rows), opts...)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("parse layout: row %d has %d cells, want %d: %w", i, len(runes), width, ErrInvalidDimensions)
		}
		y := len(rows) - 1 - i
		for x, r := range runes {
			if r == '.' {
				continue
			}
			color, ok := ParseColor(string(r))
			if !ok {
				return nil, fmt.Errorf("parse layout: %q at %v: %w", r, C(x, y), ErrInvalidColor)
			}
			if _, err := g.Place(C(x, y), color); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}
