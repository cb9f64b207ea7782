package bubbleburst

import (
	"github.com/vovakirdan/bubbleburst/internal/board"
	"github.com/vovakirdan/bubbleburst/internal/core"
)

const (
	cellWidth = 2 // screen columns per bubble
	hudHeight = 3 // title, stats, blank line
	footer    = 2 // status message, controls
	minWidth  = 44
)

// layout maps board cells to screen cells. Board row 0 is drawn at the
// bottom of the frame.
type layout struct {
	frame  core.Rect // board border
	cols   int
	rows   int
	fits   bool
	hudY   int
	footer int
}

func computeLayout(cols, rows, screenW, screenH int) layout {
	frameW := cols*cellWidth + 3
	frameH := rows + 2
	totalH := hudHeight + frameH + footer

	area := core.CenterRect(screenW, screenH, core.Max(frameW, minWidth), totalH)
	frame := core.NewRect(area.X+(area.W-frameW)/2, area.Y+hudHeight, frameW, frameH)

	return layout{
		frame:  frame,
		cols:   cols,
		rows:   rows,
		fits:   screenW >= core.Max(frameW, minWidth) && screenH >= totalH,
		hudY:   area.Y,
		footer: frame.Bottom(),
	}
}

// screenPos returns the screen position of the bubble glyph for board cell (x, y).
func (l layout) screenPos(x, y int) (int, int) {
	return l.frame.X + 2 + x*cellWidth, l.frame.Y + 1 + (l.rows - 1 - y)
}

// cellAt maps a screen position to the board cell drawn there.
func (l layout) cellAt(sx, sy int) (board.Coord, bool) {
	inner := l.frame.Inset(1)
	if !inner.Contains(sx, sy) {
		return board.Coord{}, false
	}
	x := (sx - l.frame.X - 1) / cellWidth
	y := l.rows - 1 - (sy - l.frame.Y - 1)
	if x < 0 || x >= l.cols || y < 0 || y >= l.rows {
		return board.Coord{}, false
	}
	return board.C(x, y), true
}
