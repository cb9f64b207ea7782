// Package board implements the Bubbleburst board: a grid of coloured tokens,
// connected-group search, removal with gravity and column compaction, the
// no-more-moves check and scoring.
//
// Row 0 is the bottom of the board. All operations are synchronous and
// return data describing what changed; a Grid is not safe for concurrent use.
package board

import (
	"fmt"
	"strings"
)

// Compaction selects which edge empty columns are closed toward.
type Compaction uint8

const (
	CompactRight Compaction = iota // toward the highest x index
	CompactLeft                    // toward x = 0
)

// String returns the config name of the compaction direction.
func (c Compaction) String() string {
	switch c {
	case CompactRight:
		return "right"
	case CompactLeft:
		return "left"
	default:
		return "unknown"
	}
}

// ParseCompaction converts a config name to a Compaction.
func ParseCompaction(s string) (Compaction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "right":
		return CompactRight, nil
	case "left":
		return CompactLeft, nil
	default:
		return CompactRight, fmt.Errorf("board: unknown compaction %q", s)
	}
}

// Option configures a Grid at construction time.
type Option func(*Grid)

// WithCompaction sets the direction used by CompactColumns.
func WithCompaction(c Compaction) Option {
	return func(g *Grid) {
		g.compaction = c
	}
}

// Grid owns every cell and every token of a board.
// Cells are stored in row-major order: index = y*width + x.
type Grid struct {
	width      int
	height     int
	cells      []Cell
	tokens     []tokenSlot
	live       int
	sealed     bool
	compaction Compaction
}

// New builds an empty width x height grid with neighbour links in place.
func New(width, height int, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("new grid %dx%d: %w", width, height, ErrInvalidDimensions)
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for _, opt := range opts {
		opt(g)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := C(x, y)
			cell := &g.cells[g.index(c)]
			cell.coord = c
			cell.token = NoToken
			for _, d := range AllDirs {
				n := c.Step(d)
				if g.InBounds(n) {
					cell.neighbors[d] = g.index(n)
				} else {
					cell.neighbors[d] = noCell
				}
			}
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Size returns the number of cells.
func (g *Grid) Size() int { return len(g.cells) }

// Compaction returns the configured compaction direction.
func (g *Grid) Compaction() Compaction { return g.compaction }

// TokenCount returns the number of tokens on the board.
func (g *Grid) TokenCount() int { return g.live }

func (g *Grid) index(c Coord) int {
	return c.Y*g.width + c.X
}

// InBounds reports whether c lies on the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// CellAt returns the cell at c. The second result is false when c is out of bounds.
func (g *Grid) CellAt(c Coord) (*Cell, bool) {
	if !g.InBounds(c) {
		return nil, false
	}
	return &g.cells[g.index(c)], true
}

// Neighbor returns the coordinate of the neighbour of c in direction d.
func (g *Grid) Neighbor(c Coord, d Dir) (Coord, bool) {
	if !g.InBounds(c) {
		return Coord{}, false
	}
	n := g.cells[g.index(c)].neighbors[d]
	if n == noCell {
		return Coord{}, false
	}
	return g.cells[n].coord, true
}

// IsColumnEmpty reports whether column x has no token in its bottom cell.
// After gravity this is equivalent to the whole column being empty.
// Columns outside the grid are reported empty.
func (g *Grid) IsColumnEmpty(x int) bool {
	if x < 0 || x >= g.width {
		return true
	}
	return g.cells[x].token == NoToken
}

// Token returns the live token with the given handle.
func (g *Grid) Token(id TokenID) (Token, bool) {
	if id < 0 || int(id) >= len(g.tokens) {
		return Token{}, false
	}
	slot := g.tokens[id]
	if !slot.live() {
		return Token{}, false
	}
	return Token{ID: id, Color: slot.color, Cell: g.cells[slot.cell].coord}, true
}

// TokenAt returns the token occupying c.
func (g *Grid) TokenAt(c Coord) (Token, bool) {
	cell, ok := g.CellAt(c)
	if !ok || !cell.Occupied() {
		return Token{}, false
	}
	return g.Token(cell.token)
}

// ColorAt returns the colour of the token at c, or ColorNone.
func (g *Grid) ColorAt(c Coord) Color {
	t, ok := g.TokenAt(c)
	if !ok {
		return ColorNone
	}
	return t.Color
}

// Place puts a new token of the given colour into an empty cell.
// Placement is only allowed while the board is being filled; once a group
// has been removed the grid is sealed.
func (g *Grid) Place(c Coord, color Color) (TokenID, error) {
	if g.sealed {
		return NoToken, fmt.Errorf("place at %v: %w", c, ErrGridSealed)
	}
	if !color.Valid() {
		return NoToken, fmt.Errorf("place %v at %v: %w", color, c, ErrInvalidColor)
	}
	if !g.InBounds(c) {
		return NoToken, fmt.Errorf("place at %v: %w", c, ErrOutOfBounds)
	}
	idx := g.index(c)
	if g.cells[idx].Occupied() {
		return NoToken, fmt.Errorf("place at %v: %w", c, ErrCellOccupied)
	}

	id := TokenID(len(g.tokens))
	g.tokens = append(g.tokens, tokenSlot{color: color, cell: idx})
	g.cells[idx].token = id
	g.live++
	return id, nil
}

// Clone returns a deep copy of the grid. Token handles are preserved.
func (g *Grid) Clone() *Grid {
	out := *g
	out.cells = make([]Cell, len(g.cells))
	copy(out.cells, g.cells)
	out.tokens = make([]tokenSlot, len(g.tokens))
	copy(out.tokens, g.tokens)
	return &out
}

// move re-homes the token in cell from into the empty cell to.
func (g *Grid) move(from, to int) TokenID {
	id := g.cells[from].token
	g.cells[from].token = NoToken
	g.cells[to].token = id
	g.tokens[id].cell = to
	return id
}

// detach removes the token in cell idx from the board and invalidates its handle.
func (g *Grid) detach(idx int) {
	id := g.cells[idx].token
	g.cells[idx].token = NoToken
	g.tokens[id].cell = noCell
	g.live--
}

// columnOccupied reports whether any cell of column x holds a token.
func (g *Grid) columnOccupied(x int) bool {
	for y := 0; y < g.height; y++ {
		if g.cells[y*g.width+x].Occupied() {
			return true
		}
	}
	return false
}
