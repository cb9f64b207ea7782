package board

const noCell = -1

// Cell is one position of the grid. It holds at most one token and knows
// its four orthogonal neighbours, which are fixed when the grid is built.
type Cell struct {
	coord     Coord
	token     TokenID
	neighbors [4]int // cell index per Dir, noCell on the border
}

// Coord returns the cell's coordinate.
func (c *Cell) Coord() Coord {
	return c.coord
}

// Occupied reports whether the cell holds a token.
func (c *Cell) Occupied() bool {
	return c.token != NoToken
}

// Token returns the handle of the token in this cell, or NoToken.
func (c *Cell) Token() TokenID {
	return c.token
}

// HasNeighbor reports whether the cell has a neighbour in direction d.
func (c *Cell) HasNeighbor(d Dir) bool {
	return c.neighbors[d] != noCell
}
