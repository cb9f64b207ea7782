package board

// HasValidMove reports whether any two orthogonally adjacent tokens share a
// colour. It stops at the first such pair.
func (g *Grid) HasValidMove() bool {
	visited := make([]bool, len(g.cells))
	for i := range g.cells {
		id := g.cells[i].token
		if id == NoToken {
			continue
		}
		visited[i] = true
		color := g.tokens[id].color
		for _, n := range g.cells[i].neighbors {
			if n == noCell || visited[n] {
				continue
			}
			if nid := g.cells[n].token; nid != NoToken && g.tokens[nid].color == color {
				return true
			}
		}
	}
	return false
}

// Cleared reports whether every token has been removed.
func (g *Grid) Cleared() bool {
	return g.live == 0
}
