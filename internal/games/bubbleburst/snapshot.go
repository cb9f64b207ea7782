package bubbleburst

import "github.com/vovakirdan/bubbleburst/internal/board"

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	ID        string
	Board     string // ASCII board, top row first
	Cursor    board.Coord
	Hovered   int // size of the group under the cursor, 0 when empty
	Score     int
	Moves     int
	Popped    int
	Remaining int
	Phase     Phase
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	hovered := 0
	if g.hoverOK {
		hovered = g.hovered.Len()
	}
	return Snapshot{
		Tick:      g.tick,
		ID:        g.ID(),
		Board:     g.grid.String(),
		Cursor:    g.cursor,
		Hovered:   hovered,
		Score:     g.tally.Score,
		Moves:     g.tally.Moves,
		Popped:    g.tally.Popped,
		Remaining: g.grid.TokenCount(),
		Phase:     g.phase,
	}
}
