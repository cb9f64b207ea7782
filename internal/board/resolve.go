package board

import "fmt"

// MoveKind tells whether a token moved because of gravity or compaction.
type MoveKind uint8

const (
	MoveFall  MoveKind = iota // downward within a column
	MoveSlide                 // sideways with its column
)

// String returns the string representation of the move kind.
func (k MoveKind) String() string {
	switch k {
	case MoveFall:
		return "fall"
	case MoveSlide:
		return "slide"
	default:
		return "unknown"
	}
}

// Move records one token changing cells.
type Move struct {
	Token TokenID
	Color Color
	From  Coord
	To    Coord
	Kind  MoveKind
}

// Distance returns the number of cells travelled.
func (m Move) Distance() int {
	return m.From.Manhattan(m.To)
}

// Settlement is everything that moved while the board settled after a removal.
type Settlement struct {
	Falls  []Move
	Slides []Move
}

// Empty reports whether nothing moved.
func (s Settlement) Empty() bool {
	return len(s.Falls) == 0 && len(s.Slides) == 0
}

// RemoveGroup takes every member of grp off the board. Their handles become
// invalid. The group must hold at least two tokens and must still match the
// board; otherwise nothing is changed.
func (g *Grid) RemoveGroup(grp Group) error {
	if grp.Len() < 2 {
		return fmt.Errorf("remove group of %d: %w", grp.Len(), ErrInvalidGroupSize)
	}

	cells := make([]int, 0, grp.Len())
	seen := make(map[int]struct{}, grp.Len())
	for _, m := range grp.Members {
		if !g.InBounds(m.Cell) {
			return fmt.Errorf("remove group: member at %v: %w", m.Cell, ErrOutOfBounds)
		}
		idx := g.index(m.Cell)
		if _, dup := seen[idx]; dup || g.cells[idx].token != m.Token || m.Token == NoToken {
			return fmt.Errorf("remove group: member at %v: %w", m.Cell, ErrStaleGroup)
		}
		seen[idx] = struct{}{}
		cells = append(cells, idx)
	}

	for _, idx := range cells {
		g.detach(idx)
	}
	g.sealed = true
	return nil
}

// ApplyGravity lets tokens fall into the empty cells below them. Each column
// is scanned bottom-up once, so every token moves at most once.
func (g *Grid) ApplyGravity() []Move {
	var moves []Move
	for x := 0; x < g.width; x++ {
		write := 0
		for y := 0; y < g.height; y++ {
			from := g.index(C(x, y))
			if !g.cells[from].Occupied() {
				continue
			}
			if y != write {
				to := g.index(C(x, write))
				id := g.move(from, to)
				moves = append(moves, Move{
					Token: id,
					Color: g.tokens[id].color,
					From:  C(x, y),
					To:    C(x, write),
					Kind:  MoveFall,
				})
			}
			write++
		}
	}
	return moves
}

// CompactColumns closes the gaps left by empty columns, pushing the remaining
// columns toward the configured edge. Rows are preserved; each column moves
// at most once.
func (g *Grid) CompactColumns() []Move {
	var moves []Move

	target, step := g.width-1, -1
	if g.compaction == CompactLeft {
		target, step = 0, 1
	}

	for x := target; x >= 0 && x < g.width; x += step {
		if !g.columnOccupied(x) {
			continue
		}
		if x != target {
			moves = g.shiftColumn(x, target, moves)
		}
		target += step
	}
	return moves
}

func (g *Grid) shiftColumn(from, to int, moves []Move) []Move {
	for y := 0; y < g.height; y++ {
		src := g.index(C(from, y))
		if !g.cells[src].Occupied() {
			continue
		}
		id := g.move(src, g.index(C(to, y)))
		moves = append(moves, Move{
			Token: id,
			Color: g.tokens[id].color,
			From:  C(from, y),
			To:    C(to, y),
			Kind:  MoveSlide,
		})
	}
	return moves
}

// Settle applies gravity and then compacts columns.
func (g *Grid) Settle() Settlement {
	falls := g.ApplyGravity()
	slides := g.CompactColumns()
	return Settlement{Falls: falls, Slides: slides}
}
