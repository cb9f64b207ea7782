package board

import "fmt"

// Rand is the random source used to fill a board. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Fill places a token of a uniformly random palette colour in every empty cell.
func Fill(g *Grid, palette []Color, rng Rand) error {
	if len(palette) < 2 {
		return fmt.Errorf("fill: %d colors: %w", len(palette), ErrInvalidPalette)
	}
	for _, c := range palette {
		if !c.Valid() {
			return fmt.Errorf("fill: %v: %w", c, ErrInvalidPalette)
		}
	}

	for i := range g.cells {
		if g.cells[i].Occupied() {
			continue
		}
		color := palette[rng.Intn(len(palette))]
		if _, err := g.Place(g.cells[i].coord, color); err != nil {
			return fmt.Errorf("fill: %w", err)
		}
	}
	return nil
}
