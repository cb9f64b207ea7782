package board

// TokenID is a handle to a token owned by a Grid. Handles stay valid until
// the token is removed; they are never reused.
type TokenID int

// NoToken is the zero handle for "no token".
const NoToken TokenID = -1

// Token is a read-only view of a live token.
type Token struct {
	ID    TokenID
	Color Color
	Cell  Coord
}

// tokenSlot is the arena entry backing a TokenID.
type tokenSlot struct {
	color Color
	cell  int // index of the owning cell; -1 once removed
}

func (t tokenSlot) live() bool {
	return t.cell >= 0
}
