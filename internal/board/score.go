package board

// ScoreDelta returns the points for removing a group of n tokens: n*(n+1).
func ScoreDelta(n int) int {
	if n <= 0 {
		return 0
	}
	return n * (n + 1)
}

// Tally keeps the running totals of a round.
type Tally struct {
	Score  int
	Moves  int
	Popped int
}

// Record adds one removal of n tokens and returns the points it earned.
func (t *Tally) Record(n int) int {
	delta := ScoreDelta(n)
	t.Score += delta
	t.Moves++
	t.Popped += n
	return delta
}
