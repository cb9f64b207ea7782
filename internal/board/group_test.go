package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func depthsByCell(grp Group) map[Coord]int {
	out := make(map[Coord]int, grp.Len())
	for _, m := range grp.Members {
		out[m.Cell] = m.Depth
	}
	return out
}

func TestFindGroupRowOfThree(t *testing.T) {
	g, err := Parse("RRR")
	require.NoError(t, err)

	grp, err := g.FindGroup(C(0, 0))
	require.NoError(t, err)

	assert.Equal(t, ColorRed, grp.Color)
	assert.Equal(t, map[Coord]int{C(0, 0): 0, C(1, 0): 1, C(2, 0): 2}, depthsByCell(grp))
	assert.Equal(t, 2, grp.MaxDepth())
}

func TestFindGroupCheckerboardIsSingleton(t *testing.T) {
	g, err := Parse(`
		BR
		RB
	`)
	require.NoError(t, err)

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			grp, err := g.FindGroup(C(x, y))
			require.NoError(t, err)
			assert.Equal(t, 1, grp.Len())
			assert.False(t, grp.Removable())
		}
	}
}

func TestFindGroupDepthFollowsShortestPath(t *testing.T) {
	// The right-hand R at (2,0) is reached around the B, not through it.
	g, err := Parse(`
		RRR
		RBR
	`)
	require.NoError(t, err)

	grp, err := g.FindGroup(C(0, 0))
	require.NoError(t, err)

	want := map[Coord]int{
		C(0, 0): 0,
		C(0, 1): 1,
		C(1, 1): 2,
		C(2, 1): 3,
		C(2, 0): 4,
	}
	assert.Equal(t, want, depthsByCell(grp))
	assert.False(t, grp.Contains(C(1, 0)))
}

func TestFindGroupBFSOrder(t *testing.T) {
	g, err := Parse(`
		GGG
		GGG
		GGG
	`)
	require.NoError(t, err)

	grp, err := g.FindGroup(C(1, 1))
	require.NoError(t, err)
	require.Equal(t, 9, grp.Len())

	seed, ok := grp.Seed()
	require.True(t, ok)
	assert.Equal(t, C(1, 1), seed.Cell)

	for i := 1; i < grp.Len(); i++ {
		assert.LessOrEqual(t, grp.Members[i-1].Depth, grp.Members[i].Depth)
	}

	layers := grp.Layers()
	require.Len(t, layers, 3)
	assert.Len(t, layers[0], 1)
	assert.Len(t, layers[1], 4)
	assert.Len(t, layers[2], 4)
}

func TestFindGroupErrors(t *testing.T) {
	g, err := Parse("R.")
	require.NoError(t, err)

	_, err = g.FindGroup(C(1, 0))
	assert.ErrorIs(t, err, ErrEmptySeed)

	_, err = g.FindGroup(C(3, 0))
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = g.FindGroup(C(0, -1))
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestGroupsPartitionBoard(t *testing.T) {
	g, err := Parse(`
		RRB
		GRB
	`)
	require.NoError(t, err)

	groups := g.Groups()
	require.Len(t, groups, 3)
	assert.Equal(t, 3, groups[0].Len())
	assert.Equal(t, ColorRed, groups[0].Color)

	total := 0
	for _, grp := range groups {
		total += grp.Len()
	}
	assert.Equal(t, g.TokenCount(), total)
}

// bfsReference computes shortest same-colour distances by repeated relaxation.
func bfsReference(g *Grid, seed Coord) map[Coord]int {
	color := g.ColorAt(seed)
	dist := map[Coord]int{seed: 0}
	for changed := true; changed; {
		changed = false
		for c, d := range dist {
			for _, dir := range AllDirs {
				n, ok := g.Neighbor(c, dir)
				if !ok || g.ColorAt(n) != color {
					continue
				}
				if old, seen := dist[n]; !seen || d+1 < old {
					dist[n] = d + 1
					changed = true
				}
			}
		}
	}
	return dist
}

func TestFindGroupMatchesReferenceOnRandomBoards(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	palette, err := Palette(3)
	require.NoError(t, err)

	for round := 0; round < 50; round++ {
		g, err := New(1+rng.Intn(8), 1+rng.Intn(8))
		require.NoError(t, err)
		require.NoError(t, Fill(g, palette, rng))

		seed := C(rng.Intn(g.Width()), rng.Intn(g.Height()))
		grp, err := g.FindGroup(seed)
		require.NoError(t, err)

		assert.Equal(t, bfsReference(g, seed), depthsByCell(grp), "round %d board:\n%s", round, g)
	}
}
