package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasValidMove(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		want   bool
	}{
		{"checkerboard", "BR\nRB", false},
		{"horizontal pair", "RRB", true},
		{"vertical pair", "R.\nRB", true},
		{"single token", "R", false},
		{"empty board", "..\n..", false},
		{"pair separated by gap", "R.R", false},
		{"pair in last cells", "RBG\nBGG", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Parse(tc.layout)
			require.NoError(t, err)
			assert.Equal(t, tc.want, g.HasValidMove())
		})
	}
}

func TestHasValidMoveAgreesWithGroups(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	palette, err := Palette(4)
	require.NoError(t, err)

	for round := 0; round < 100; round++ {
		g, err := New(1+rng.Intn(4), 1+rng.Intn(4))
		require.NoError(t, err)
		require.NoError(t, Fill(g, palette, rng))

		want := false
		for _, grp := range g.Groups() {
			if grp.Removable() {
				want = true
			}
		}
		assert.Equal(t, want, g.HasValidMove(), "board:\n%s", g)
	}
}
