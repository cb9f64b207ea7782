package board

import (
	"fmt"
	"sort"
)

// Member is one token of a group together with its BFS distance from the seed.
type Member struct {
	Token TokenID
	Cell  Coord
	Depth int
}

// Group is a connected set of same-coloured tokens, in BFS order with the
// seed first. It describes the board at the time it was found.
type Group struct {
	Color   Color
	Members []Member
}

// Len returns the number of tokens in the group.
func (g Group) Len() int {
	return len(g.Members)
}

// Removable reports whether the group is large enough to be popped.
func (g Group) Removable() bool {
	return len(g.Members) >= 2
}

// Seed returns the member the search started from.
func (g Group) Seed() (Member, bool) {
	if len(g.Members) == 0 {
		return Member{}, false
	}
	return g.Members[0], true
}

// MaxDepth returns the largest member depth, or -1 for an empty group.
func (g Group) MaxDepth() int {
	if len(g.Members) == 0 {
		return -1
	}
	// Members are in BFS order.
	return g.Members[len(g.Members)-1].Depth
}

// Contains reports whether c is one of the group's cells.
func (g Group) Contains(c Coord) bool {
	for _, m := range g.Members {
		if m.Cell == c {
			return true
		}
	}
	return false
}

// Layers splits the members by depth: Layers()[d] holds every member at depth d.
func (g Group) Layers() [][]Member {
	if len(g.Members) == 0 {
		return nil
	}
	layers := make([][]Member, g.MaxDepth()+1)
	for _, m := range g.Members {
		layers[m.Depth] = append(layers[m.Depth], m)
	}
	return layers
}

// FindGroup returns the connected group of same-coloured tokens containing
// seed. Each member is tagged with its breadth-first distance from the seed,
// which is the length of the shortest same-colour path to it.
//
// Visitation is tracked per cell: a neighbour is marked visited the first
// time it is seen, whether or not it matches, so every cell is examined once.
func (g *Grid) FindGroup(seed Coord) (Group, error) {
	if !g.InBounds(seed) {
		return Group{}, fmt.Errorf("find group at %v: %w", seed, ErrOutOfBounds)
	}
	start := g.index(seed)
	first := g.cells[start].token
	if first == NoToken {
		return Group{}, fmt.Errorf("find group at %v: %w", seed, ErrEmptySeed)
	}
	color := g.tokens[first].color

	depth := make([]int, len(g.cells))
	for i := range depth {
		depth[i] = -1
	}
	depth[start] = 0

	queue := []int{start}
	grp := Group{
		Color:   color,
		Members: []Member{{Token: first, Cell: seed, Depth: 0}},
	}

	for head := 0; head < len(queue); head++ {
		idx := queue[head]
		d := depth[idx]
		for _, n := range g.cells[idx].neighbors {
			if n == noCell || depth[n] >= 0 {
				continue
			}
			depth[n] = d + 1

			id := g.cells[n].token
			if id == NoToken || g.tokens[id].color != color {
				continue
			}
			queue = append(queue, n)
			grp.Members = append(grp.Members, Member{Token: id, Cell: g.cells[n].coord, Depth: d + 1})
		}
	}
	return grp, nil
}

// Groups partitions the board into its connected same-colour groups, largest
// first. Ties are broken by seed position, bottom row first.
func (g *Grid) Groups() []Group {
	seen := make([]bool, len(g.cells))
	var groups []Group
	for i := range g.cells {
		if seen[i] || !g.cells[i].Occupied() {
			continue
		}
		grp, err := g.FindGroup(g.cells[i].coord)
		if err != nil {
			continue
		}
		for _, m := range grp.Members {
			seen[g.index(m.Cell)] = true
		}
		groups = append(groups, grp)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Len() > groups[j].Len()
	})
	return groups
}
