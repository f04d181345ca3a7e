// SPDX-License-Identifier: MIT
package fixtures

import "github.com/katalvlaran/graphsolve/puzzle"

// Grid builds an rows x cols node template set whose degree sequence
// matches a 4-neighborhood lattice (corners degree 2, border cells
// degree 3, interior cells degree 4), but — unlike Square/Cube/
// Pentagon's homogeneous templates, which already pin a unique topology
// — leaves the actual adjacency entirely to the solver: NoTriangles and
// MeetQuad are both required, and only a handful of guaranteed
// non-adjacencies (every corner paired against every interior node,
// plus one corner/border pair) are pinned Disconnected as hints, the
// same sparse-pinning shape the original grid example uses. It panics
// if rows or cols is smaller than 3, since degree-4 interior nodes (and
// thus a meaningful meet_quad search) require at least a 3x3 lattice.
func Grid(rows, cols int) *puzzle.Graph {
	if rows < 3 || cols < 3 {
		panic("fixtures: Grid requires rows >= 3 and cols >= 3")
	}

	g := puzzle.New()
	idx := func(r, c int) int { return r*cols + c }

	degree := func(r, c int) int {
		d := 0
		if r > 0 {
			d++
		}
		if r < rows-1 {
			d++
		}
		if c > 0 {
			d++
		}
		if c < cols-1 {
			d++
		}
		return d
	}

	isInterior := func(r, c int) bool {
		return r > 0 && r < rows-1 && c > 0 && c < cols-1
	}
	isCorner := func(r, c int) bool {
		return (r == 0 || r == rows-1) && (c == 0 || c == cols-1)
	}
	isAdjacent := func(r1, c1, r2, c2 int) bool {
		dr, dc := r1-r2, c1-c2
		if dr < 0 {
			dr = -dr
		}
		if dc < 0 {
			dc = -dc
		}
		return dr+dc == 1
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.Push(regularNode(degree(r, c), horizontal, black))
		}
	}
	g.SetNoTriangles(true)
	g.SetMeetQuad(true)

	// Every corner is guaranteed non-adjacent to every interior cell
	// (an interior cell is never on the border a corner sits on), so
	// pinning these as Disconnected is always safe and narrows the
	// search without pre-deciding any real adjacency.
	extraPinned := false
	for r1 := 0; r1 < rows; r1++ {
		for c1 := 0; c1 < cols; c1++ {
			if !isCorner(r1, c1) {
				continue
			}
			for r2 := 0; r2 < rows; r2++ {
				for c2 := 0; c2 < cols; c2++ {
					if !isInterior(r2, c2) {
						continue
					}
					g.Set(idx(r1, c1), idx(r2, c2), puzzle.Disconnected)
				}
			}
			if !extraPinned {
				for r2 := 0; r2 < rows; r2++ {
					for c2 := 0; c2 < cols; c2++ {
						if isCorner(r2, c2) || isInterior(r2, c2) {
							continue
						}
						if isAdjacent(r1, c1, r2, c2) {
							continue
						}
						g.Set(idx(r1, c1), idx(r2, c2), puzzle.Disconnected)
						extraPinned = true
						break
					}
					if extraPinned {
						break
					}
				}
			}
		}
	}

	return g
}
