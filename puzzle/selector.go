package puzzle

// position identifies one upper-triangular (including diagonal) cell of
// the edge matrix, in the (i,j) convention used throughout the package
// (i <= j, as produced by MinColors' scan order).
type position struct {
	i, j int
}

// MinColors scans the upper triangle (including the diagonal) for the
// undecided position with the fewest legal candidate colors, breaking
// ties by lexical (i,j) order and short-circuiting the moment a
// one-candidate position is found. It reports ok=false when every
// position is either decided or has zero candidates — the driver then
// checks IsSolved to tell success from a dead end.
func (g *Graph) MinColors() (pos position, candidates []Color, ok bool) {
	n := len(g.nodes)
	bestSize := -1
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			c := g.Colors(i, j)
			if len(c) == 0 {
				continue
			}
			if bestSize == -1 || len(c) < bestSize {
				pos, candidates, bestSize = position{i, j}, c, len(c)
				ok = true
				if bestSize == 1 {
					return
				}
			}
		}
	}
	return
}
