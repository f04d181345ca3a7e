package puzzle

import "sort"

// Colors returns the sorted, de-duplicated legal next colors for the
// undecided pair (i,j):
//
//  1. Already decided -> empty.
//  2. A forbidden self-edge -> empty.
//  3. no_triangles violated by the current assignment -> empty.
//  4. connected required and the upper-right cut already proves
//     disconnection -> empty.
//  5. commute_quad set and already violated -> empty.
//  6. Otherwise, every edge color that would close a still-unmet
//     constraint on both i and j, plus Disconnected (always legal on an
//     undecided pair).
func (g *Graph) Colors(i, j int) []Color {
	if g.Get(i, j) != Empty {
		return nil
	}
	if i == j && !g.nodes[i].SelfConnected {
		return nil
	}
	if g.noTriangles && g.HasTriangles() {
		return nil
	}
	if g.connected && g.IsUpperRightDisconnected() {
		return nil
	}
	if g.commuteQuad != CommuteOff {
		want := g.commuteQuad == CommuteRequire
		if !g.CommuteQuadSatisfied(want) {
			return nil
		}
	}

	unmetI := g.NodeSatisfied(i)
	unmetJ := g.NodeSatisfied(j)

	var res []Color
	for _, need := range unmetI {
		if need.Node != g.nodes[j].Color {
			continue
		}
		for _, other := range unmetJ {
			if other.Edge == need.Edge && other.Node == g.nodes[i].Color {
				res = append(res, need.Edge)
				break
			}
		}
	}
	res = append(res, Disconnected)

	sort.Slice(res, func(a, b int) bool { return res[a] < res[b] })
	res = dedupSorted(res)
	return res
}

func dedupSorted(s []Color) []Color {
	if len(s) < 2 {
		return s
	}
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
