// SPDX-License-Identifier: MIT
package fixtures

import "github.com/katalvlaran/graphsolve/puzzle"

// hypercubeAdinkra builds the n-dimensional Adinkra: the 2^n-vertex
// hypercube, bipartitioned black/white by index parity (popcount),
// with one edge color pair per dimension so that every square face
// anticommutes — the classic Jordan-Wigner sign assignment also used to
// build Clifford-algebra gamma matrices from Pauli tensors. Edge (u,v)
// differing only in bit d gets color FirstEdgeColor+2d+sign, where sign
// is the parity of u's bits below d; that parity is the same for both
// endpoints of the edge, since they agree on every bit below d.
//
// All fixtures built on top of this (Adinkra11, Adinkra22, Adinkra3,
// Adinkra4) push only node templates plus CommuteQuad and leave every
// edge undecided: Solve must discover the hypercube adjacency itself
// under the anticommute constraint, the same way the original Adinkra
// examples build their graphs and call solve() without ever setting an
// edge by hand.
func hypercubeAdinkra(n int) *puzzle.Graph {
	if n < 1 || n > 4 {
		panic("fixtures: hypercubeAdinkra requires 1 <= n <= 4")
	}
	size := 1 << uint(n)

	g := puzzle.New()
	for v := 0; v < size; v++ {
		color, neighborColor := black, white
		if popcount(v)%2 == 1 {
			color, neighborColor = white, black
		}
		var edges []puzzle.Constraint
		for d := 0; d < n; d++ {
			edges = append(edges, puzzle.Constraint{Edge: adinkraEdgeColor(v, d), Node: neighborColor})
		}
		g.Push(puzzle.NodeTemplate{Color: color, Edges: edges})
	}

	g.SetCommuteQuad(puzzle.AnticommuteRequire)
	return g
}

func adinkraEdgeColor(v, d int) puzzle.Color {
	sign := parityBelow(v, d)
	return puzzle.FirstEdgeColor + puzzle.Color(2*d) + puzzle.Color(sign)
}

func popcount(v int) int {
	count := 0
	for v != 0 {
		count += v & 1
		v >>= 1
	}
	return count
}

// parityBelow returns the XOR parity of v's bits strictly below bit d.
func parityBelow(v, d int) int {
	mask := (1 << uint(d)) - 1
	return popcount(v&mask) % 2
}

// Adinkra11 builds the 1-dimensional Adinkra: two nodes, one edge,
// trivially anticommuting (a single edge has no opposite to compare
// against).
func Adinkra11() *puzzle.Graph { return hypercubeAdinkra(1) }

// Adinkra22 builds the 2-dimensional Adinkra: a 4-cycle whose two
// dimension-0 edges share a color and whose two dimension-1 edges carry
// opposite signs, the minimal non-trivial anticommuting square.
func Adinkra22() *puzzle.Graph { return hypercubeAdinkra(2) }

// Adinkra3 builds the 3-dimensional Adinkra (8 nodes, degree 3).
func Adinkra3() *puzzle.Graph { return hypercubeAdinkra(3) }

// Adinkra4 builds the 4-dimensional Adinkra (16 nodes, degree 4).
func Adinkra4() *puzzle.Graph { return hypercubeAdinkra(4) }
