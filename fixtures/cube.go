// SPDX-License-Identifier: MIT
package fixtures

import "github.com/katalvlaran/graphsolve/puzzle"

// Cube builds the 8-node, 3-regular, triangle-free scenario corresponding
// to the standard cube graph Q3: eight identical nodes, each demanding
// three red edges to a black neighbor, with NoTriangles set so the
// solver is forced toward a bipartite (square-face) topology rather than
// any other 3-regular graph on 8 vertices.
func Cube() *puzzle.Graph {
	g := puzzle.New()
	for i := 0; i < 8; i++ {
		g.Push(regularNode(3, horizontal, black))
	}
	g.SetNoTriangles(true)
	return g
}

// FourCube builds the 16-node, 4-regular, triangle-free analogue
// corresponding to the 4-dimensional hypercube graph Q4, additionally
// requiring connectedness so the solver must exercise
// IsUpperRightDisconnected's fast-fail cut test alongside NoTriangles.
func FourCube() *puzzle.Graph {
	g := puzzle.New()
	for i := 0; i < 16; i++ {
		g.Push(regularNode(4, horizontal, black))
	}
	g.SetNoTriangles(true)
	g.SetConnected(true)
	return g
}
