// SPDX-License-Identifier: MIT
package fixtures

import "github.com/katalvlaran/graphsolve/puzzle"

// node colors (black, white) and edge colors (horizontal, vertical)
// shared by the fixtures. The polygon and polyhedron fixtures use only
// black nodes and horizontal edges, so every template is identical and
// the solver discovers the topology itself.
const (
	black      puzzle.Color = 0
	white      puzzle.Color = 1
	horizontal puzzle.Color = 2
	vertical   puzzle.Color = 3
)

func regularNode(degree int, edgeColor, nodeColor puzzle.Color) puzzle.NodeTemplate {
	edges := make([]puzzle.Constraint, degree)
	for i := range edges {
		edges[i] = puzzle.Constraint{Edge: edgeColor, Node: nodeColor}
	}
	return puzzle.NodeTemplate{Color: nodeColor, Edges: edges}
}

// Square builds the 4-node, single-color 2-regular scenario: four
// identical nodes, each demanding exactly two red edges to a black
// neighbor. The only simple 2-regular graph on 4 vertices is the
// 4-cycle, so Solve always recovers it.
func Square() *puzzle.Graph {
	g := puzzle.New()
	for i := 0; i < 4; i++ {
		g.Push(regularNode(2, horizontal, black))
	}
	return g
}

// SquareTwoColor builds the two-edge-color variant: each of the four
// nodes needs exactly one horizontal edge and one vertical edge, so the
// solver must additionally decide which pairing of the two colors forms
// a consistent 4-cycle.
func SquareTwoColor() *puzzle.Graph {
	g := puzzle.New()
	for i := 0; i < 4; i++ {
		g.Push(puzzle.NodeTemplate{Color: black, Edges: []puzzle.Constraint{
			{Edge: horizontal, Node: black},
			{Edge: vertical, Node: black},
		}})
	}
	return g
}

// Pentagon builds the 5-node analogue of Square: a single 5-cycle.
func Pentagon() *puzzle.Graph {
	g := puzzle.New()
	for i := 0; i < 5; i++ {
		g.Push(regularNode(2, horizontal, black))
	}
	return g
}

// Hexagon builds the 6-node analogue of Square, additionally requiring
// a concrete edge between nodes 0 and 1 via PushPair. The 2-regular
// templates alone do not force that edge (without the pair the solver
// marks (0,1) Disconnected and builds a cycle around it); PushPair is
// what requires it, demonstrating the pair-constraint mechanism
// alongside the node-template one.
func Hexagon() *puzzle.Graph {
	g := puzzle.New()
	for i := 0; i < 6; i++ {
		g.Push(regularNode(2, horizontal, black))
	}
	g.PushPair(0, 1)
	return g
}
