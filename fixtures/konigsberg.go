// SPDX-License-Identifier: MIT
package fixtures

import "github.com/katalvlaran/graphsolve/puzzle"

// KonigsbergBridges builds the nine-node, two-edge-color scenario
// mirroring the historical Seven Bridges of Königsberg puzzle: each
// node's template is a multiset of "black" and "red" edge demands (all
// toward black nodes), and only nine of the many incident pairs are
// pre-pinned — some concrete, some Disconnected — leaving the solver to
// complete the rest under a connectedness requirement. This is a search
// scenario, not an already-solved fixture: IsSolved is false until
// Solve runs.
func KonigsbergBridges() *puzzle.Graph {
	g := puzzle.New()

	// (black-edge count, red-edge count) per node, in push order.
	counts := [9][2]int{
		{1, 1},
		{2, 1},
		{1, 1},
		{1, 2},
		{1, 3},
		{0, 3},
		{1, 1},
		{2, 1},
		{1, 1},
	}
	for _, n := range counts {
		var edges []puzzle.Constraint
		for i := 0; i < n[0]; i++ {
			edges = append(edges, puzzle.Constraint{Edge: horizontal, Node: black})
		}
		for i := 0; i < n[1]; i++ {
			edges = append(edges, puzzle.Constraint{Edge: vertical, Node: black})
		}
		g.Push(puzzle.NodeTemplate{Color: black, Edges: edges})
	}

	g.Set(0, 1, horizontal)
	g.Set(1, 2, horizontal)
	g.Set(0, 2, puzzle.Disconnected)
	g.Set(1, 4, vertical)
	g.Set(2, 3, puzzle.Disconnected)
	g.Set(2, 4, puzzle.Disconnected)
	g.Set(3, 5, puzzle.Disconnected)
	g.Set(3, 7, puzzle.Disconnected)
	g.Set(3, 4, horizontal)

	g.SetConnected(true)
	return g
}
