// SPDX-License-Identifier: MIT
package analysis

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/graphsolve/puzzle"
)

// Report summarizes a solved graph's structural diagnostics.
type Report struct {
	NodeCount      int
	ConcreteEdges  int
	ComponentCount int
	Components     [][]int64
}

// toGonum copies a puzzle.Graph's concrete (>= FirstEdgeColor) edges into
// a gonum simple.UndirectedGraph, one gonum node per puzzle node index.
func toGonum(g *puzzle.Graph) *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	n := g.NumNodes()
	for i := 0; i < n; i++ {
		ug.AddNode(simple.Node(int64(i)))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			if g.Get(i, j) >= puzzle.FirstEdgeColor {
				ug.SetEdge(simple.Edge{F: simple.Node(int64(i)), T: simple.Node(int64(j))})
			}
		}
	}
	return ug
}

// Analyze runs the gonum diagnostics over g's current concrete edges.
func Analyze(g *puzzle.Graph) Report {
	ug := toGonum(g)

	edgeCount := 0
	for i := 0; i < g.NumNodes(); i++ {
		for j := 0; j < i; j++ {
			if g.Get(i, j) >= puzzle.FirstEdgeColor {
				edgeCount++
			}
		}
	}

	components := topo.ConnectedComponents(ug)
	ids := make([][]int64, len(components))
	for i, comp := range components {
		ids[i] = make([]int64, len(comp))
		for j, node := range comp {
			ids[i][j] = node.ID()
		}
	}

	return Report{
		NodeCount:      g.NumNodes(),
		ConcreteEdges:  edgeCount,
		ComponentCount: len(components),
		Components:     ids,
	}
}

// nodesOf is a small helper used by tests to assert on a gonum graph's
// node set without depending on map iteration order.
func nodesOf(ug *simple.UndirectedGraph) []graph.Node {
	it := ug.Nodes()
	var out []graph.Node
	for it.Next() {
		out = append(out, it.Node())
	}
	return out
}
