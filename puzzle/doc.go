// Package puzzle is a constraint solver for undirected, edge-colored,
// node-colored graphs.
//
// A puzzle is described node by node: each Graph.Push call attaches a
// NodeTemplate stating the node's color and the multiset of incident
// (edge-color, neighbor-color) constraints it must end up satisfying.
// Solve then assigns a color to every unordered pair of distinct
// node indices — or reports no solution — by backtracking search driven
// by a minimum-domain variable-selection heuristic, with a handful of
// optional global structural flags layered on top (no triangles,
// connectedness, meet-quad, commute/anticommute quads).
//
// Under the hood, everything is organized across a few files:
//
//	types.go        — Color, Constraint, NodeTemplate
//	graph.go        — Graph, the lower-triangular edge matrix, Set/Get
//	cache.go        — monotone memoization of the global predicates
//	satisfaction.go — per-node "which constraints are still unmet"
//	predicates.go   — triangle/connected/meet-quad/commute-quad checks
//	candidates.go   — legal next colors for one undecided edge
//	selector.go     — which undecided edge to branch on next
//	solve.go         — Settings and the backtracking driver
//
// The package never performs directed, weighted, or multigraph search:
// between two distinct nodes there is at most one edge, and the first
// satisfying assignment found is returned — not an optimum.
package puzzle
