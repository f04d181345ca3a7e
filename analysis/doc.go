// SPDX-License-Identifier: MIT
// Package: graphsolve/analysis
//
// Package analysis runs read-only structural diagnostics over a solved
// puzzle.Graph using gonum.org/v1/gonum's graph algorithms: it is never
// consulted during the search itself, only afterward, to report facts
// (node count, concrete edge count, connected components) that a caller
// might want without re-deriving them from the puzzle package's own
// predicates. It does not check for triangles.
package analysis
