// SPDX-License-Identifier: MIT
// Package: graphsolve/fixtures
//
// Package fixtures builds the concrete puzzle.Graph scenarios named in
// graphsolve's scenario catalogue: regular polygons, the Platonic solids
// representable as homogeneous node templates, the Seven Bridges of
// Königsberg, and the Adinkra supersymmetry hypercubes used to exercise
// the commute/anticommute quad predicate.
//
// Every fixture returns a Graph ready to hand to puzzle.Solve, deliberately
// under-constrained rather than pre-pinned: Grid and KonigsbergBridges pin
// only a handful of guaranteed non-adjacencies or historically-fixed
// crossings, and the Adinkra fixtures push node templates alone, so in
// every case the solver must still discover the bulk of the adjacency
// itself.
//
// Fixtures never validate their own output against puzzle.Solve; callers
// decide whether to solve, render, or analyze a given scenario.
package fixtures
