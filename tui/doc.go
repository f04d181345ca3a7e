// SPDX-License-Identifier: MIT
// Package: graphsolve/tui
//
// Package tui is a Bubble Tea debug visualizer for puzzle.Solve: it
// installs itself as a puzzle.TraceFunc, so every forced inference and
// branching assignment the backtracking driver makes advances a step
// counter and replaces the content of a scrolling viewport.Model with a
// render.Print dump of the current matrix, styled with lipgloss.
package tui
