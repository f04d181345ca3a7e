// SPDX-License-Identifier: MIT
// Package: graphsolve/render
//
// Package render turns a solved (or partially solved) puzzle.Graph into
// human- and tool-readable output: a plain-text matrix dump for quick
// terminal inspection (Print), a GraphViz "dot" description for
// `dot -Tpng` (DOT), and an SVG rendering drawn directly with
// github.com/ajstarks/svgo for environments without GraphViz installed.
package render
