// SPDX-License-Identifier: MIT
package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/graphsolve/puzzle"
)

// DefaultNodeColors and DefaultEdgeColors are the GraphViz color-name
// palettes DOT cycles through (by color index, modulo palette length)
// when node/edge colors run past the palette's length, exactly as the
// original solver's graphviz() helper does.
var (
	DefaultNodeColors = []string{"white", "black", "red", "green", "blue", "yellow"}
	DefaultEdgeColors = []string{"black", "red", "green", "blue", "orange", "purple"}
)

// DOT renders g as a GraphViz "strict graph" description using the
// given layout engine name (e.g. "neato", "circo") and color palettes.
// Nil palettes fall back to the package defaults.
func DOT(g *puzzle.Graph, layout string, nodeColors, edgeColors []string) string {
	if nodeColors == nil {
		nodeColors = DefaultNodeColors
	}
	if edgeColors == nil {
		edgeColors = DefaultEdgeColors
	}

	var b strings.Builder
	fmt.Fprintf(&b, "strict graph {\n")
	fmt.Fprintf(&b, "  layout=%s; edge[penwidth=4]\n", layout)

	n := g.NumNodes()
	for i := 0; i < n; i++ {
		color := nodeColors[int(g.Node(i).Color)%len(nodeColors)]
		fmt.Fprintf(&b, "  %d[regular=true,style=filled,fillcolor=%s];\n", i, color)
	}
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			ed := g.Get(i, j)
			if ed < puzzle.FirstEdgeColor {
				continue
			}
			color := edgeColors[int(ed-puzzle.FirstEdgeColor)%len(edgeColors)]
			fmt.Fprintf(&b, "  %d -- %d[color=%s];\n", i, j, color)
		}
	}
	fmt.Fprintf(&b, "}\n")
	return b.String()
}
