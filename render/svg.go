// SPDX-License-Identifier: MIT
package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/katalvlaran/graphsolve/puzzle"
)

const (
	svgRadius     = 280
	svgNodeRadius = 18
	svgMargin     = 40
)

// SVG renders g as a circular-layout SVG diagram: nodes placed evenly
// around a circle, colored by NodeTemplate.Color and labeled with their
// index, with concrete edges drawn as chords colored by their edge color.
func SVG(w io.Writer, g *puzzle.Graph, nodeColors, edgeColors []string) {
	if nodeColors == nil {
		nodeColors = DefaultNodeColors
	}
	if edgeColors == nil {
		edgeColors = DefaultEdgeColors
	}

	n := g.NumNodes()
	side := 2*svgRadius + 2*svgMargin + 2*svgNodeRadius
	canvas := svg.New(w)
	canvas.Start(side, side)
	canvas.Rect(0, 0, side, side, "fill:white")

	center := side / 2
	pos := make([][2]int, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / math.Max(1, float64(n))
		pos[i] = [2]int{
			center + int(svgRadius*math.Cos(theta)),
			center + int(svgRadius*math.Sin(theta)),
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			ed := g.Get(i, j)
			if ed < puzzle.FirstEdgeColor {
				continue
			}
			color := edgeColors[int(ed-puzzle.FirstEdgeColor)%len(edgeColors)]
			canvas.Line(pos[i][0], pos[i][1], pos[j][0], pos[j][1],
				fmt.Sprintf("stroke:%s;stroke-width:3", color))
		}
	}

	for i := 0; i < n; i++ {
		color := nodeColors[int(g.Node(i).Color)%len(nodeColors)]
		canvas.Circle(pos[i][0], pos[i][1], svgNodeRadius,
			fmt.Sprintf("fill:%s;stroke:black;stroke-width:1", color))
		canvas.Text(pos[i][0], pos[i][1]+4, fmt.Sprintf("%d", i),
			"text-anchor:middle;font-size:12px;font-family:monospace")
	}

	canvas.End()
}
