// SPDX-License-Identifier: MIT
package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/graphsolve/puzzle"
)

// Print writes the node color row followed by the full symmetric edge
// matrix to w, matching the original solver's debug dump format: one
// line of node colors, a rule, then one line per row of the matrix.
func Print(w io.Writer, g *puzzle.Graph) error {
	n := g.NumNodes()
	for i := 0; i < n; i++ {
		if _, err := fmt.Fprintf(w, "%d ", g.Node(i).Color); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprint(w, "\n========================================\n"); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if _, err := fmt.Fprintf(w, "%d ", g.Get(i, j)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
