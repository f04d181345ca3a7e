// SPDX-License-Identifier: MIT
package fixtures

import (
	"fmt"

	"github.com/katalvlaran/graphsolve/puzzle"
)

// Names lists every scenario Build accepts, in catalogue order.
var Names = []string{
	"square",
	"square-two-color",
	"pentagon",
	"hexagon",
	"cube",
	"four-cube",
	"grid",
	"konigsberg",
	"adinkra-1-1",
	"adinkra-2-2",
	"adinkra-3",
	"adinkra-4",
}

// Build constructs the named scenario. Grid is built with a fixed 3x3
// shape; use fixtures.Grid directly for other dimensions.
//
// Returns ErrUnknownScenario wrapped with the offending name for any
// name not in Names.
func Build(name string) (*puzzle.Graph, error) {
	switch name {
	case "square":
		return Square(), nil
	case "square-two-color":
		return SquareTwoColor(), nil
	case "pentagon":
		return Pentagon(), nil
	case "hexagon":
		return Hexagon(), nil
	case "cube":
		return Cube(), nil
	case "four-cube":
		return FourCube(), nil
	case "grid":
		return Grid(3, 3), nil
	case "konigsberg":
		return KonigsbergBridges(), nil
	case "adinkra-1-1":
		return Adinkra11(), nil
	case "adinkra-2-2":
		return Adinkra22(), nil
	case "adinkra-3":
		return Adinkra3(), nil
	case "adinkra-4":
		return Adinkra4(), nil
	default:
		return nil, fmt.Errorf("fixtures: %q: %w", name, ErrUnknownScenario)
	}
}
