// SPDX-License-Identifier: MIT
package fixtures

import "errors"

// ErrUnknownScenario indicates that Build was asked for a scenario name
// not present in the catalogue (see Names).
var ErrUnknownScenario = errors.New("fixtures: unknown scenario")

// ErrInvalidSize indicates a numeric parameter (grid dimensions, hypercube
// order) fell outside the range the constructor supports.
var ErrInvalidSize = errors.New("fixtures: invalid size")
