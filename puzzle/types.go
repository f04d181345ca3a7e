package puzzle

// Color is a non-negative integer label on a node or an edge.
//
// Two values are reserved for edges: Empty marks an undecided edge and
// Disconnected marks a definite absence of an edge. Values at or above
// FirstEdgeColor denote concrete edge colors. Node colors share the same
// type but are unrestricted — they are never compared against the edge
// reservations.
type Color int

const (
	// Empty marks an edge that has not been decided yet.
	Empty Color = 0
	// Disconnected marks an edge pinned to "definitely no edge here".
	Disconnected Color = 1
	// FirstEdgeColor is the smallest value that denotes a concrete,
	// drawn edge. Colors below this are reserved (Empty, Disconnected).
	FirstEdgeColor Color = 2
)

// Constraint asserts that its owning node must have one incident edge of
// color Edge leading to a node whose color is Node.
type Constraint struct {
	Edge Color
	Node Color
}

// CommuteMode is a three-way switch for the quad commute/anticommute
// structural predicate. It is a sum type rather than *bool so that every
// switch over it is exhaustiveness-checkable: Off, Commute, Anticommute.
type CommuteMode int

const (
	// CommuteOff disables the commute/anticommute predicate entirely.
	CommuteOff CommuteMode = iota
	// CommuteRequire demands every concrete 4-cycle commutes.
	CommuteRequire
	// AnticommuteRequire demands every concrete 4-cycle anticommutes.
	AnticommuteRequire
)

// NodeTemplate describes one node: its color, whether it may have an edge
// to itself, and the multiset of constraints it must satisfy. The slice
// is a multiset — duplicate constraints are significant and each one
// must be matched by a distinct incident edge.
type NodeTemplate struct {
	Color Color
	// SelfConnected, when false, forbids an edge from the node to itself.
	SelfConnected bool
	Edges         []Constraint
}
