package puzzle

import "testing"

func TestHasTrianglesDetectsClosedTriple(t *testing.T) {
	g := New()
	g.Push(NodeTemplate{})
	g.Push(NodeTemplate{})
	g.Push(NodeTemplate{})
	if g.HasTriangles() {
		t.Fatal("HasTriangles() = true before any edges are set")
	}
	g.Set(0, 1, 2)
	g.Set(1, 2, 2)
	if g.HasTriangles() {
		t.Fatal("HasTriangles() = true with only two sides closed")
	}
	g.Set(0, 2, 2)
	if !g.HasTriangles() {
		t.Fatal("HasTriangles() = false with all three sides closed")
	}
}

func TestIsConnectedRequiresEveryNodeReachable(t *testing.T) {
	g := New()
	for i := 0; i < 3; i++ {
		g.Push(NodeTemplate{})
	}
	g.Set(0, 1, 2)
	if g.IsConnected() {
		t.Fatal("IsConnected() = true with node 2 unreachable")
	}
	g.Set(1, 2, 2)
	if !g.IsConnected() {
		t.Fatal("IsConnected() = false once every node is reachable")
	}
}

func TestIsConnectedTrivialForEmptyGraph(t *testing.T) {
	g := New()
	if !g.IsConnected() {
		t.Fatal("IsConnected() = false for the empty graph")
	}
}

func TestMeetQuadSatisfiedRequiresWitnessPerNode(t *testing.T) {
	g := New()
	for i := 0; i < 3; i++ {
		g.Push(NodeTemplate{})
	}
	if g.MeetQuadSatisfied() {
		t.Fatal("MeetQuadSatisfied() = true with no edges at all")
	}
	g.Set(0, 1, 2)
	g.Set(1, 2, 2)
	g.Set(0, 2, 2)
	if !g.MeetQuadSatisfied() {
		t.Fatal("MeetQuadSatisfied() = false once a triangle covers every node")
	}
}

func TestMeetQuadSatisfiedRejectsTriangleWitnessUnderNoTriangles(t *testing.T) {
	g := New()
	for i := 0; i < 3; i++ {
		g.Push(NodeTemplate{})
	}
	g.Set(0, 1, 2)
	g.Set(1, 2, 2)
	g.Set(0, 2, 2)
	g.SetNoTriangles(true)
	if g.MeetQuadSatisfied() {
		t.Fatal("MeetQuadSatisfied() = true using a triangle witness while NoTriangles is set")
	}
}

func TestCommuteQuadSatisfiedAcceptsMatchingOppositeEdges(t *testing.T) {
	g := New()
	for i := 0; i < 4; i++ {
		g.Push(NodeTemplate{})
	}
	g.Set(0, 1, 2)
	g.Set(2, 3, 2)
	g.Set(1, 2, 2)
	g.Set(0, 3, 2)
	if !g.CommuteQuadSatisfied(true) {
		t.Fatal("CommuteQuadSatisfied(true) = false with identical opposite edges")
	}
}
