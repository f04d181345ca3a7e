package puzzle

// NodeSatisfied returns the still-required constraints of node i under
// the current partial assignment: a parallel boolean mask walks
// nodes[i].Edges, and for every j with a concrete edge to i, the first
// unmatched slot whose (edge,node) equals (Get(i,j), nodes[j].Color) is
// marked matched. Whatever is left unmatched, in template order, is
// returned. An empty result means "satisfied".
func (g *Graph) NodeSatisfied(i int) []Constraint {
	g.checkIndex(i)
	if g.cache.nodeSatisfied[i] {
		return nil
	}

	tmpl := g.nodes[i].Edges
	matched := make([]bool, len(tmpl))
	for j := 0; j < len(g.nodes); j++ {
		edge := g.Get(i, j)
		if edge < FirstEdgeColor {
			continue
		}
		for k := range matched {
			if matched[k] {
				continue
			}
			con := tmpl[k]
			if con.Edge == edge && con.Node == g.nodes[j].Color {
				matched[k] = true
				break
			}
		}
	}

	var unmet []Constraint
	for k, ok := range matched {
		if !ok {
			unmet = append(unmet, tmpl[k])
		}
	}
	if len(unmet) == 0 {
		g.cache.nodeSatisfied[i] = true
	}
	return unmet
}

// AllSatisfied reports whether every node is satisfied.
func (g *Graph) AllSatisfied() bool {
	for i := range g.nodes {
		if len(g.NodeSatisfied(i)) != 0 {
			return false
		}
	}
	return true
}
