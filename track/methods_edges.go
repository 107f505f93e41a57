package track

import "sort"

// AddEdge adds an undirected edge {low,high} of the given length. Returns
// false if the pair already has an edge. Both endpoint nodes are created
// implicitly if they did not already exist.
//
// Complexity: O(1).
func (g *Graph) AddEdge(low, high string, length int) (bool, error) {
	if length <= 0 {
		return false, ErrInvalidLength
	}
	if low == high {
		return false, ErrSelfEdge
	}
	if _, ok := g.edges.Get(low, high); ok {
		return false, nil
	}

	e := newEdge(low, high, length)
	g.edges.Set(low, high, e)
	g.node(low).other[high] = newSide(e)
	g.node(high).other[low] = newSide(e)

	g.feed.publish(EdgeEvent{A: low, B: high, Length: length})

	return true, nil
}

// LookupEdge returns the edge stored under the unordered pair {a,b}, with
// Low/High preserving insertion order, or false if no such edge exists.
//
// Complexity: O(1).
func (g *Graph) LookupEdge(a, b string) (EdgeView, bool) {
	e, ok := g.edges.Get(a, b)
	if !ok {
		return EdgeView{}, false
	}
	return EdgeView{Low: e.Low, High: e.High, Length: e.Length, Slices: e.slices.Uniques()}, true
}

// DeleteEdge removes the edge {a,b}. Returns false if no such edge exists,
// or it is refused because a slice currently occupies it. On success,
// clears any through-links on both endpoints that referenced each other and
// emits a removal event (Length == 0).
//
// Complexity: O(deg(a) + deg(b)).
func (g *Graph) DeleteEdge(a, b string) bool {
	e, ok := g.edges.Get(a, b)
	if !ok {
		return false
	}
	if e.slices.Total() > 0 {
		return false
	}

	g.edges.Delete(a, b)
	removeNeighbor(g.node(a), b)
	removeNeighbor(g.node(b), a)

	g.feed.publish(EdgeEvent{A: a, B: b, Length: 0})

	return true
}

// removeNeighbor drops neighbor's side from n and scrubs neighbor out of
// every remaining side's through set.
func removeNeighbor(n *Node, neighbor string) {
	for x, s := range n.other {
		if x == neighbor {
			continue
		}
		delete(s.through, neighbor)
	}
	delete(n.other, neighbor)
}

// LookupNode returns a snapshot of the node's neighbour/through relation and
// the slices touching it. Unknown node ids return an empty record, since
// nodes have no distinguishable "unknown" state beyond having no content.
//
// Complexity: O(deg(at)).
func (g *Graph) LookupNode(at string) NodeView {
	n, ok := g.nodes[at]
	if !ok {
		return NodeView{Other: map[string][]string{}, Slices: []string{}}
	}

	other := make(map[string][]string, len(n.other))
	for x, s := range n.other {
		through := make([]string, 0, len(s.through))
		for y := range s.through {
			through = append(through, y)
		}
		sort.Strings(through)
		other[x] = through
	}

	return NodeView{Other: other, Slices: n.slices.Uniques()}
}

// replayEdges invokes fn once per live edge, used to seed late subscribers
// to the edge-change feed.
func (g *Graph) replayEdges(fn func(EdgeEvent)) {
	for _, pe := range g.edges.All() {
		fn(EdgeEvent{A: pe.Value.Low, B: pe.Value.High, Length: pe.Value.Length})
	}
}
