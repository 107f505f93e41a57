package track

// AddSlice creates a new slice id anchored at a single node. Returns false
// if id already exists.
//
// Complexity: O(1).
func (g *Graph) AddSlice(id, on string) bool {
	if _, exists := g.slices[id]; exists {
		return false
	}

	s := &sliceState{along: []string{on}}
	g.slices[id] = s
	g.node(on).slices.Add(id)

	return true
}

// LookupSlice returns a deep-copied snapshot of the slice's state, or false
// if id is unknown.
//
// Complexity: O(len(along)).
func (g *Graph) LookupSlice(id string) (SliceView, bool) {
	s, ok := g.slices[id]
	if !ok {
		return SliceView{}, false
	}
	return s.view(), true
}

// DeleteSlice removes the slice entirely: membership is dropped from every
// edge it traversed and every node it touched before the record is erased.
// Returns false if id is unknown.
//
// Complexity: O(len(along)).
func (g *Graph) DeleteSlice(id string) bool {
	s, ok := g.slices[id]
	if !ok {
		return false
	}

	syncEdgeMembership(g, id, anchorEdges(g, s), nil)
	syncNodeMembership(g, id, touchedNodes(s), nil)
	delete(g.slices, id)

	return true
}

// mustEdgeLength looks up the length of the edge between two consecutive
// along entries. A live slice's along is only ever built out of existing
// edges, so a miss here is an internal invariant violation.
func mustEdgeLength(g *Graph, a, b string) int {
	e, ok := g.edges.Get(a, b)
	if !ok {
		panic("track: invariant violation: slice references a missing edge")
	}
	return e.Length
}

func mustEdge(g *Graph, a, b string) *Edge {
	e, ok := g.edges.Get(a, b)
	if !ok {
		panic("track: invariant violation: slice references a missing edge")
	}
	return e
}

// anchorEdges returns the edges currently carrying this slice's anchor
// membership: the edge(s) of along[0],along[1] and along[n-2],along[n-1].
// When along has exactly two nodes both anchors share the same edge, which
// is returned twice — the slice occupies it with a count of two, per the
// anchor-count accounting rule.
func anchorEdges(g *Graph, s *sliceState) []*Edge {
	if len(s.along) < 2 {
		return nil
	}
	back := mustEdge(g, s.along[0], s.along[1])
	if len(s.along) == 2 {
		return []*Edge{back, back}
	}
	n := len(s.along)
	front := mustEdge(g, s.along[n-2], s.along[n-1])
	return []*Edge{back, front}
}

// touchedNodes returns the node ids this slice currently covers or abuts:
// every interior node of along, plus along[0] when back == 0 and along[-1]
// when front == 0 (or the sole node, when along has only one entry).
func touchedNodes(s *sliceState) map[string]struct{} {
	out := make(map[string]struct{}, len(s.along))
	if len(s.along) == 1 {
		out[s.along[0]] = struct{}{}
		return out
	}
	n := len(s.along)
	for i := 1; i < n-1; i++ {
		out[s.along[i]] = struct{}{}
	}
	if s.back == 0 {
		out[s.along[0]] = struct{}{}
	}
	if s.front == 0 {
		out[s.along[n-1]] = struct{}{}
	}
	return out
}

// syncEdgeMembership diffs the anchor-edge multisets of a before/after pair
// of snapshots and applies only the Add/Delete calls actually needed.
func syncEdgeMembership(g *Graph, id string, before, after []*Edge) {
	oldCount := make(map[*Edge]int, len(before))
	for _, e := range before {
		oldCount[e]++
	}
	newCount := make(map[*Edge]int, len(after))
	for _, e := range after {
		newCount[e]++
	}
	for e, nc := range newCount {
		oc := oldCount[e]
		for i := oc; i < nc; i++ {
			e.slices.Add(id)
		}
	}
	for e, oc := range oldCount {
		nc := newCount[e]
		for i := nc; i < oc; i++ {
			e.slices.Delete(id)
		}
	}
}

// syncNodeMembership diffs a before/after pair of touched-node sets and
// applies only the Add/Delete calls actually needed.
func syncNodeMembership(g *Graph, id string, before, after map[string]struct{}) {
	for n := range after {
		if _, ok := before[n]; !ok {
			g.node(n).slices.Add(id)
		}
	}
	for n := range before {
		if _, ok := after[n]; !ok {
			g.node(n).slices.Delete(id)
		}
	}
}
