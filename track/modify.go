package track

// ModifySlice is the single composite mutator for growing or shrinking a
// slice. end selects which end moves: +1 the front, -1 the back. Positive
// by grows, negative by shrinks (clamped to -length). where is consulted
// only when a junction offers more than one candidate next edge; it may be
// nil if the slice is never expected to reach such a junction.
//
// Returns the signed amount actually applied: |Δ| <= |by|. Returns 0 if id
// is unknown, by == 0, or the clamped magnitude is zero.
//
// Complexity: O(k) where k is the number of edges crossed.
func (g *Graph) ModifySlice(id string, end, by int, where func(candidates []string) (string, bool)) int {
	s, ok := g.slices[id]
	if !ok || by == 0 {
		return 0
	}

	oldEdges := anchorEdges(g, s)
	oldNodes := touchedNodes(s)

	var delta int
	if by > 0 {
		if end == -1 {
			delta = growBack(g, s, by, where)
		} else {
			delta = growFront(g, s, by, where)
		}
		s.length += delta
	} else {
		amount := -by
		if amount > s.length {
			amount = s.length
		}
		var shrunk int
		if end == -1 {
			shrunk = shrinkEnd(g, s, -1, amount)
		} else {
			shrunk = shrinkEnd(g, s, +1, amount)
		}
		delta = -shrunk
	}

	newEdges := anchorEdges(g, s)
	newNodes := touchedNodes(s)
	syncEdgeMembership(g, id, oldEdges, newEdges)
	syncNodeMembership(g, id, oldNodes, newNodes)

	return delta
}
