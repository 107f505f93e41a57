package track

// Connect declares that edges (through,a) and (through,b) may be crossed as
// one continuous path. a, through, b must be pairwise distinct. Returns
// false if either edge is missing or the link already exists.
//
// Complexity: O(1).
func (g *Graph) Connect(a, through, b string) (bool, error) {
	if a == through || a == b || through == b {
		return false, ErrNonDistinctTriple
	}

	t := g.node(through)
	sideA, ok := t.other[a]
	if !ok {
		return false, nil
	}
	sideB, ok := t.other[b]
	if !ok {
		return false, nil
	}
	if _, exists := sideA.through[b]; exists {
		return false, nil
	}

	sideA.through[b] = struct{}{}
	sideB.through[a] = struct{}{}

	return true, nil
}

// Disconnect removes a previously declared through-link. Returns false if
// the link is absent, or if any live slice traverses the junction via the
// exact triple [a,through,b] or [b,through,a] — severing it would break
// that slice's path.
//
// Complexity: O(S·L) where S is the number of slices touching through and L
// their average along-length.
func (g *Graph) Disconnect(a, through, b string) (bool, error) {
	if a == through || a == b || through == b {
		return false, ErrNonDistinctTriple
	}

	t := g.node(through)
	sideA, ok := t.other[a]
	if !ok {
		return false, nil
	}
	if _, exists := sideA.through[b]; !exists {
		return false, nil
	}

	for _, id := range t.slices.Uniques() {
		s := g.slices[id]
		if containsSubsequence(s.along, []string{a, through, b}) ||
			containsSubsequence(s.along, []string{b, through, a}) {
			return false, nil
		}
	}

	sideB := t.other[b]
	delete(sideA.through, b)
	delete(sideB.through, a)

	return true, nil
}
