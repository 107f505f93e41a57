package component

import "sort"

// Add records a pairwise link between a and b, merging their groups (by
// absorbing the smaller into the larger) if they were not already in one.
// Returns false if the pair was already recorded.
//
// Complexity: amortized O(min(groupSize(a), groupSize(b))) for the merge.
func (c *Graph) Add(a, b string) bool {
	if c.Has(a, b) {
		return false
	}
	c.setPair(a, b)

	ga := c.ensureGroup(a)
	gb := c.ensureGroup(b)
	if ga == gb {
		return true
	}
	if len(ga.members) < len(gb.members) {
		ga, gb = gb, ga
	}
	for m := range gb.members {
		ga.members[m] = struct{}{}
		c.groupOf[m] = ga
	}

	return true
}

// Delete removes the link between a and b. If either endpoint becomes
// isolated it is dropped from its group outright; otherwise a breadth-first
// expansion from a within the remaining links decides whether the group is
// still connected — if not, the smaller resulting side is split into a
// fresh group. Returns false if the pair was not recorded.
//
// Complexity: O(groupSize) in the worst case (the reachability check).
func (c *Graph) Delete(a, b string) bool {
	if !c.Has(a, b) {
		return false
	}
	c.unsetPair(a, b)

	aIsolated := len(c.adj[a]) == 0
	bIsolated := len(c.adj[b]) == 0
	if aIsolated {
		c.isolate(a)
	}
	if bIsolated {
		c.isolate(b)
	}
	if aIsolated || bIsolated {
		return true
	}

	g := c.groupOf[a]
	reachable := c.bfsReachable(a)
	if _, stillJoined := reachable[b]; stillJoined {
		return true
	}

	rest := make(map[string]struct{}, len(g.members)-len(reachable))
	for m := range g.members {
		if _, ok := reachable[m]; !ok {
			rest[m] = struct{}{}
		}
	}
	split := reachable
	if len(rest) < len(reachable) {
		split = rest
	}
	ng := &group{members: split}
	for m := range split {
		delete(g.members, m)
		c.groupOf[m] = ng
	}

	return true
}

// Has reports whether a and b are currently linked directly.
func (c *Graph) Has(a, b string) bool {
	_, ok := c.adj[a][b]
	return ok
}

// GroupSize returns the size of k's group, or 1 if k is isolated (a
// virtual singleton group).
func (c *Graph) GroupSize(k string) int {
	if g, ok := c.groupOf[k]; ok {
		return len(g.members)
	}
	return 1
}

// SharedGroup reports whether every given key belongs to the same group
// (isolated keys form their own group, equal only to themselves). Returns
// true for zero or one key.
func (c *Graph) SharedGroup(keys ...string) bool {
	if len(keys) <= 1 {
		return true
	}
	ref := c.identity(keys[0])
	for _, k := range keys[1:] {
		if c.identity(k) != ref {
			return false
		}
	}
	return true
}

// SharedWith returns the sorted key set sharing k's group, or just {k} if
// k is isolated.
func (c *Graph) SharedWith(k string) []string {
	if g, ok := c.groupOf[k]; ok {
		out := make([]string, 0, len(g.members))
		for m := range g.members {
			out = append(out, m)
		}
		sort.Strings(out)
		return out
	}
	return []string{k}
}

func (c *Graph) identity(k string) any {
	if g, ok := c.groupOf[k]; ok {
		return g
	}
	return k
}

func (c *Graph) ensureGroup(k string) *group {
	if g, ok := c.groupOf[k]; ok {
		return g
	}
	g := &group{members: map[string]struct{}{k: {}}}
	c.groupOf[k] = g
	return g
}

func (c *Graph) isolate(k string) {
	if g, ok := c.groupOf[k]; ok {
		delete(g.members, k)
		delete(c.groupOf, k)
	}
}

func (c *Graph) setPair(a, b string) {
	c.ensureAdj(a)[b] = struct{}{}
	c.ensureAdj(b)[a] = struct{}{}
}

func (c *Graph) unsetPair(a, b string) {
	delete(c.adj[a], b)
	if len(c.adj[a]) == 0 {
		delete(c.adj, a)
	}
	delete(c.adj[b], a)
	if len(c.adj[b]) == 0 {
		delete(c.adj, b)
	}
}

func (c *Graph) ensureAdj(k string) map[string]struct{} {
	m, ok := c.adj[k]
	if !ok {
		m = make(map[string]struct{})
		c.adj[k] = m
	}
	return m
}

func (c *Graph) bfsReachable(start string) map[string]struct{} {
	visited := map[string]struct{}{start: {}}
	queue := []string{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for nb := range c.adj[cur] {
			if _, ok := visited[nb]; !ok {
				visited[nb] = struct{}{}
				queue = append(queue, nb)
			}
		}
	}
	return visited
}
