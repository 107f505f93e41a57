package container

import "sort"

// Multiset is a count-bag over string keys: it tracks how many times each
// key has been added, not merely whether it is present.
//
// The track graph uses a Multiset per edge and per node to answer "is any
// slice currently occupying this?" in O(1) via Total(), while still letting
// the same slice occupy the same edge from two distinct anchors (see
// track's edge-membership accounting).
type Multiset struct {
	counts map[string]int
	total  int
}

// NewMultiset returns an empty Multiset.
func NewMultiset() *Multiset {
	return &Multiset{counts: make(map[string]int)}
}

// Add records one more occurrence of k. Always succeeds.
func (m *Multiset) Add(k string) bool {
	m.counts[k]++
	m.total++
	return true
}

// Delete removes one occurrence of k, if any are present.
// Returns false if k had a zero count.
func (m *Multiset) Delete(k string) bool {
	c, ok := m.counts[k]
	if !ok || c == 0 {
		return false
	}
	if c == 1 {
		delete(m.counts, k)
	} else {
		m.counts[k] = c - 1
	}
	m.total--
	return true
}

// Total returns the sum of all counts.
func (m *Multiset) Total() int {
	return m.total
}

// Uniques returns the keys with a nonzero count, sorted for deterministic
// output.
func (m *Multiset) Uniques() []string {
	out := make([]string, 0, len(m.counts))
	for k := range m.counts {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Keys yields each key once per its count, sorted by key.
func (m *Multiset) Keys() []string {
	out := make([]string, 0, m.total)
	for _, k := range m.Uniques() {
		for i := 0; i < m.counts[k]; i++ {
			out = append(out, k)
		}
	}
	return out
}
