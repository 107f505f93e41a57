package container

// Entry is one (partner, value) pair yielded by PairMap.OtherEntries.
type Entry[V any] struct {
	Partner string
	Value   V
}

// PairMap is a map keyed by an unordered pair of strings {A,B}: Set(a,b,v)
// and Set(b,a,v) record the same entry, and Get(a,b) == Get(b,a).
//
// Internally it is two mirrored adjacency maps, the same shape as
// core.Graph's adjacencyList — symmetric edges are stored both ways so that
// either endpoint can enumerate its partners in O(deg) without a canonical
// ordering step.
type PairMap[V any] struct {
	m map[string]map[string]V
}

// NewPairMap returns an empty PairMap.
func NewPairMap[V any]() *PairMap[V] {
	return &PairMap[V]{m: make(map[string]map[string]V)}
}

// Set records v under the unordered pair {a,b}.
func (p *PairMap[V]) Set(a, b string, v V) {
	p.ensure(a)[b] = v
	p.ensure(b)[a] = v
}

// Get returns the value stored under {a,b}, if any.
func (p *PairMap[V]) Get(a, b string) (V, bool) {
	inner, ok := p.m[a]
	if !ok {
		var zero V
		return zero, false
	}
	v, ok := inner[b]
	return v, ok
}

// Delete removes the entry under {a,b}. Returns false if absent.
func (p *PairMap[V]) Delete(a, b string) bool {
	ia, ok := p.m[a]
	if !ok {
		return false
	}
	if _, ok := ia[b]; !ok {
		return false
	}
	delete(ia, b)
	if len(ia) == 0 {
		delete(p.m, a)
	}
	if ib, ok := p.m[b]; ok {
		delete(ib, a)
		if len(ib) == 0 {
			delete(p.m, b)
		}
	}
	return true
}

// OtherEntries yields (partner, value) for every partner currently paired
// with a.
func (p *PairMap[V]) OtherEntries(a string) []Entry[V] {
	inner, ok := p.m[a]
	if !ok {
		return nil
	}
	out := make([]Entry[V], 0, len(inner))
	for b, v := range inner {
		out = append(out, Entry[V]{Partner: b, Value: v})
	}
	return out
}

// PairsWith counts the partners currently paired with a.
func (p *PairMap[V]) PairsWith(a string) int {
	return len(p.m[a])
}

// PairEntry is one unordered {A,B} pair yielded by All.
type PairEntry[V any] struct {
	A, B  string
	Value V
}

// All enumerates every stored pair exactly once, regardless of which side
// it was Set from.
func (p *PairMap[V]) All() []PairEntry[V] {
	out := make([]PairEntry[V], 0, len(p.m))
	for a, inner := range p.m {
		for b, v := range inner {
			if a <= b {
				out = append(out, PairEntry[V]{A: a, B: b, Value: v})
			}
		}
	}
	return out
}

func (p *PairMap[V]) ensure(k string) map[string]V {
	inner, ok := p.m[k]
	if !ok {
		inner = make(map[string]V)
		p.m[k] = inner
	}
	return inner
}
