package track

import "sort"

// EdgeEvent describes an edge-change: Length > 0 means the edge {A,B} was
// added (or is being replayed at its current length); Length == 0 means the
// edge was removed.
type EdgeEvent struct {
	A, B   string
	Length int
}

// EdgeFeed is a synchronous publish/subscribe point for EdgeEvent. Events
// are delivered after the mutation that caused them has already committed,
// in subscription order; there is no buffering and no goroutine involved —
// a subscriber's callback runs inline on the goroutine that mutated the
// graph.
type EdgeFeed struct {
	subs   map[int]func(EdgeEvent)
	next   int
	replay func(func(EdgeEvent))
}

func newEdgeFeed() *EdgeFeed {
	return &EdgeFeed{subs: make(map[int]func(EdgeEvent))}
}

// Subscribe registers fn to be called for every future event. It returns an
// unsubscribe function; calling it more than once is a no-op.
func (f *EdgeFeed) Subscribe(fn func(EdgeEvent)) (unsubscribe func()) {
	id := f.next
	f.next++
	f.subs[id] = fn
	done := false
	return func() {
		if done {
			return
		}
		done = true
		delete(f.subs, id)
	}
}

// Replay invokes fn once for every edge currently in the owning graph, in no
// particular order, so a late subscriber can seed its own state before
// receiving live updates.
func (f *EdgeFeed) Replay(fn func(EdgeEvent)) {
	if f.replay != nil {
		f.replay(fn)
	}
}

func (f *EdgeFeed) publish(ev EdgeEvent) {
	ids := make([]int, 0, len(f.subs))
	for id := range f.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if sub, ok := f.subs[id]; ok {
			sub(ev)
		}
	}
}
