package division

import (
	"context"

	"github.com/katalvlaran/trackgraph/component"
	"github.com/katalvlaran/trackgraph/track"
)

// Option configures a Graph at construction time.
type Option func(*options)

type options struct {
	ctx context.Context
}

// WithContext supplies the cancellation handle that governs this Division
// Graph's lifetime. Defaults to context.Background() (never cancelled).
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Graph is the Division Graph (C7): edge-level connectivity over a
// track.Graph, respecting blocked nodes.
//
// Like every other package here, Graph carries no lock — it is driven
// synchronously by the track feed's callback and by direct method calls
// from a single goroutine.
type Graph struct {
	ctx         context.Context
	comp        *component.Graph
	unsubscribe func()
	cancelled   bool

	blocked    map[string]bool
	tokenPair  map[string][2]string
	nodeTokens map[string][]string
}

// New constructs a Division Graph over feed, replaying its current edges
// to seed state before subscribing for live updates.
func New(feed *track.EdgeFeed, opts ...Option) *Graph {
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	d := &Graph{
		ctx:        o.ctx,
		comp:       component.NewGraph(),
		blocked:    make(map[string]bool),
		tokenPair:  make(map[string][2]string),
		nodeTokens: make(map[string][]string),
	}

	feed.Replay(d.onEvent)
	d.unsubscribe = feed.Subscribe(d.onEvent)

	return d
}

// pairToken returns the canonical surrogate key for the unordered pair
// {a,b} — the same string regardless of argument order, since at most one
// live edge exists per unordered pair at a time.
func pairToken(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "\x1f" + b
}
