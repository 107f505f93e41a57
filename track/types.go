package track

import "github.com/katalvlaran/trackgraph/container"

// Node is a junction: a set of sides, one per neighbour, plus the slices
// currently touching this node.
type Node struct {
	other  map[string]*side
	slices *container.Multiset
}

func newNode() *Node {
	return &Node{
		other:  make(map[string]*side),
		slices: container.NewMultiset(),
	}
}

// side is one (node, neighbour) relation: the shared Edge, and the set of
// other neighbours of the same node reachable by crossing straight through.
type side struct {
	edge    *Edge
	through map[string]struct{}
}

func newSide(e *Edge) *side {
	return &side{edge: e, through: make(map[string]struct{})}
}

// Edge is an undirected link between two distinct nodes with a positive
// integer length. Low/High preserve the argument order AddEdge was called
// with, regardless of how later lookups order their arguments.
type Edge struct {
	Low, High string
	Length    int

	slices *container.Multiset
}

func newEdge(low, high string, length int) *Edge {
	return &Edge{Low: low, High: high, Length: length, slices: container.NewMultiset()}
}

// sliceState is the internal representation of one live slice. See
// SliceView for the caller-facing deep copy returned by LookupSlice.
type sliceState struct {
	along  []string
	back   int
	front  int
	length int
}

// SliceView is a deep-copied snapshot of a slice's state, as returned by
// LookupSlice.
type SliceView struct {
	Along  []string
	Back   int
	Front  int
	Length int
}

func (s *sliceState) view() SliceView {
	along := make([]string, len(s.along))
	copy(along, s.along)
	return SliceView{Along: along, Back: s.back, Front: s.front, Length: s.length}
}

// NodeView is the caller-facing snapshot returned by LookupNode: for every
// neighbour, the list of other neighbours reachable in one pass through
// this node, plus the slices touching the node.
type NodeView struct {
	Other  map[string][]string
	Slices []string
}

// EdgeView is the caller-facing snapshot returned by LookupEdge.
type EdgeView struct {
	Low, High string
	Length    int
	Slices    []string
}

// Graph is the authoritative track topology plus slice inventory.
//
// Graph deliberately carries no lock — concurrent mutation from multiple
// actors is out of scope here, so Graph is safe to use only from one
// goroutine at a time.
type Graph struct {
	nodes  map[string]*Node
	edges  *container.PairMap[*Edge]
	slices map[string]*sliceState
	feed   *EdgeFeed
}

// NewGraph returns an empty track Graph.
func NewGraph() *Graph {
	g := &Graph{
		nodes:  make(map[string]*Node),
		edges:  container.NewPairMap[*Edge](),
		slices: make(map[string]*sliceState),
		feed:   newEdgeFeed(),
	}
	g.feed.replay = g.replayEdges
	return g
}

// Feed returns the edge-change event feed that downstream connectivity
// layers subscribe to.
func (g *Graph) Feed() *EdgeFeed {
	return g.feed
}

// node returns the Node for id, creating an empty record on first reference
// — nodes are never created explicitly and never deleted.
func (g *Graph) node(id string) *Node {
	n, ok := g.nodes[id]
	if !ok {
		n = newNode()
		g.nodes[id] = n
	}
	return n
}
