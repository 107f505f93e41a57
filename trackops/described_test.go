package trackops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trackgraph/track"
	"github.com/katalvlaran/trackgraph/trackops"
)

func TestAddDescribedSlice_DegenerateSingleNode(t *testing.T) {
	g := track.NewGraph()
	_, err := g.AddEdge("a", "b", 5)
	require.NoError(t, err)

	described := track.SliceView{Along: []string{"a"}, Back: 0, Front: 0, Length: 0}
	require.True(t, trackops.AddDescribedSlice(g, "1", described))

	view, ok := g.LookupSlice("1")
	require.True(t, ok)
	assert.Equal(t, described, view)
}

// TestAddDescribedSlice_DegenerateMidEdgePoint covers the boundary case of
// a zero-length slice sitting strictly inside one edge, where Back+Front
// equals the edge's full length — the two-node Along form that a plain
// "seed a point and stop" shortcut would collapse onto Along[0] alone.
func TestAddDescribedSlice_DegenerateMidEdgePoint(t *testing.T) {
	g := track.NewGraph()
	_, err := g.AddEdge("a", "b", 10)
	require.NoError(t, err)

	described := track.SliceView{Along: []string{"a", "b"}, Back: 4, Front: 6, Length: 0}
	require.True(t, trackops.AddDescribedSlice(g, "1", described))

	view, ok := g.LookupSlice("1")
	require.True(t, ok)
	assert.Equal(t, described, view)

	ev, _ := g.LookupEdge("a", "b")
	assert.Contains(t, ev.Slices, "1")
}

func TestAddDescribedSlice_DegenerateMidEdgePointUnknownEdgeFails(t *testing.T) {
	g := track.NewGraph()
	_, err := g.AddEdge("a", "b", 10)
	require.NoError(t, err)

	described := track.SliceView{Along: []string{"a", "x"}, Back: 4, Front: 6, Length: 0}
	assert.False(t, trackops.AddDescribedSlice(g, "1", described))

	_, ok := g.LookupSlice("1")
	assert.False(t, ok)
}

func TestAddDescribedSlice_MultiNodeWithOffsets(t *testing.T) {
	g := track.NewGraph()
	_, err := g.AddEdge("a", "b", 10)
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", 17)
	require.NoError(t, err)
	_, err = g.Connect("a", "b", "c")
	require.NoError(t, err)

	described := track.SliceView{Along: []string{"b", "c"}, Back: 0, Front: 14, Length: 3}
	require.True(t, trackops.AddDescribedSlice(g, "1", described))

	view, ok := g.LookupSlice("1")
	require.True(t, ok)
	assert.Equal(t, described, view)

	ev, _ := g.LookupEdge("b", "c")
	assert.Contains(t, ev.Slices, "1")
}

func TestAddDescribedSlice_EmptyAlongFails(t *testing.T) {
	g := track.NewGraph()
	assert.False(t, trackops.AddDescribedSlice(g, "1", track.SliceView{}))
}

func TestAddDescribedSlice_DuplicateIDFails(t *testing.T) {
	g := track.NewGraph()
	_, err := g.AddEdge("a", "b", 5)
	require.NoError(t, err)
	require.True(t, g.AddSlice("1", "a"))

	described := track.SliceView{Along: []string{"a"}, Back: 0, Front: 0, Length: 0}
	assert.False(t, trackops.AddDescribedSlice(g, "1", described))
}
