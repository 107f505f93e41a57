package track_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trackgraph/track"
)

// TestScenario_EdgesAndLookups covers S1: basic addEdge/lookupEdge/lookupNode
// behavior, including duplicate rejection and canonical low/high ordering.
func TestScenario_EdgesAndLookups(t *testing.T) {
	g := track.NewGraph()

	ok, err := g.AddEdge("a", "b", 123)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = g.AddEdge("a", "b", 123)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = g.AddEdge("b", "c", 10)
	require.NoError(t, err)
	require.True(t, ok)

	ev, found := g.LookupEdge("b", "a")
	require.True(t, found)
	assert.Equal(t, track.EdgeView{Low: "a", High: "b", Length: 123, Slices: []string{}}, ev)

	node := g.LookupNode("b")
	assert.Equal(t, map[string][]string{"a": {}, "c": {}}, node.Other)
}

func TestAddEdge_RejectsSelfAndBadLength(t *testing.T) {
	g := track.NewGraph()

	_, err := g.AddEdge("a", "a", 5)
	assert.ErrorIs(t, err, track.ErrSelfEdge)

	_, err = g.AddEdge("a", "b", 0)
	assert.ErrorIs(t, err, track.ErrInvalidLength)

	_, err = g.AddEdge("a", "b", -3)
	assert.ErrorIs(t, err, track.ErrInvalidLength)
}

func TestDeleteEdge_RefusedWhileOccupiedThenSucceeds(t *testing.T) {
	g := track.NewGraph()
	_, err := g.AddEdge("b", "c", 17)
	require.NoError(t, err)
	require.True(t, g.AddSlice("1", "b"))
	require.Equal(t, 3, g.ModifySlice("1", +1, 3, func([]string) (string, bool) { return "c", true }))

	assert.False(t, g.DeleteEdge("b", "c"))

	require.Equal(t, -3, g.ModifySlice("1", +1, -10, nil))
	assert.True(t, g.DeleteEdge("b", "c"))
}

func TestDeleteEdge_DoesNotReviveConnectionOnReAdd(t *testing.T) {
	g := track.NewGraph()
	_, err := g.AddEdge("a", "b", 5)
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", 5)
	require.NoError(t, err)
	ok, err := g.Connect("a", "b", "c")
	require.NoError(t, err)
	require.True(t, ok)

	require.True(t, g.DeleteEdge("a", "b"))
	_, err = g.AddEdge("a", "b", 5)
	require.NoError(t, err)

	node := g.LookupNode("b")
	assert.Empty(t, node.Other["a"])
	assert.Empty(t, node.Other["c"])
}

func TestLookupEdge_UnknownReturnsFalse(t *testing.T) {
	g := track.NewGraph()
	_, found := g.LookupEdge("x", "y")
	assert.False(t, found)
}

func TestLookupNode_UnknownIsEmptyRecord(t *testing.T) {
	g := track.NewGraph()
	node := g.LookupNode("nowhere")
	assert.Empty(t, node.Other)
	assert.Empty(t, node.Slices)
}
