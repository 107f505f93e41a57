package trackops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trackgraph/track"
	"github.com/katalvlaran/trackgraph/trackops"
)

func TestCloneSlice_ReproducesDescribedState(t *testing.T) {
	g := track.NewGraph()
	_, err := g.AddEdge("a", "b", 10)
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", 10)
	require.NoError(t, err)
	_, err = g.Connect("a", "b", "c")
	require.NoError(t, err)

	require.True(t, g.AddSlice("1", "a"))
	require.Equal(t, 14, g.ModifySlice("1", +1, 14, choose("b", "c")))
	require.Equal(t, -3, g.ModifySlice("1", -1, -3, nil))

	original, ok := g.LookupSlice("1")
	require.True(t, ok)

	require.True(t, trackops.CloneSlice(g, "1", "2"))

	clone, ok := g.LookupSlice("2")
	require.True(t, ok)
	assert.Equal(t, original, clone)

	ev, _ := g.LookupEdge("b", "c")
	assert.Contains(t, ev.Slices, "1")
	assert.Contains(t, ev.Slices, "2")
}

func TestCloneSlice_UnknownSourceFails(t *testing.T) {
	g := track.NewGraph()
	assert.False(t, trackops.CloneSlice(g, "missing", "2"))
}
