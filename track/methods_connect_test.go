package track_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trackgraph/track"
)

// TestScenario_Connections covers S2: connect/disconnect round-trip and
// duplicate/reversed-argument rejection.
func TestScenario_Connections(t *testing.T) {
	g := track.NewGraph()
	_, err := g.AddEdge("a", "b", 123)
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", 10)
	require.NoError(t, err)

	ok, err := g.Connect("a", "b", "c")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = g.Connect("a", "b", "c")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = g.Connect("c", "b", "a")
	require.NoError(t, err)
	assert.False(t, ok)

	node := g.LookupNode("b")
	assert.Equal(t, map[string][]string{"a": {"c"}, "c": {"a"}}, node.Other)

	ok, err = g.Disconnect("c", "b", "a")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = g.Disconnect("c", "b", "a")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConnect_RejectsNonDistinctTriple(t *testing.T) {
	g := track.NewGraph()
	_, err := g.Connect("a", "a", "b")
	assert.ErrorIs(t, err, track.ErrNonDistinctTriple)
}

// TestDisconnect_RefusedWhileSliceUsesJunction covers the boundary case:
// disconnect is refused while a live slice traverses the junction, and
// succeeds once that slice is deleted.
func TestDisconnect_RefusedWhileSliceUsesJunction(t *testing.T) {
	g := track.NewGraph()
	_, err := g.AddEdge("a", "b", 5)
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", 5)
	require.NoError(t, err)
	ok, err := g.Connect("a", "b", "c")
	require.NoError(t, err)
	require.True(t, ok)

	require.True(t, g.AddSlice("s", "a"))
	grown := g.ModifySlice("s", +1, 10, func(candidates []string) (string, bool) {
		for _, c := range candidates {
			if c == "b" || c == "c" {
				return c, true
			}
		}
		return "", false
	})
	require.Equal(t, 10, grown)

	ok, err = g.Disconnect("a", "b", "c")
	require.NoError(t, err)
	assert.False(t, ok)

	require.True(t, g.DeleteSlice("s"))

	ok, err = g.Disconnect("a", "b", "c")
	require.NoError(t, err)
	assert.True(t, ok)
}
