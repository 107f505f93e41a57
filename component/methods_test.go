package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trackgraph/component"
)

func TestGraph_AddMergesGroups(t *testing.T) {
	c := component.NewGraph()

	require.True(t, c.Add("a", "b"))
	require.True(t, c.Add("b", "c"))
	require.False(t, c.Add("a", "b"))

	assert.Equal(t, 3, c.GroupSize("a"))
	assert.True(t, c.SharedGroup("a", "b", "c"))
	assert.ElementsMatch(t, []string{"a", "b", "c"}, c.SharedWith("a"))
}

func TestGraph_IsolatedKeyIsSingletonGroup(t *testing.T) {
	c := component.NewGraph()
	assert.Equal(t, 1, c.GroupSize("lonely"))
	assert.Equal(t, []string{"lonely"}, c.SharedWith("lonely"))
	assert.False(t, c.SharedGroup("lonely", "other"))
}

func TestGraph_DeleteIsolatesEndpoint(t *testing.T) {
	c := component.NewGraph()
	c.Add("a", "b")

	require.True(t, c.Delete("a", "b"))
	assert.Equal(t, 1, c.GroupSize("a"))
	assert.Equal(t, 1, c.GroupSize("b"))
	assert.False(t, c.Has("a", "b"))
	assert.False(t, c.Delete("a", "b"))
}

func TestGraph_DeleteSplitsGroupWhenDisconnected(t *testing.T) {
	c := component.NewGraph()
	// chain: a-b-c-d
	c.Add("a", "b")
	c.Add("b", "c")
	c.Add("c", "d")

	require.True(t, c.Delete("b", "c"))
	assert.True(t, c.SharedGroup("a", "b"))
	assert.True(t, c.SharedGroup("c", "d"))
	assert.False(t, c.SharedGroup("a", "d"))
	assert.ElementsMatch(t, []string{"a", "b"}, c.SharedWith("a"))
	assert.ElementsMatch(t, []string{"c", "d"}, c.SharedWith("c"))
}

func TestGraph_DeleteKeepsGroupWhenCycle(t *testing.T) {
	c := component.NewGraph()
	// cycle a-b-c-a
	c.Add("a", "b")
	c.Add("b", "c")
	c.Add("c", "a")

	require.True(t, c.Delete("a", "b"))
	assert.True(t, c.SharedGroup("a", "b", "c"))
}
