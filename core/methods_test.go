package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linkalike/core"
	"github.com/katalvlaran/linkalike/edgelist"
	"github.com/katalvlaran/linkalike/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// attrs builds an ordered mapping from alternating key/value arguments.
func attrs(kv ...interface{}) *edgelist.Attrs {
	a := edgelist.NewAttrs()
	for i := 0; i+1 < len(kv); i += 2 {
		a.Set(kv[i].(string), kv[i+1])
	}

	return a
}

func TestAddEdge_AutoCreatesEndpointsAndIsUndirected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("u1", "i1", attrs("weight", int64(5))))

	assert.True(t, g.HasNode("u1"))
	assert.True(t, g.HasNode("i1"))
	assert.True(t, g.HasEdge("u1", "i1"))
	assert.True(t, g.HasEdge("i1", "u1"))
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_DuplicateMergesAttributes(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("u1", "i1", attrs("weight", int64(5), "TS", int64(1))))
	require.NoError(t, g.AddEdge("i1", "u1", attrs("weight", int64(2))))
	require.NoError(t, g.AddEdge("u1", "i1", nil))

	assert.Equal(t, 1, g.EdgeCount())
	a, err := g.EdgeAttrs("u1", "i1")
	require.NoError(t, err)
	assert.Equal(t, []string{"weight", "TS"}, edgelist.Keys(a))
	w, _ := a.Get("weight")
	assert.Equal(t, int64(2), w)

	edges := g.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, "u1", edges[0].From, "first orientation is kept")
}

func TestAddEdge_InvalidIDs(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddEdge(nil, "i1", nil), core.ErrNilNodeID)
	assert.ErrorIs(t, g.AddEdge("u1", []string{"x"}, nil), core.ErrInvalidNodeID)
	assert.ErrorIs(t, g.AddEdge("u1", math.NaN(), nil), core.ErrInvalidNodeID)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestSelfLoopDegree(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "a", nil))
	require.NoError(t, g.AddEdge("a", "b", nil))

	d, err := g.Degree("a")
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	nbrs, err := g.Neighbors("a")
	require.NoError(t, err)
	assert.Equal(t, []table.Value{"a", "b"}, nbrs)
}

func TestIntegerIDsNormalize(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, nil))

	assert.True(t, g.HasEdge(int64(1), int64(2)))
	assert.True(t, g.HasNode(int32(2)))
	assert.False(t, g.HasNode(1.0), "float 1.0 is a different id than int 1")
}

func TestAddNodesFromMergesAttributes(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNodesFrom([]edgelist.Node{
		{ID: "u1", Attrs: attrs("AGE", int64(24))},
		{ID: "u2", Attrs: attrs("AGE", int64(53))},
		{ID: "u1", Attrs: attrs("GENDER", "M", "AGE", int64(25))},
	}))

	assert.Equal(t, []table.Value{"u1", "u2"}, g.Nodes())
	v, err := g.Node("u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"AGE", "GENDER"}, edgelist.Keys(v.Attrs))
	age, _ := v.Attrs.Get("AGE")
	assert.Equal(t, int64(25), age)

	err = g.AddNodesFrom([]edgelist.Node{{ID: "u3"}, {ID: nil}})
	assert.ErrorIs(t, err, core.ErrNilNodeID)
	assert.True(t, g.HasNode("u3"))
}

func TestAddEdgesFrom(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdgesFrom([]edgelist.Edge{
		{From: "u1", To: "i1"},
		{From: "u1", To: "i2"},
		{From: "u2", To: "i1"},
		{From: "u2", To: "i1"},
	}))

	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []table.Value{"u1", "i1", "i2", "u2"}, g.Nodes())
}

func TestCheckEdgesAndNodes(t *testing.T) {
	assert.NoError(t, core.CheckEdges([]edgelist.Edge{{From: "u1", To: "i1"}, {From: 1, To: 2}}))
	assert.NoError(t, core.CheckEdges(nil))

	err := core.CheckEdges([]edgelist.Edge{{From: "u1", To: "i1"}, {From: nil, To: "i2"}})
	assert.ErrorIs(t, err, core.ErrNilNodeID)
	assert.Contains(t, err.Error(), "edge 1")

	err = core.CheckEdges([]edgelist.Edge{{From: "u1", To: math.NaN()}})
	assert.ErrorIs(t, err, core.ErrInvalidNodeID)

	assert.NoError(t, core.CheckNodes([]edgelist.Node{{ID: "u1"}}))
	err = core.CheckNodes([]edgelist.Node{{ID: "u1"}, {ID: []int{1}}})
	assert.ErrorIs(t, err, core.ErrInvalidNodeID)
	assert.Contains(t, err.Error(), "node 1")
}

func TestQueriesOnMissing(t *testing.T) {
	g := core.NewGraph()

	_, err := g.Node("x")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.Neighbors("x")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.Degree("x")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.EdgeAttrs("x", "y")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	assert.False(t, g.HasEdge("x", "y"))
}

func TestSnapshotsAreCopies(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("u", "i", attrs("weight", 1.5)))

	a, err := g.EdgeAttrs("u", "i")
	require.NoError(t, err)
	a.Set("weight", 9.0)

	again, err := g.EdgeAttrs("u", "i")
	require.NoError(t, err)
	w, _ := again.Get("weight")
	assert.Equal(t, 1.5, w)
}
