package edgelist_test

import (
	"testing"

	"github.com/katalvlaran/linkalike/edgelist"
	"github.com/katalvlaran/linkalike/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// interactions is a user–item table with a rating and two metadata columns.
func interactions(t *testing.T) *table.Table {
	t.Helper()
	tb, err := table.New(
		[]string{"USER_ID", "ITEM_ID", "RATING", "TIMESTAMP", "GENRE"},
		[][]interface{}{
			{"u1", "i1", 5, 881250949, "Drama"},
			{"u1", "i2", 3.5, 891717742, "Comedy"},
			{"u2", "i1", 4, 878887116, "Drama"},
			{"u2", "i1", 4, 878887116, "Drama"},
		},
	)
	require.NoError(t, err)

	return tb
}

// pairs flattens attributes into [k0 v0 k1 v1 ...] for comparison.
func pairs(a *edgelist.Attrs) []interface{} {
	if a == nil {
		return nil
	}
	var out []interface{}
	for p := a.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key, p.Value)
	}

	return out
}

func TestMakeEdgeList_RatingScenario(t *testing.T) {
	tb, err := table.New(
		[]string{"USER_ID", "ITEM_ID", "RATING"},
		[][]interface{}{
			{"u1", "i1", 5},
			{"u1", "i2", 3},
			{"u2", "i1", 4},
		},
	)
	require.NoError(t, err)

	edges, err := edgelist.MakeEdgeList(tb, "USER_ID", "ITEM_ID", edgelist.WithWeight("RATING"))
	require.NoError(t, err)
	require.Len(t, edges, 3)

	want := []struct {
		from, to string
		rating   int64
	}{{"u1", "i1", 5}, {"u1", "i2", 3}, {"u2", "i1", 4}}
	for i, w := range want {
		assert.Equal(t, w.from, edges[i].From)
		assert.Equal(t, w.to, edges[i].To)
		assert.Equal(t, []string{"weight"}, edgelist.Keys(edges[i].Attrs))
		weight, ok := edges[i].Weight()
		require.True(t, ok)
		assert.Equal(t, w.rating, weight)
	}
}

func TestMakeEdgeList_Unweighted(t *testing.T) {
	tb := interactions(t)

	edges, err := edgelist.MakeEdgeList(tb, "USER_ID", "ITEM_ID", edgelist.WithMeta("GENRE"))
	require.NoError(t, err)
	require.Len(t, edges, tb.NumRows())
	for _, e := range edges {
		assert.False(t, e.Weighted())
		assert.Nil(t, e.Attrs)
		_, ok := e.Weight()
		assert.False(t, ok)
	}
	assert.Equal(t, edgelist.Edge{From: "u1", To: "i2"}, edges[1])
}

func TestMakeEdgeList_WeightFirstThenMetaInOrder(t *testing.T) {
	tb := interactions(t)

	edges, err := edgelist.MakeEdgeList(tb, "USER_ID", "ITEM_ID",
		edgelist.WithWeight("RATING"),
		edgelist.WithMeta("GENRE", "RATING", "TIMESTAMP", "GENRE"),
	)
	require.NoError(t, err)

	for i, e := range edges {
		assert.Equal(t, []string{"weight", "GENRE", "TIMESTAMP"}, edgelist.Keys(e.Attrs), "edge %d", i)
	}
	w, _ := edges[1].Attrs.Get("weight")
	assert.Equal(t, 3.5, w, "values pass through unmodified")
	ts, _ := edges[1].Attrs.Get("TIMESTAMP")
	assert.Equal(t, int64(891717742), ts)
}

func TestMakeEdgeList_CountPreservedAndNoDedup(t *testing.T) {
	tb := interactions(t)

	configs := [][]edgelist.Option{
		nil,
		{edgelist.WithWeight("RATING")},
		{edgelist.WithWeight("RATING"), edgelist.WithMeta("GENRE")},
		{edgelist.WithMeta("TIMESTAMP")},
	}
	for _, opts := range configs {
		edges, err := edgelist.MakeEdgeList(tb, "USER_ID", "ITEM_ID", opts...)
		require.NoError(t, err)
		require.Len(t, edges, 4)
		assert.Equal(t, edges[2].From, edges[3].From)
		assert.Equal(t, edges[2].To, edges[3].To)
		assert.Equal(t, pairs(edges[2].Attrs), pairs(edges[3].Attrs))
	}
}

func TestMakeEdgeList_StructuralColumnsDroppedFromMeta(t *testing.T) {
	tb := interactions(t)

	edges, err := edgelist.MakeEdgeList(tb, "USER_ID", "ITEM_ID",
		edgelist.WithWeight("RATING"),
		edgelist.WithMeta("USER_ID", "ITEM_ID", "USER_ID"),
	)
	require.NoError(t, err)
	for _, e := range edges {
		_, hasFrom := e.Attrs.Get("USER_ID")
		_, hasTo := e.Attrs.Get("ITEM_ID")
		assert.False(t, hasFrom)
		assert.False(t, hasTo)
		assert.Equal(t, 1, e.Attrs.Len())
	}
}

func TestMakeEdgeList_Errors(t *testing.T) {
	tb := interactions(t)

	_, err := edgelist.MakeEdgeList(tb, "USER_ID", "ITEM_ID",
		edgelist.WithWeight("RATING"),
		edgelist.WithMeta("GENRE", "AGE", "ZIP"),
	)
	require.ErrorIs(t, err, edgelist.ErrUnknownMetadataColumn)
	assert.Contains(t, err.Error(), `"AGE"`)
	assert.Contains(t, err.Error(), `"ZIP"`)

	// unknown metadata is reported even when the structural columns are bad
	_, err = edgelist.MakeEdgeList(tb, "NOPE", "ITEM_ID", edgelist.WithMeta("AGE"))
	assert.ErrorIs(t, err, edgelist.ErrUnknownMetadataColumn)

	_, err = edgelist.MakeEdgeList(tb, "USER_ID", "ITEM_ID", edgelist.WithMeta(""))
	assert.ErrorIs(t, err, edgelist.ErrInvalidMetadataType)

	_, err = edgelist.MakeEdgeList(tb, "NOPE", "ITEM_ID")
	assert.ErrorIs(t, err, edgelist.ErrUnknownColumn)

	_, err = edgelist.MakeEdgeList(tb, "USER_ID", "ITEM_ID", edgelist.WithWeight("SCORE"))
	assert.ErrorIs(t, err, edgelist.ErrUnknownColumn)

	_, err = edgelist.MakeEdgeList(nil, "USER_ID", "ITEM_ID")
	assert.ErrorIs(t, err, edgelist.ErrNilTable)
}

func TestMakeEdgeList_ReservedWeightKey(t *testing.T) {
	tb, err := table.New([]string{"FROM", "TO", "SIMILARITY", "weight"}, [][]interface{}{{"a", "b", 0.7, 1}})
	require.NoError(t, err)

	_, err = edgelist.MakeEdgeList(tb, "FROM", "TO", edgelist.WithWeight("SIMILARITY"), edgelist.WithMeta("weight"))
	assert.ErrorIs(t, err, edgelist.ErrReservedAttribute)

	edges, err := edgelist.MakeEdgeList(tb, "FROM", "TO", edgelist.WithWeight("weight"), edgelist.WithMeta("weight"))
	require.NoError(t, err)
	assert.Equal(t, []string{"weight"}, edgelist.Keys(edges[0].Attrs))
}

func TestMakeEdgeList_DoesNotMutateCallerMeta(t *testing.T) {
	tb := interactions(t)
	meta := []string{"USER_ID", "RATING", "GENRE"}

	_, err := edgelist.MakeEdgeList(tb, "USER_ID", "ITEM_ID", edgelist.WithWeight("RATING"), edgelist.WithMeta(meta...))
	require.NoError(t, err)
	assert.Equal(t, []string{"USER_ID", "RATING", "GENRE"}, meta)
}

func TestMakeNodeList(t *testing.T) {
	users, err := table.New(
		[]string{"USER_ID", "AGE", "GENDER", "ZIP"},
		[][]interface{}{
			{"u1", 24, "M", "85711"},
			{"u2", 53, "F", "94043"},
		},
	)
	require.NoError(t, err)

	nodes, err := edgelist.MakeNodeList(users, "USER_ID", []string{"GENDER", "USER_ID", "AGE"})
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, "u2", nodes[1].ID)
	assert.Equal(t, []string{"GENDER", "AGE"}, edgelist.Keys(nodes[1].Attrs))
	age, _ := nodes[1].Attrs.Get("AGE")
	assert.Equal(t, int64(53), age)

	bare, err := edgelist.MakeNodeList(users, "USER_ID", nil)
	require.NoError(t, err)
	require.NotNil(t, bare[0].Attrs)
	assert.Equal(t, 0, bare[0].Attrs.Len())
}

func TestMakeNodeList_Errors(t *testing.T) {
	users, err := table.New([]string{"USER_ID", "AGE"}, [][]interface{}{{"u1", 24}})
	require.NoError(t, err)

	_, err = edgelist.MakeNodeList(users, "USER_ID", []string{"OCCUPATION"})
	assert.ErrorIs(t, err, edgelist.ErrUnknownMetadataColumn)

	_, err = edgelist.MakeNodeList(users, "USER_ID", []string{"AGE", ""})
	assert.ErrorIs(t, err, edgelist.ErrInvalidMetadataType)

	_, err = edgelist.MakeNodeList(users, "ITEM_ID", nil)
	assert.ErrorIs(t, err, edgelist.ErrUnknownColumn)
}
