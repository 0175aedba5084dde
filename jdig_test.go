package jdig

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	t.Run("ordered document hit", func(t *testing.T) {
		d := D{{Key: "a", Value: 1}, {Key: "b", Value: 2}}
		v, found, err := Index(d, "b")
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, 2, v)
	})

	t.Run("ordered document first occurrence wins", func(t *testing.T) {
		d := D{{Key: "a", Value: "first"}, {Key: "a", Value: "second"}}
		v, found, err := Index(d, "a")
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, "first", v)
	})

	t.Run("ordered document miss", func(t *testing.T) {
		d := D{{Key: "a", Value: 1}}
		v, found, err := Index(d, "z")
		require.NoError(t, err)
		require.False(t, found)
		require.Nil(t, v)
	})

	t.Run("plain map hit and miss", func(t *testing.T) {
		m := map[string]any{"a": 1}
		v, found, err := Index(m, "a")
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, 1, v)

		_, found, err = Index(m, "z")
		require.NoError(t, err)
		require.False(t, found)
	})

	t.Run("nil value present in mapping is found", func(t *testing.T) {
		m := map[string]any{"a": nil}
		v, found, err := Index(m, "a")
		require.NoError(t, err)
		require.True(t, found)
		require.Nil(t, v)
	})

	t.Run("sequence is wrong shape", func(t *testing.T) {
		_, _, err := Index(A{1, 2}, "a")
		var shapeErr *ShapeError
		require.ErrorAs(t, err, &shapeErr)
		require.Equal(t, "a", shapeErr.Key)
	})

	t.Run("scalar is wrong shape", func(t *testing.T) {
		_, _, err := Index("text", "a")
		var shapeErr *ShapeError
		require.ErrorAs(t, err, &shapeErr)
	})

	t.Run("nil is wrong shape", func(t *testing.T) {
		_, _, err := Index(nil, "a")
		var shapeErr *ShapeError
		require.ErrorAs(t, err, &shapeErr)
	})
}

func TestDMap(t *testing.T) {
	t.Run("nested documents and arrays are converted", func(t *testing.T) {
		d := D{
			{Key: "name", Value: "demo"},
			{Key: "spec", Value: D{{Key: "replicas", Value: 3}}},
			{Key: "tags", Value: A{"a", D{{Key: "k", Value: "v"}}}},
		}
		require.Equal(t, map[string]any{
			"name": "demo",
			"spec": map[string]any{"replicas": 3},
			"tags": []any{"a", map[string]any{"k": "v"}},
		}, d.Map())
	})

	t.Run("duplicate keys keep last occurrence", func(t *testing.T) {
		d := D{{Key: "a", Value: 1}, {Key: "a", Value: 2}}
		require.Equal(t, map[string]any{"a": 2}, d.Map())
	})

	t.Run("empty document", func(t *testing.T) {
		require.Equal(t, map[string]any{}, D{}.Map())
	})
}

func TestASlice(t *testing.T) {
	a := A{1, D{{Key: "a", Value: A{true}}}}
	require.Equal(t, []any{1, map[string]any{"a": []any{true}}}, a.Slice())
}
