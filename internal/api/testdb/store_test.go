package testdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvimgo/nvimgo/types"
)

func TestStoreSetGet(t *testing.T) {
	s := NewStore()
	defer s.Clear()

	require.NoError(t, s.Set("answer", types.Integer(42)))

	got, ok := s.Get("answer")
	require.True(t, ok)
	i, err := got.AsInteger()
	require.NoError(t, err)
	assert.Equal(t, int64(42), i)
}

func TestStoreGetReturnsIndependentCopy(t *testing.T) {
	counting := types.NewCountingAllocator(types.NewGoAllocator())
	prev := types.SetAllocator(counting)
	defer types.SetAllocator(prev)

	s := NewStore()
	require.NoError(t, s.Set("name", types.Str("scratch")))

	got, ok := s.Get("name")
	require.True(t, ok)
	got.Free()

	// The stored value survives freeing the copy.
	again, ok := s.Get("name")
	require.True(t, ok)
	str, err := again.BorrowString()
	require.NoError(t, err)
	assert.Equal(t, "scratch", str.Value().String())
	again.Free()

	s.Clear()
	assert.Equal(t, counting.Allocs(), counting.Frees())
}

func TestStoreSetReplacesAndFrees(t *testing.T) {
	counting := types.NewCountingAllocator(types.NewGoAllocator())
	prev := types.SetAllocator(counting)
	defer types.SetAllocator(prev)

	s := NewStore()
	require.NoError(t, s.Set("k", types.Str("old")))
	require.NoError(t, s.Set("k", types.Str("new")))

	got, ok := s.Get("k")
	require.True(t, ok)
	str, err := got.BorrowString()
	require.NoError(t, err)
	assert.Equal(t, "new", str.Value().String())
	got.Free()

	s.Clear()
	assert.Equal(t, counting.Allocs(), counting.Frees())
	assert.Zero(t, counting.DoubleFrees())
}

func TestStoreEmptyKey(t *testing.T) {
	s := NewStore()
	assert.ErrorIs(t, s.Set("", types.Integer(1)), ErrKeyEmpty)
	assert.Zero(t, s.Len())
}

func TestStoreDelete(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Set("k", types.Boolean(true)))

	assert.True(t, s.Delete("k"))
	assert.False(t, s.Has("k"))
	assert.False(t, s.Delete("k"))
}

func TestStoreKeysOrdered(t *testing.T) {
	s := NewStore()
	defer s.Clear()
	for _, k := range []string{"zulu", "alpha", "mike"} {
		require.NoError(t, s.Set(k, types.Nil()))
	}
	assert.Equal(t, []string{"alpha", "mike", "zulu"}, s.Keys())
}
