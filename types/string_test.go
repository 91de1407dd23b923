package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withCountingAllocator installs a fresh counting allocator for the duration
// of the test and returns it.
func withCountingAllocator(t *testing.T) *CountingAllocator {
	t.Helper()
	counting := NewCountingAllocator(nil)
	prev := SetAllocator(counting)
	t.Cleanup(func() { SetAllocator(prev) })
	return counting
}

func TestStringRoundTrip(t *testing.T) {
	s := NewString("hello world")
	defer s.Free()

	assert.Equal(t, 11, s.Len())
	assert.False(t, s.IsEmpty())
	assert.Equal(t, "hello world", s.String())
	assert.Equal(t, []byte("hello world"), s.Bytes())
}

func TestStringArbitraryBytes(t *testing.T) {
	// Host strings are not guaranteed to be UTF-8.
	raw := []byte{0xff, 0xfe, 0x00, 'a'}
	s := StringFromBytes(raw)
	defer s.Free()

	require.Equal(t, raw, s.Bytes())
	// Lossy decoding preserves the bytes even though they are invalid UTF-8.
	assert.Equal(t, string(raw), s.String())
}

func TestStringEmpty(t *testing.T) {
	counting := withCountingAllocator(t)

	s := NewString("")
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, "", s.String())
	s.Free()

	// The empty string never touches the allocator.
	assert.Equal(t, 0, counting.Allocs())
}

func TestStringFreeExactlyOnce(t *testing.T) {
	counting := withCountingAllocator(t)

	s := NewString("owned")
	require.Equal(t, 1, counting.Allocs())
	require.Equal(t, 1, counting.Live())

	s.Free()
	assert.Equal(t, 1, counting.Frees())
	assert.Equal(t, 0, counting.Live())

	// A freed String is the empty String; freeing again is a no-op, not a
	// double free.
	s.Free()
	assert.Equal(t, 0, counting.DoubleFrees())
	assert.Equal(t, 1, counting.Frees())
}

func TestNonOwningNeverFrees(t *testing.T) {
	counting := withCountingAllocator(t)

	s := NewString("borrowed")
	require.Equal(t, 1, counting.Live())

	// Take and discard several borrows: nothing may be freed.
	for i := 0; i < 3; i++ {
		borrow := s.NonOwning()
		assert.Equal(t, "borrowed", borrow.Value().String())
	}
	assert.Equal(t, 1, counting.Live())
	assert.Equal(t, 0, counting.Frees())

	// The owner frees exactly once after the borrows are gone.
	s.Free()
	assert.Equal(t, 0, counting.Live())
	assert.Equal(t, 1, counting.Frees())
	assert.Equal(t, 0, counting.DoubleFrees())
}

func TestStringClone(t *testing.T) {
	counting := withCountingAllocator(t)

	s := NewString("original")
	c := s.Clone()
	require.Equal(t, 2, counting.Allocs())
	assert.True(t, s.Equal(c))

	// The clone survives the original.
	s.Free()
	assert.Equal(t, "original", c.String())

	c.Free()
	assert.Equal(t, 0, counting.Live())
}

func TestStringIntoRaw(t *testing.T) {
	counting := withCountingAllocator(t)

	s := NewString("raw")
	data, size, capacity := s.IntoRaw()
	require.NotNil(t, data)
	require.Equal(t, uintptr(3), size)

	// s released ownership: freeing it must not touch the buffer.
	s.Free()
	assert.Equal(t, 1, counting.Live())

	adopted := StringFromRaw(data, size, capacity)
	assert.Equal(t, "raw", adopted.String())
	adopted.Free()
	assert.Equal(t, 0, counting.Live())
}
