package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionaryInsertionOrder(t *testing.T) {
	var d Dictionary
	defer d.Free()

	d.Set("a", Integer(1))
	d.Set("b", Integer(2))
	d.Set("c", Integer(3))

	keys := make([]string, 0, d.Len())
	for _, kv := range d.Pairs() {
		keys = append(keys, kv.Key.String())
	}
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestDictionaryOrderSurvivesUpdate(t *testing.T) {
	var d Dictionary
	defer d.Free()

	d.Set("a", Integer(1))
	d.Set("b", Integer(2))
	d.Set("c", Integer(3))
	// Updating an existing key keeps its position.
	d.Set("b", Integer(20))

	require.Equal(t, 3, d.Len())
	assert.Equal(t, "b", d.Pairs()[1].Key.String())
	v, ok := d.Get("b")
	require.True(t, ok)
	i, err := v.AsInteger()
	require.NoError(t, err)
	assert.Equal(t, int64(20), i)
}

func TestDictionaryUpdateFreesOldValue(t *testing.T) {
	counting := withCountingAllocator(t)

	var d Dictionary
	d.Set("k", Str("old"))
	d.Set("k", Str("new"))

	v, ok := d.Get("k")
	require.True(t, ok)
	s, err := v.TakeString()
	require.NoError(t, err)
	assert.Equal(t, "new", s.String())
	s.Free()

	d.Free()
	assert.Equal(t, 0, counting.Live())
	assert.Equal(t, 0, counting.DoubleFrees())
}

func TestDictionaryLookupMiss(t *testing.T) {
	var d Dictionary
	defer d.Free()
	d.Set("present", Boolean(true))

	_, ok := d.Get("absent")
	assert.False(t, ok)
	assert.True(t, d.Has("present"))
	assert.False(t, d.Has("absent"))
}

func TestDictionaryEqualIsOrdered(t *testing.T) {
	var d1, d2 Dictionary
	defer d1.Free()
	defer d2.Free()

	d1.Set("x", Integer(1))
	d1.Set("y", Integer(2))
	d2.Set("y", Integer(2))
	d2.Set("x", Integer(1))

	// Same pairs, different insertion order: structurally different.
	assert.False(t, d1.Equal(d2))
	assert.True(t, d1.Equal(d1))
}

func TestArrayStringsScenario(t *testing.T) {
	// ["foo", "bar", "baz"] must convert preserving order and contents.
	a := ArrayFromStrings([]string{"foo", "bar", "baz"})
	defer a.Free()

	got, err := a.Strings()
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar", "baz"}, got)
}

func TestArrayStringsWrongKind(t *testing.T) {
	a := NewArray(Str("ok"), Integer(5))
	defer a.Free()

	_, err := a.Strings()
	require.Error(t, err)
	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, KindString, convErr.Expected)
	assert.Equal(t, KindInteger, convErr.Actual)
}
