package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKinds(t *testing.T) {
	assert.Equal(t, KindNil, Nil().Kind())
	assert.Equal(t, KindBoolean, Boolean(true).Kind())
	assert.Equal(t, KindInteger, Integer(42).Kind())
	assert.Equal(t, KindFloat, Float(1.5).Kind())
	assert.Equal(t, KindString, Str("x").Kind())
	assert.Equal(t, KindArray, NewArray().Object().Kind())
	assert.Equal(t, KindDictionary, NewDictionary().Object().Kind())
	assert.Equal(t, KindBuffer, BufferObject(1).Kind())
	assert.Equal(t, KindWindow, WindowObject(1).Kind())
	assert.Equal(t, KindTabPage, TabPageObject(1).Kind())
	assert.Equal(t, KindLuaRef, LuaRefObject(7).Kind())
}

func TestObjectAccessors(t *testing.T) {
	b, err := Boolean(true).AsBoolean()
	require.NoError(t, err)
	assert.True(t, b)

	i, err := Integer(-3).AsInteger()
	require.NoError(t, err)
	assert.Equal(t, int64(-3), i)

	f, err := Float(2.25).AsFloat()
	require.NoError(t, err)
	assert.Equal(t, 2.25, f)

	// Integers widen to float, as the host does.
	f, err = Integer(4).AsFloat()
	require.NoError(t, err)
	assert.Equal(t, 4.0, f)

	buf, err := BufferObject(9).AsBuffer()
	require.NoError(t, err)
	assert.Equal(t, BufHandle(9), buf)
}

func TestObjectKindMismatch(t *testing.T) {
	o := Str("not a number")
	defer o.Free()

	_, err := o.AsInteger()
	require.Error(t, err)

	var convErr *ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, KindInteger, convErr.Expected)
	assert.Equal(t, KindString, convErr.Actual)
	assert.Contains(t, convErr.Error(), "integer")
	assert.Contains(t, convErr.Error(), "string")

	// The failed extraction must not have consumed the payload.
	assert.Equal(t, KindString, o.Kind())
}

func TestObjectTakeString(t *testing.T) {
	counting := withCountingAllocator(t)

	o := Str("moved")
	s, err := o.TakeString()
	require.NoError(t, err)
	defer s.Free()

	// The Object was consumed; freeing it must not free the payload again.
	assert.True(t, o.IsNil())
	o.Free()
	assert.Equal(t, "moved", s.String())
	assert.Equal(t, 1, counting.Live())
}

func TestObjectEqual(t *testing.T) {
	assert.True(t, Nil().Equal(Nil()))
	assert.True(t, Integer(1).Equal(Integer(1)))
	assert.False(t, Integer(1).Equal(Integer(2)))
	// No cross-kind coercion in comparisons.
	assert.False(t, Integer(1).Equal(Float(1)))
	assert.False(t, Nil().Equal(Boolean(false)))

	a := Str("same")
	b := Str("same")
	defer a.Free()
	defer b.Free()
	assert.True(t, a.Equal(b))

	arr1 := ArrayFromStrings([]string{"x", "y"}).Object()
	arr2 := ArrayFromStrings([]string{"x", "y"}).Object()
	arr3 := ArrayFromStrings([]string{"y", "x"}).Object()
	defer arr1.Free()
	defer arr2.Free()
	defer arr3.Free()
	assert.True(t, arr1.Equal(arr2))
	assert.False(t, arr1.Equal(arr3))
}

func TestObjectCloneIsDeep(t *testing.T) {
	counting := withCountingAllocator(t)

	var d Dictionary
	d.Set("inner", Str("value"))
	o := d.Object()

	c := o.Clone()
	o.Free()

	// The clone's payload survives freeing the original.
	dict, err := c.TakeDictionary()
	require.NoError(t, err)
	v, ok := dict.Get("inner")
	require.True(t, ok)
	s, err := v.TakeString()
	require.NoError(t, err)
	assert.Equal(t, "value", s.String())
	s.Free()
	dict.Free()
	assert.Equal(t, 0, counting.Live())
	assert.Equal(t, 0, counting.DoubleFrees())
}

func TestObjectRecursiveFree(t *testing.T) {
	counting := withCountingAllocator(t)

	// A dictionary holding an array of strings: the deep free must release
	// every key, every element and every buffer exactly once.
	var d Dictionary
	d.Set("lines", ArrayFromStrings([]string{"foo", "bar"}).Object())
	d.Set("name", Str("scratch"))
	o := d.Object()

	require.Greater(t, counting.Live(), 0)
	o.Free()
	assert.Equal(t, 0, counting.Live())
	assert.Equal(t, 0, counting.DoubleFrees())
	assert.Equal(t, counting.Allocs(), counting.Frees())
}
