package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToObjectRoundTrip(t *testing.T) {
	// from_object(to_object(v)) == v for every supported scalar kind.
	bo, err := ToObject(true)
	require.NoError(t, err)
	b, err := bo.AsBoolean()
	require.NoError(t, err)
	assert.True(t, b)

	io, err := ToObject(int64(-99))
	require.NoError(t, err)
	i, err := io.AsInteger()
	require.NoError(t, err)
	assert.Equal(t, int64(-99), i)

	fo, err := ToObject(3.5)
	require.NoError(t, err)
	f, err := fo.AsFloat()
	require.NoError(t, err)
	assert.Equal(t, 3.5, f)

	so, err := ToObject("round trip")
	require.NoError(t, err)
	s, err := so.TakeString()
	require.NoError(t, err)
	assert.Equal(t, "round trip", s.String())
	s.Free()

	no, err := ToObject(nil)
	require.NoError(t, err)
	assert.True(t, no.IsNil())

	ho, err := ToObject(BufHandle(3))
	require.NoError(t, err)
	h, err := ho.AsBuffer()
	require.NoError(t, err)
	assert.Equal(t, BufHandle(3), h)

	lo, err := ToObject([]string{"a", "b"})
	require.NoError(t, err)
	arr, err := lo.TakeArray()
	require.NoError(t, err)
	got, err := arr.Strings()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
	arr.Free()
}

func TestToObjectOverflow(t *testing.T) {
	_, err := ToObject(uint64(math.MaxInt64))
	require.NoError(t, err)

	_, err = ToObject(uint64(math.MaxInt64) + 1)
	require.Error(t, err)
	var rangeErr *OutOfRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, "uint64", rangeErr.TypeName)
}

func TestToObjectUnsupported(t *testing.T) {
	_, err := ToObject(struct{ X int }{1})
	require.Error(t, err)
	var unsupported *UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
}

type cursorPos struct {
	Row int64
	Col int64
}

func (p *cursorPos) UnmarshalObject(o *Object) error {
	dict, err := o.TakeDictionary()
	if err != nil {
		return err
	}
	defer dict.Free()
	dd := NewDictDecoder(&dict)
	if p.Row, err = dd.Int("row"); err != nil {
		return err
	}
	if p.Col, err = dd.Int("col"); err != nil {
		return err
	}
	return nil
}

func TestDecodeRowColScenario(t *testing.T) {
	// {"row": 1, "col": 0} decodes into the typed pair (1, 0).
	var d Dictionary
	d.Set("row", Integer(1))
	d.Set("col", Integer(0))
	o := d.Object()

	var pos cursorPos
	require.NoError(t, pos.UnmarshalObject(&o))
	assert.Equal(t, int64(1), pos.Row)
	assert.Equal(t, int64(0), pos.Col)
}

func TestDecodeMissingFieldDistinctFromWrongKind(t *testing.T) {
	// Required field absent: MissingFieldError.
	var d1 Dictionary
	d1.Set("row", Integer(1))
	o1 := d1.Object()
	var pos cursorPos
	err := pos.UnmarshalObject(&o1)
	require.Error(t, err)
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "col", missing.Field)

	// Required field present with the wrong kind: ConversionError.
	var d2 Dictionary
	d2.Set("row", Str("not a number"))
	d2.Set("col", Integer(0))
	o2 := d2.Object()
	err = pos.UnmarshalObject(&o2)
	require.Error(t, err)
	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.NotErrorAs(t, err, &missing)
}

func TestOptionalFieldDecoding(t *testing.T) {
	// Absent key decodes to unset.
	var d1 Dictionary
	dd := NewDictDecoder(&d1)
	got, err := dd.OptionalString("x")
	require.NoError(t, err)
	assert.False(t, got.Set)

	// Key present but mapped to nil also decodes to unset.
	var d2 Dictionary
	d2.Set("x", Nil())
	dd = NewDictDecoder(&d2)
	got, err = dd.OptionalString("x")
	require.NoError(t, err)
	assert.False(t, got.Set)

	// Key present with a value decodes to set.
	var d3 Dictionary
	d3.Set("x", Str("there"))
	dd = NewDictDecoder(&d3)
	got, err = dd.OptionalString("x")
	require.NoError(t, err)
	require.True(t, got.Set)
	assert.Equal(t, "there", got.Value)

	d1.Free()
	d2.Free()
	d3.Free()
}

func TestOptionalIntAndBool(t *testing.T) {
	var d Dictionary
	d.Set("n", Integer(7))
	d.Set("b", Boolean(true))
	dd := NewDictDecoder(&d)

	n, err := dd.OptionalInt("n")
	require.NoError(t, err)
	assert.Equal(t, int64(7), n.Int64())

	b, err := dd.OptionalBool("b")
	require.NoError(t, err)
	assert.True(t, b.Bool())

	absent, err := dd.OptionalInt("missing")
	require.NoError(t, err)
	assert.False(t, absent.Set)
	assert.Equal(t, int64(0), absent.Int64())
	d.Free()
}

func TestToObjectClonesContainers(t *testing.T) {
	counting := withCountingAllocator(t)

	// The result owns fresh allocations: freeing both the input and the
	// result must not double-free.
	in := Str("hello")
	out, err := ToObject(in)
	require.NoError(t, err)
	out.Free()
	in.Free()

	s := NewString("typed")
	so, err := ToObject(s)
	require.NoError(t, err)
	so.Free()
	s.Free()

	a := ArrayFromStrings([]string{"x", "y"})
	ao, err := ToObject(a)
	require.NoError(t, err)
	ao.Free()
	a.Free()

	var d Dictionary
	d.Set("k", Integer(1))
	do, err := ToObject(d)
	require.NoError(t, err)
	do.Free()
	d.Free()

	assert.Equal(t, 0, counting.Live())
	assert.Equal(t, 0, counting.DoubleFrees())
}

func TestDecodeConsumesNoLeaks(t *testing.T) {
	counting := withCountingAllocator(t)

	var d Dictionary
	d.Set("row", Integer(5))
	d.Set("col", Integer(6))
	d.Set("extra", Str("ignored"))
	o := d.Object()

	var pos cursorPos
	require.NoError(t, pos.UnmarshalObject(&o))

	// Decoding consumed row/col and the deferred Free released whatever was
	// left, including the unconsumed "extra" string.
	assert.Equal(t, 0, counting.Live())
	assert.Equal(t, 0, counting.DoubleFrees())
}
