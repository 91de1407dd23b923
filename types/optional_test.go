package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalStringAccessor(t *testing.T) {
	assert.Equal(t, "", NewOptionalStringUnset().String())
	assert.Equal(t, "", NewOptionalStringSet("").String())
	assert.Equal(t, "a", NewOptionalStringSet("a").String())
}

func TestOptionalToObject(t *testing.T) {
	// Unset optionals encode as the nil Object, set ones as their value.
	o, err := ToObject(NewOptionalStringUnset())
	require.NoError(t, err)
	assert.True(t, o.IsNil())

	o, err = ToObject(NewOptionalStringSet("v"))
	require.NoError(t, err)
	s, err := o.TakeString()
	require.NoError(t, err)
	assert.Equal(t, "v", s.String())
	s.Free()

	o, err = ToObject(NewOptionalIntSet(3))
	require.NoError(t, err)
	i, err := o.AsInteger()
	require.NoError(t, err)
	assert.Equal(t, int64(3), i)

	o, err = ToObject(NewOptionalBoolUnset())
	require.NoError(t, err)
	assert.True(t, o.IsNil())
}
