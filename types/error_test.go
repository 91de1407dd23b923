package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrorIsClean(t *testing.T) {
	e := NewError()
	assert.False(t, e.IsErr())
	assert.Equal(t, ErrorTypeNone, e.Type())
	assert.NoError(t, e.Take())
}

func TestErrorTakeTransfersMessage(t *testing.T) {
	counting := withCountingAllocator(t)

	e := NewError()
	e.SetException("something went wrong")
	require.True(t, e.IsErr())
	require.Equal(t, 1, counting.Live())

	err := e.Take()
	require.Error(t, err)

	var boundary *BoundaryError
	require.True(t, errors.As(err, &boundary))
	assert.Equal(t, ErrorTypeException, boundary.Type)
	assert.Equal(t, "something went wrong", boundary.Msg)
	assert.Equal(t, "exception: something went wrong", boundary.Error())

	// Take consumed the message buffer and reset the record.
	assert.False(t, e.IsErr())
	assert.Equal(t, 0, counting.Live())
	assert.NoError(t, e.Take())
}

func TestErrorRecordReuse(t *testing.T) {
	counting := withCountingAllocator(t)

	e := NewError()
	e.SetValidation("first")
	// Overwriting a pending message must free the old buffer.
	e.SetException("second")
	assert.Equal(t, 1, counting.Live())

	err := e.Take()
	var boundary *BoundaryError
	require.ErrorAs(t, err, &boundary)
	assert.Equal(t, ErrorTypeException, boundary.Type)
	assert.Equal(t, "second", boundary.Msg)
	assert.Equal(t, 0, counting.Live())
	assert.Equal(t, 0, counting.DoubleFrees())
}

func TestErrorFree(t *testing.T) {
	counting := withCountingAllocator(t)

	e := NewError()
	e.SetValidation("discarded")
	e.Free()
	assert.False(t, e.IsErr())
	assert.Equal(t, 0, counting.Live())
}

func TestBoundaryErrorValidation(t *testing.T) {
	e := NewError()
	e.SetValidation("bad argument")
	err := e.Take()
	var boundary *BoundaryError
	require.ErrorAs(t, err, &boundary)
	assert.Equal(t, ErrorTypeValidation, boundary.Type)
	assert.Equal(t, "validation: bad argument", boundary.Error())
}
