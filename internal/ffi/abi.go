// Package ffi contains pure-Go representations of the C ABI structs the
// host's API surface expects. They are safe to use with
// purego.RegisterLibFunc and must exactly match the host's field layout.
//
// The tagged union is never reproduced by memory overlap on the Go side:
// values cross the boundary through the explicit encode/decode helpers in
// this package, which allocate and release through the installed
// types.Allocator.
package ffi

import (
	"unsafe"

	"github.com/nvimgo/nvimgo/types"
)

// CString mirrors the host's string struct: a NUL-terminated data pointer
// plus a size that excludes the NUL.
type CString struct {
	Data uintptr
	Size uintptr
}

// CArray mirrors the host's growable object vector.
type CArray struct {
	Size     uintptr
	Capacity uintptr
	Items    uintptr // contiguous CObjects
}

// CDictionary mirrors the host's key/value vector.
type CDictionary struct {
	Size     uintptr
	Capacity uintptr
	Items    uintptr // contiguous CKeyValuePairs
}

// CObject mirrors the host's tagged union value: a 32-bit discriminant
// followed by a union sized for its largest member (the three-word array
// and dictionary headers).
type CObject struct {
	Type int32
	_    int32
	Data [3]uint64
}

// CKeyValuePair is one entry of a CDictionary.
type CKeyValuePair struct {
	Key   CString
	Value CObject
}

// CError mirrors the host's out-parameter error record. The zero value is
// NOT the no-error state; use NewCError.
type CError struct {
	Type int32
	_    int32
	Msg  uintptr // NUL-terminated, allocated by whichever side set it
}

// NewCError returns a record in the no-error state.
func NewCError() CError {
	return CError{Type: cErrorNone}
}

// Host-side discriminant values. The host orders its object types with
// LuaRef before the handle types, unlike types.ObjectKind, so the mapping
// is explicit in both directions.
const (
	cErrorNone      int32 = -1
	cErrorException int32 = 0
	cErrorValidate  int32 = 1

	cTypeNil        int32 = 0
	cTypeBoolean    int32 = 1
	cTypeInteger    int32 = 2
	cTypeFloat      int32 = 3
	cTypeString     int32 = 4
	cTypeArray      int32 = 5
	cTypeDictionary int32 = 6
	cTypeLuaRef     int32 = 7
	cTypeBuffer     int32 = 8
	cTypeWindow     int32 = 9
	cTypeTabPage    int32 = 10
)

func kindToC(k types.ObjectKind) int32 {
	switch k {
	case types.KindNil:
		return cTypeNil
	case types.KindBoolean:
		return cTypeBoolean
	case types.KindInteger:
		return cTypeInteger
	case types.KindFloat:
		return cTypeFloat
	case types.KindString:
		return cTypeString
	case types.KindArray:
		return cTypeArray
	case types.KindDictionary:
		return cTypeDictionary
	case types.KindLuaRef:
		return cTypeLuaRef
	case types.KindBuffer:
		return cTypeBuffer
	case types.KindWindow:
		return cTypeWindow
	case types.KindTabPage:
		return cTypeTabPage
	default:
		return cTypeNil
	}
}

func kindFromC(t int32) types.ObjectKind {
	switch t {
	case cTypeBoolean:
		return types.KindBoolean
	case cTypeInteger:
		return types.KindInteger
	case cTypeFloat:
		return types.KindFloat
	case cTypeString:
		return types.KindString
	case cTypeArray:
		return types.KindArray
	case cTypeDictionary:
		return types.KindDictionary
	case cTypeLuaRef:
		return types.KindLuaRef
	case cTypeBuffer:
		return types.KindBuffer
	case cTypeWindow:
		return types.KindWindow
	case cTypeTabPage:
		return types.KindTabPage
	default:
		return types.KindNil
	}
}

// Union accessors. The union blob starts at Data[0] and is 8-byte aligned,
// so each member can be read and written through a typed pointer.

func (o *CObject) boolean() *bool     { return (*bool)(unsafe.Pointer(&o.Data[0])) }
func (o *CObject) integer() *int64    { return (*int64)(unsafe.Pointer(&o.Data[0])) }
func (o *CObject) float() *float64    { return (*float64)(unsafe.Pointer(&o.Data[0])) }
func (o *CObject) str() *CString      { return (*CString)(unsafe.Pointer(&o.Data[0])) }
func (o *CObject) array() *CArray     { return (*CArray)(unsafe.Pointer(&o.Data[0])) }
func (o *CObject) dict() *CDictionary { return (*CDictionary)(unsafe.Pointer(&o.Data[0])) }
