package ffi

import (
	"unsafe"

	"github.com/nvimgo/nvimgo/types"
)

// Go -> C encoding and C -> Go decoding. Ownership is stated per helper:
//
//   - Borrow* helpers produce views into Go-owned buffers. The caller must
//     keep the original value alive until the boundary call returns and
//     must never free the view.
//   - Copy* helpers allocate fresh native memory through the installed
//     allocator; the caller owns the result and releases it with the
//     matching Free* helper.
//   - CopyAndDestroy* helpers decode a value the host handed to us,
//     copying the contents into Go-side ownership and releasing the native
//     allocation. After the call the native value is gone.

var cObjectSize = int(unsafe.Sizeof(CObject{}))
var cPairSize = int(unsafe.Sizeof(CKeyValuePair{}))

func memBytes(ptr uintptr, n int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(ptr)), n)
}

// emptyCStr backs borrows of the empty String, which owns no buffer. The
// host still expects a readable NUL-terminated pointer.
var emptyCStr = [1]byte{0}

// BorrowCString views s without copying. String buffers carry a hidden
// trailing NUL, so the view is a valid C string. The result is only valid
// while s is alive and must never be freed.
func BorrowCString(s types.String) CString {
	data, size, _ := s.Raw()
	if data == nil {
		return CString{Data: uintptr(unsafe.Pointer(&emptyCStr[0])), Size: 0}
	}
	return CString{Data: uintptr(data), Size: size}
}

// CopyCString allocates a NUL-terminated native copy of s. The caller owns
// the result; release it with FreeCString.
func CopyCString(s types.String) CString {
	b := s.Bytes()
	ptr := types.CurrentAllocator().Alloc(len(b) + 1)
	buf := unsafe.Slice((*byte)(ptr), len(b)+1)
	copy(buf, b)
	buf[len(b)] = 0
	return CString{Data: uintptr(ptr), Size: uintptr(len(b))}
}

// CopyAndDestroyCString copies the contents of a host-owned string into a
// Go-side String and frees the native buffer.
func CopyAndDestroyCString(c CString) types.String {
	if c.Data == 0 {
		return types.String{}
	}
	out := types.StringFromBytes(memBytes(c.Data, int(c.Size)))
	types.CurrentAllocator().Free(unsafe.Pointer(c.Data))
	return out
}

// FreeCString releases a native string produced by CopyCString.
func FreeCString(c CString) {
	if c.Data != 0 {
		types.CurrentAllocator().Free(unsafe.Pointer(c.Data))
	}
}

// CopyCObject encodes o into an owned native object. The input is not
// consumed. Release the result with FreeCObject.
func CopyCObject(o types.Object) CObject {
	out := CObject{Type: kindToC(o.Kind())}
	switch o.Kind() {
	case types.KindNil:
	case types.KindBoolean:
		b, _ := o.AsBoolean()
		*out.boolean() = b
	case types.KindInteger:
		i, _ := o.AsInteger()
		*out.integer() = i
	case types.KindFloat:
		f, _ := o.AsFloat()
		*out.float() = f
	case types.KindBuffer:
		h, _ := o.AsBuffer()
		*out.integer() = int64(h)
	case types.KindWindow:
		h, _ := o.AsWindow()
		*out.integer() = int64(h)
	case types.KindTabPage:
		h, _ := o.AsTabPage()
		*out.integer() = int64(h)
	case types.KindLuaRef:
		r, _ := o.AsLuaRef()
		*out.integer() = int64(r)
	case types.KindString:
		s, _ := o.BorrowString()
		*out.str() = CopyCString(s.Value())
	case types.KindArray:
		a, _ := o.BorrowArray()
		*out.array() = CopyCArray(a.Value())
	case types.KindDictionary:
		d, _ := o.BorrowDictionary()
		*out.dict() = CopyCDictionary(d.Value())
	}
	return out
}

// CopyCArray encodes a into an owned native array of CObjects. Release the
// result with FreeCArray.
func CopyCArray(a types.Array) CArray {
	n := a.Len()
	if n == 0 {
		return CArray{}
	}
	items := types.CurrentAllocator().Alloc(n * cObjectSize)
	for i := 0; i < n; i++ {
		slot := (*CObject)(unsafe.Pointer(uintptr(items) + uintptr(i*cObjectSize)))
		*slot = CopyCObject(*a.At(i))
	}
	return CArray{Size: uintptr(n), Capacity: uintptr(n), Items: uintptr(items)}
}

// CopyCDictionary encodes d into an owned native pair vector. Release the
// result with FreeCDictionary.
func CopyCDictionary(d types.Dictionary) CDictionary {
	n := d.Len()
	if n == 0 {
		return CDictionary{}
	}
	items := types.CurrentAllocator().Alloc(n * cPairSize)
	for i, kv := range d.Pairs() {
		slot := (*CKeyValuePair)(unsafe.Pointer(uintptr(items) + uintptr(i*cPairSize)))
		slot.Key = CopyCString(kv.Key)
		slot.Value = CopyCObject(kv.Value)
	}
	return CDictionary{Size: uintptr(n), Capacity: uintptr(n), Items: uintptr(items)}
}

// CopyAndDestroyCObject decodes a host-owned object into Go-side ownership
// and recursively frees the native allocations.
func CopyAndDestroyCObject(c CObject) types.Object {
	switch kindFromC(c.Type) {
	case types.KindNil:
		return types.Nil()
	case types.KindBoolean:
		return types.Boolean(*c.boolean())
	case types.KindInteger:
		return types.Integer(*c.integer())
	case types.KindFloat:
		return types.Float(*c.float())
	case types.KindBuffer:
		return types.BufferObject(types.BufHandle(*c.integer()))
	case types.KindWindow:
		return types.WindowObject(types.WinHandle(*c.integer()))
	case types.KindTabPage:
		return types.TabPageObject(types.TabHandle(*c.integer()))
	case types.KindLuaRef:
		return types.LuaRefObject(types.LuaRef(*c.integer()))
	case types.KindString:
		return CopyAndDestroyCString(*c.str()).Object()
	case types.KindArray:
		return CopyAndDestroyCArray(*c.array()).Object()
	case types.KindDictionary:
		return CopyAndDestroyCDictionary(*c.dict()).Object()
	default:
		return types.Nil()
	}
}

// CopyAndDestroyCArray decodes a host-owned array and frees it.
func CopyAndDestroyCArray(c CArray) types.Array {
	var out types.Array
	for i := 0; i < int(c.Size); i++ {
		slot := (*CObject)(unsafe.Pointer(c.Items + uintptr(i*cObjectSize)))
		out.Push(CopyAndDestroyCObject(*slot))
	}
	if c.Items != 0 {
		types.CurrentAllocator().Free(unsafe.Pointer(c.Items))
	}
	return out
}

// CopyAndDestroyCDictionary decodes a host-owned dictionary and frees it.
func CopyAndDestroyCDictionary(c CDictionary) types.Dictionary {
	var out types.Dictionary
	for i := 0; i < int(c.Size); i++ {
		slot := (*CKeyValuePair)(unsafe.Pointer(c.Items + uintptr(i*cPairSize)))
		key := CopyAndDestroyCString(slot.Key)
		out.Push(key, CopyAndDestroyCObject(slot.Value))
	}
	if c.Items != 0 {
		types.CurrentAllocator().Free(unsafe.Pointer(c.Items))
	}
	return out
}

// FreeCObject recursively releases an object produced by CopyCObject.
func FreeCObject(c CObject) {
	switch kindFromC(c.Type) {
	case types.KindString:
		FreeCString(*c.str())
	case types.KindArray:
		FreeCArray(*c.array())
	case types.KindDictionary:
		FreeCDictionary(*c.dict())
	}
}

// FreeCArray recursively releases an array produced by CopyCArray.
func FreeCArray(c CArray) {
	for i := 0; i < int(c.Size); i++ {
		slot := (*CObject)(unsafe.Pointer(c.Items + uintptr(i*cObjectSize)))
		FreeCObject(*slot)
	}
	if c.Items != 0 {
		types.CurrentAllocator().Free(unsafe.Pointer(c.Items))
	}
}

// FreeCDictionary recursively releases a dictionary produced by
// CopyCDictionary.
func FreeCDictionary(c CDictionary) {
	for i := 0; i < int(c.Size); i++ {
		slot := (*CKeyValuePair)(unsafe.Pointer(c.Items + uintptr(i*cPairSize)))
		FreeCString(slot.Key)
		FreeCObject(slot.Value)
	}
	if c.Items != 0 {
		types.CurrentAllocator().Free(unsafe.Pointer(c.Items))
	}
}

// StoreCError copies a native error record into e and resets the record.
// The native message buffer is freed here rather than leaked on reuse:
// ownership of the text moves into e, whose own Take releases it.
func StoreCError(c *CError, e *types.Error) {
	if c.Type == cErrorNone {
		return
	}
	msg := cString(c.Msg)
	if c.Msg != 0 {
		types.CurrentAllocator().Free(unsafe.Pointer(c.Msg))
	}
	if c.Type == cErrorValidate {
		e.SetValidation(msg)
	} else {
		e.SetException(msg)
	}
	*c = NewCError()
}

// cString converts a NUL-terminated C string referenced by the given
// pointer into a Go string. Equivalent to C.GoString but implemented
// without cgo; the result is a copy.
func cString(c uintptr) string {
	ptr := unsafe.Pointer(c)
	if ptr == nil {
		return ""
	}
	var n uintptr
	for {
		if *(*byte)(unsafe.Add(ptr, n)) == 0 {
			break
		}
		n++
	}
	return string(unsafe.Slice((*byte)(ptr), n))
}
