package types

import (
	"bytes"
	"unsafe"
)

// String is an owned byte buffer laid out the way the host expects its
// strings: a data pointer, a length and a capacity, allocated through the
// installed Allocator. Unlike a Go string the contents are arbitrary bytes;
// host strings are not guaranteed to be valid UTF-8.
//
// A String exclusively owns its buffer. Free releases it exactly once;
// Clone performs a deep copy through the allocator. Pass a String across
// the boundary with NonOwning to keep ownership on this side.
type String struct {
	data unsafe.Pointer
	size uintptr
	cap  uintptr
}

// NewString copies s into a freshly allocated buffer.
func NewString(s string) String {
	return StringFromBytes([]byte(s))
}

// StringFromBytes copies b into a freshly allocated buffer. The buffer
// carries a hidden trailing NUL because the host reads string arguments as
// C strings; size and capacity both exclude it. A nil or empty slice
// yields the empty String, which owns no allocation.
func StringFromBytes(b []byte) String {
	if len(b) == 0 {
		return String{}
	}
	ptr := alloc(len(b) + 1)
	buf := unsafe.Slice((*byte)(ptr), len(b)+1)
	copy(buf, b)
	buf[len(b)] = 0
	return String{data: ptr, size: uintptr(len(b)), cap: uintptr(len(b))}
}

// StringFromRaw adopts an existing allocation. The buffer must have been
// produced by the installed Allocator; ownership transfers to the returned
// String, which will eventually Free it.
func StringFromRaw(data unsafe.Pointer, size, capacity uintptr) String {
	return String{data: data, size: size, cap: capacity}
}

// Raw returns the buffer pointer, length and capacity without transferring
// ownership. For boundary encoding only: the result aliases the owned
// buffer and must not outlive it or be freed through it.
func (s String) Raw() (data unsafe.Pointer, size, capacity uintptr) {
	return s.data, s.size, s.cap
}

// IntoRaw releases ownership of the buffer to the caller and zeroes s.
// The caller becomes responsible for the one eventual Free.
func (s *String) IntoRaw() (data unsafe.Pointer, size, capacity uintptr) {
	data, size, capacity = s.data, s.size, s.cap
	*s = String{}
	return data, size, capacity
}

func (s String) Len() int      { return int(s.size) }
func (s String) IsEmpty() bool { return s.size == 0 }

// view returns the backing bytes without copying. The slice aliases the
// owned buffer and must not outlive it.
func (s String) view() []byte {
	if s.data == nil {
		return nil
	}
	return unsafe.Slice((*byte)(s.data), s.size)
}

// Bytes returns a copy of the contents as a Go slice.
func (s String) Bytes() []byte {
	if s.size == 0 {
		return []byte{}
	}
	out := make([]byte, s.size)
	copy(out, s.view())
	return out
}

// String converts the contents to a Go string. Go strings carry arbitrary
// bytes, so this is the lossy decoding required for host strings: invalid
// UTF-8 is preserved byte-for-byte and only mangles when displayed.
func (s String) String() string {
	return string(s.view())
}

// Equal reports whether the two strings hold the same bytes.
func (s String) Equal(other String) bool {
	return bytes.Equal(s.view(), other.view())
}

// Clone deep-copies the buffer through the allocator.
func (s String) Clone() String {
	return StringFromBytes(s.view())
}

// Free releases the buffer and zeroes s. The empty String owns nothing and
// Free on it is a no-op, so freeing a moved-from String is safe.
func (s *String) Free() {
	if s.data != nil {
		free(s.data)
	}
	*s = String{}
}

// NonOwning borrows s for a boundary call without giving up ownership.
func (s String) NonOwning() NonOwning[String] {
	return NonOwning[String]{inner: s}
}

// Object moves s into a String-kinded Object. The Object takes ownership;
// s must not be freed by the caller afterwards.
func (s String) Object() Object {
	return Object{kind: KindString, str: s}
}
