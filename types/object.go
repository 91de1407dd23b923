package types

import "strconv"

// Handle types used by the host. A zero handle never names a real buffer,
// window or tabpage; the wrappers treat it as the "could not create"
// sentinel.
type (
	BufHandle int32
	WinHandle int32
	TabHandle int32

	// LuaRef is a reference to a function registered with the host's Lua
	// runtime.
	LuaRef int32
)

// ObjectKind discriminates the payload of an Object.
type ObjectKind int32

const (
	KindNil ObjectKind = iota
	KindBoolean
	KindInteger
	KindFloat
	KindString
	KindArray
	KindDictionary
	KindBuffer
	KindWindow
	KindTabPage
	KindLuaRef
)

func (k ObjectKind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindDictionary:
		return "dictionary"
	case KindBuffer:
		return "buffer"
	case KindWindow:
		return "window"
	case KindTabPage:
		return "tabpage"
	case KindLuaRef:
		return "luaref"
	default:
		return "unknown"
	}
}

// Object is the tagged dynamic value exchanged with the host. Exactly one
// payload field is active, selected by kind; for the heap-backed kinds
// (String, Array, Dictionary) the Object exclusively owns the payload's
// allocations and Free releases them recursively, exactly once.
//
// The zero Object is Nil.
type Object struct {
	kind    ObjectKind
	boolean bool
	integer int64 // also carries handles and LuaRefs
	float   float64
	str     String
	array   Array
	dict    Dictionary
}

// Nil returns the nil Object.
func Nil() Object { return Object{} }

func Boolean(b bool) Object  { return Object{kind: KindBoolean, boolean: b} }
func Integer(i int64) Object { return Object{kind: KindInteger, integer: i} }
func Float(f float64) Object { return Object{kind: KindFloat, float: f} }

// Str allocates a String from s and wraps it. Shorthand for
// NewString(s).Object().
func Str(s string) Object { return NewString(s).Object() }

func BufferObject(h BufHandle) Object {
	return Object{kind: KindBuffer, integer: int64(h)}
}

func WindowObject(h WinHandle) Object {
	return Object{kind: KindWindow, integer: int64(h)}
}

func TabPageObject(h TabHandle) Object {
	return Object{kind: KindTabPage, integer: int64(h)}
}

func LuaRefObject(r LuaRef) Object {
	return Object{kind: KindLuaRef, integer: int64(r)}
}

func (o Object) Kind() ObjectKind { return o.kind }
func (o Object) IsNil() bool      { return o.kind == KindNil }

func (o Object) AsBoolean() (bool, error) {
	if o.kind != KindBoolean {
		return false, &ConversionError{Expected: KindBoolean, Actual: o.kind}
	}
	return o.boolean, nil
}

func (o Object) AsInteger() (int64, error) {
	if o.kind != KindInteger {
		return 0, &ConversionError{Expected: KindInteger, Actual: o.kind}
	}
	return o.integer, nil
}

// AsFloat extracts a float payload. An integer payload is widened, matching
// the host's own numeric coercion.
func (o Object) AsFloat() (float64, error) {
	switch o.kind {
	case KindFloat:
		return o.float, nil
	case KindInteger:
		return float64(o.integer), nil
	default:
		return 0, &ConversionError{Expected: KindFloat, Actual: o.kind}
	}
}

func (o Object) AsBuffer() (BufHandle, error) {
	if o.kind != KindBuffer {
		return 0, &ConversionError{Expected: KindBuffer, Actual: o.kind}
	}
	return BufHandle(o.integer), nil
}

func (o Object) AsWindow() (WinHandle, error) {
	if o.kind != KindWindow {
		return 0, &ConversionError{Expected: KindWindow, Actual: o.kind}
	}
	return WinHandle(o.integer), nil
}

func (o Object) AsTabPage() (TabHandle, error) {
	if o.kind != KindTabPage {
		return 0, &ConversionError{Expected: KindTabPage, Actual: o.kind}
	}
	return TabHandle(o.integer), nil
}

func (o Object) AsLuaRef() (LuaRef, error) {
	if o.kind != KindLuaRef {
		return 0, &ConversionError{Expected: KindLuaRef, Actual: o.kind}
	}
	return LuaRef(o.integer), nil
}

// BorrowString returns the String payload as a non-owning borrow: the
// result aliases o's buffer and must not be freed or outlive o.
func (o Object) BorrowString() (NonOwning[String], error) {
	if o.kind != KindString {
		return NonOwning[String]{}, &ConversionError{Expected: KindString, Actual: o.kind}
	}
	return o.str.NonOwning(), nil
}

// BorrowArray returns the Array payload as a non-owning borrow.
func (o Object) BorrowArray() (NonOwning[Array], error) {
	if o.kind != KindArray {
		return NonOwning[Array]{}, &ConversionError{Expected: KindArray, Actual: o.kind}
	}
	return o.array.NonOwning(), nil
}

// BorrowDictionary returns the Dictionary payload as a non-owning borrow.
func (o Object) BorrowDictionary() (NonOwning[Dictionary], error) {
	if o.kind != KindDictionary {
		return NonOwning[Dictionary]{}, &ConversionError{Expected: KindDictionary, Actual: o.kind}
	}
	return o.dict.NonOwning(), nil
}

// TakeString moves the String payload out of o, leaving o Nil. The caller
// becomes the owner. Use Clone first when o is still needed.
func (o *Object) TakeString() (String, error) {
	if o.kind != KindString {
		return String{}, &ConversionError{Expected: KindString, Actual: o.kind}
	}
	s := o.str
	*o = Object{}
	return s, nil
}

// TakeArray moves the Array payload out of o, leaving o Nil.
func (o *Object) TakeArray() (Array, error) {
	if o.kind != KindArray {
		return Array{}, &ConversionError{Expected: KindArray, Actual: o.kind}
	}
	a := o.array
	*o = Object{}
	return a, nil
}

// TakeDictionary moves the Dictionary payload out of o, leaving o Nil.
func (o *Object) TakeDictionary() (Dictionary, error) {
	if o.kind != KindDictionary {
		return Dictionary{}, &ConversionError{Expected: KindDictionary, Actual: o.kind}
	}
	d := o.dict
	*o = Object{}
	return d, nil
}

// Equal performs a deep structural comparison. Objects of different kinds
// are never equal; integers do not compare equal to floats.
func (o Object) Equal(other Object) bool {
	if o.kind != other.kind {
		return false
	}
	switch o.kind {
	case KindNil:
		return true
	case KindBoolean:
		return o.boolean == other.boolean
	case KindInteger, KindBuffer, KindWindow, KindTabPage, KindLuaRef:
		return o.integer == other.integer
	case KindFloat:
		return o.float == other.float
	case KindString:
		return o.str.Equal(other.str)
	case KindArray:
		return o.array.Equal(other.array)
	case KindDictionary:
		return o.dict.Equal(other.dict)
	default:
		return false
	}
}

// Clone deep-copies o, allocating fresh buffers for heap-backed payloads.
func (o Object) Clone() Object {
	switch o.kind {
	case KindString:
		return Object{kind: KindString, str: o.str.Clone()}
	case KindArray:
		return Object{kind: KindArray, array: o.array.Clone()}
	case KindDictionary:
		return Object{kind: KindDictionary, dict: o.dict.Clone()}
	default:
		return o
	}
}

// Free releases any heap-backed payload, recursively, and leaves o Nil.
// Freeing a Nil or scalar Object is a no-op.
func (o *Object) Free() {
	switch o.kind {
	case KindString:
		o.str.Free()
	case KindArray:
		o.array.Free()
	case KindDictionary:
		o.dict.Free()
	}
	*o = Object{}
}

// NonOwning borrows o for a boundary call without giving up ownership.
func (o Object) NonOwning() NonOwning[Object] {
	return NonOwning[Object]{inner: o}
}

func (o Object) String() string {
	switch o.kind {
	case KindNil:
		return "nil"
	case KindBoolean:
		if o.boolean {
			return "true"
		}
		return "false"
	case KindInteger:
		return strconv.FormatInt(o.integer, 10)
	case KindFloat:
		return strconv.FormatFloat(o.float, 'g', -1, 64)
	case KindString:
		return strconv.Quote(o.str.String())
	case KindArray:
		return o.array.String()
	case KindDictionary:
		return o.dict.String()
	default:
		return o.kind.String() + "(" + strconv.FormatInt(o.integer, 10) + ")"
	}
}
