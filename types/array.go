package types

import "strings"

// Array is an insertion-ordered sequence of Objects. It exclusively owns
// its elements: Free releases every element recursively.
type Array struct {
	items []Object
}

// NewArray takes ownership of the given Objects.
func NewArray(items ...Object) Array {
	return Array{items: items}
}

// ArrayFromStrings allocates a String element for each entry of ss.
func ArrayFromStrings(ss []string) Array {
	items := make([]Object, 0, len(ss))
	for _, s := range ss {
		items = append(items, Str(s))
	}
	return Array{items: items}
}

func (a Array) Len() int { return len(a.items) }

// At returns a pointer to the i-th element. The element stays owned by the
// Array.
func (a Array) At(i int) *Object { return &a.items[i] }

// Items exposes the underlying slice. The elements remain owned by the
// Array; callers must not free them.
func (a Array) Items() []Object { return a.items }

// Push appends o, taking ownership of it.
func (a *Array) Push(o Object) {
	a.items = append(a.items, o)
}

// Strings converts an array of String elements into a Go slice, preserving
// order. Fails with a ConversionError on the first non-string element. The
// Array is not consumed; the returned strings are copies.
func (a Array) Strings() ([]string, error) {
	out := make([]string, 0, len(a.items))
	for i := range a.items {
		el := &a.items[i]
		if el.kind != KindString {
			return nil, &ConversionError{Expected: KindString, Actual: el.kind}
		}
		out = append(out, el.str.String())
	}
	return out, nil
}

// Equal performs a deep element-wise comparison.
func (a Array) Equal(other Array) bool {
	if len(a.items) != len(other.items) {
		return false
	}
	for i := range a.items {
		if !a.items[i].Equal(other.items[i]) {
			return false
		}
	}
	return true
}

// Clone deep-copies every element.
func (a Array) Clone() Array {
	items := make([]Object, len(a.items))
	for i := range a.items {
		items[i] = a.items[i].Clone()
	}
	return Array{items: items}
}

// Free recursively releases every element and empties the Array.
func (a *Array) Free() {
	for i := range a.items {
		a.items[i].Free()
	}
	a.items = nil
}

// NonOwning borrows a for a boundary call without giving up ownership.
func (a Array) NonOwning() NonOwning[Array] {
	return NonOwning[Array]{inner: a}
}

// Object moves a into an Array-kinded Object.
func (a Array) Object() Object {
	return Object{kind: KindArray, array: a}
}

func (a Array) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := range a.items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.items[i].String())
	}
	b.WriteByte(']')
	return b.String()
}
