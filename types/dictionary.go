package types

import "strings"

// KeyValue is one entry of a Dictionary. Both the key and the value are
// owned by the containing Dictionary.
type KeyValue struct {
	Key   String
	Value Object
}

// Dictionary is an insertion-ordered sequence of key/value pairs matching
// the host's layout: not a hash map, lookup is a linear scan. Host
// dictionaries are small, so the scan is cheaper than hashing would be, and
// iteration order is exactly insertion order. The structure does not force
// keys to be unique; Set maintains uniqueness, Push does not.
type Dictionary struct {
	pairs []KeyValue
}

// NewDictionary returns an empty Dictionary.
func NewDictionary() Dictionary { return Dictionary{} }

func (d Dictionary) Len() int { return len(d.pairs) }

// Pairs exposes the underlying entries. They remain owned by the
// Dictionary; callers must not free them.
func (d Dictionary) Pairs() []KeyValue { return d.pairs }

// Get scans for key and returns a pointer to its value. The value stays
// owned by the Dictionary.
func (d Dictionary) Get(key string) (*Object, bool) {
	for i := range d.pairs {
		if d.pairs[i].Key.String() == key {
			return &d.pairs[i].Value, true
		}
	}
	return nil, false
}

func (d Dictionary) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Set updates an existing key's value, freeing the old one, or appends a
// new pair. Takes ownership of value.
func (d *Dictionary) Set(key string, value Object) {
	for i := range d.pairs {
		if d.pairs[i].Key.String() == key {
			d.pairs[i].Value.Free()
			d.pairs[i].Value = value
			return
		}
	}
	d.pairs = append(d.pairs, KeyValue{Key: NewString(key), Value: value})
}

// Push appends a pair without scanning for an existing key, taking
// ownership of both.
func (d *Dictionary) Push(key String, value Object) {
	d.pairs = append(d.pairs, KeyValue{Key: key, Value: value})
}

// take moves the value for key out of the Dictionary, removing the pair
// and freeing its key. Used by decoding; see DictDecoder.
func (d *Dictionary) take(key string) (Object, bool) {
	for i := range d.pairs {
		if d.pairs[i].Key.String() == key {
			v := d.pairs[i].Value
			d.pairs[i].Key.Free()
			d.pairs = append(d.pairs[:i], d.pairs[i+1:]...)
			return v, true
		}
	}
	return Object{}, false
}

// Equal performs a deep pairwise comparison, order included.
func (d Dictionary) Equal(other Dictionary) bool {
	if len(d.pairs) != len(other.pairs) {
		return false
	}
	for i := range d.pairs {
		if !d.pairs[i].Key.Equal(other.pairs[i].Key) {
			return false
		}
		if !d.pairs[i].Value.Equal(other.pairs[i].Value) {
			return false
		}
	}
	return true
}

// Clone deep-copies every pair.
func (d Dictionary) Clone() Dictionary {
	pairs := make([]KeyValue, len(d.pairs))
	for i := range d.pairs {
		pairs[i] = KeyValue{
			Key:   d.pairs[i].Key.Clone(),
			Value: d.pairs[i].Value.Clone(),
		}
	}
	return Dictionary{pairs: pairs}
}

// Free recursively releases every key and value and empties the Dictionary.
func (d *Dictionary) Free() {
	for i := range d.pairs {
		d.pairs[i].Key.Free()
		d.pairs[i].Value.Free()
	}
	d.pairs = nil
}

// NonOwning borrows d for a boundary call without giving up ownership.
func (d Dictionary) NonOwning() NonOwning[Dictionary] {
	return NonOwning[Dictionary]{inner: d}
}

// Object moves d into a Dictionary-kinded Object.
func (d Dictionary) Object() Object {
	return Object{kind: KindDictionary, dict: d}
}

func (d Dictionary) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i := range d.pairs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(d.pairs[i].Key.String())
		b.WriteString(": ")
		b.WriteString(d.pairs[i].Value.String())
	}
	b.WriteByte('}')
	return b.String()
}
