package types

import (
	"fmt"
	"math"
	"strconv"
)

// ObjectMarshaler is implemented by typed values that know how to represent
// themselves as an Object. The conversion may fail (e.g. a narrowing
// overflow) and must never partially mutate the receiver.
type ObjectMarshaler interface {
	MarshalObject() (Object, error)
}

// ObjectUnmarshaler is implemented by typed values that can reconstruct
// themselves from an Object. The Object is consumed: heap-backed payloads
// move into the receiver. Clone the Object first if it is still needed.
type ObjectUnmarshaler interface {
	UnmarshalObject(o *Object) error
}

// ToObject converts a supported typed value into an Object. Heap-backed
// results own fresh allocations; owned inputs (Object, String, Array,
// Dictionary) are deep-copied and stay with the caller, who still frees
// them.
//
// A uint64 (or uint on 64-bit platforms) above the signed integer range
// fails with an OutOfRangeError.
func ToObject(v any) (Object, error) {
	switch x := v.(type) {
	case nil:
		return Nil(), nil
	case Object:
		return x.Clone(), nil
	case bool:
		return Boolean(x), nil
	case int:
		return Integer(int64(x)), nil
	case int8:
		return Integer(int64(x)), nil
	case int16:
		return Integer(int64(x)), nil
	case int32:
		return Integer(int64(x)), nil
	case int64:
		return Integer(x), nil
	case uint8:
		return Integer(int64(x)), nil
	case uint16:
		return Integer(int64(x)), nil
	case uint32:
		return Integer(int64(x)), nil
	case uint:
		if uint64(x) > math.MaxInt64 {
			return Nil(), &OutOfRangeError{TypeName: "uint", Value: strconv.FormatUint(uint64(x), 10)}
		}
		return Integer(int64(x)), nil
	case uint64:
		if x > math.MaxInt64 {
			return Nil(), &OutOfRangeError{TypeName: "uint64", Value: strconv.FormatUint(x, 10)}
		}
		return Integer(int64(x)), nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case string:
		return Str(x), nil
	case []byte:
		return StringFromBytes(x).Object(), nil
	case String:
		return x.Clone().Object(), nil
	case Array:
		return x.Clone().Object(), nil
	case Dictionary:
		return x.Clone().Object(), nil
	case BufHandle:
		return BufferObject(x), nil
	case WinHandle:
		return WindowObject(x), nil
	case TabHandle:
		return TabPageObject(x), nil
	case LuaRef:
		return LuaRefObject(x), nil
	case []string:
		return ArrayFromStrings(x).Object(), nil
	case []Object:
		return NewArray(x...).Object(), nil
	case OptionalString:
		if !x.Set {
			return Nil(), nil
		}
		return Str(x.Value), nil
	case OptionalInt:
		if !x.Set {
			return Nil(), nil
		}
		return Integer(x.Value), nil
	case OptionalBool:
		if !x.Set {
			return Nil(), nil
		}
		return Boolean(x.Value), nil
	case ObjectMarshaler:
		return x.MarshalObject()
	default:
		return Nil(), &UnsupportedTypeError{TypeName: fmt.Sprintf("%T", v)}
	}
}

// DictDecoder decodes a struct-shaped Dictionary field by field. Required
// accessors fail with a MissingFieldError when the key is absent and with a
// ConversionError when it is present with the wrong kind; optional
// accessors map both an absent key and a Nil value to the unset state.
//
// Decoding moves values out of the Dictionary; after decoding, Free on the
// Dictionary releases only whatever was not consumed.
type DictDecoder struct {
	dict *Dictionary
}

func NewDictDecoder(d *Dictionary) *DictDecoder {
	return &DictDecoder{dict: d}
}

// Take moves the raw Object for key out of the dictionary.
func (dd *DictDecoder) Take(key string) (Object, error) {
	o, ok := dd.dict.take(key)
	if !ok {
		return Object{}, &MissingFieldError{Field: key}
	}
	return o, nil
}

func (dd *DictDecoder) Int(key string) (int64, error) {
	o, err := dd.Take(key)
	if err != nil {
		return 0, err
	}
	defer o.Free()
	return o.AsInteger()
}

func (dd *DictDecoder) Bool(key string) (bool, error) {
	o, err := dd.Take(key)
	if err != nil {
		return false, err
	}
	defer o.Free()
	return o.AsBoolean()
}

func (dd *DictDecoder) Float(key string) (float64, error) {
	o, err := dd.Take(key)
	if err != nil {
		return 0, err
	}
	defer o.Free()
	return o.AsFloat()
}

func (dd *DictDecoder) String(key string) (string, error) {
	o, err := dd.Take(key)
	if err != nil {
		return "", err
	}
	s, err := o.TakeString()
	if err != nil {
		o.Free()
		return "", err
	}
	defer s.Free()
	return s.String(), nil
}

func (dd *DictDecoder) OptionalString(key string) (OptionalString, error) {
	o, ok := dd.dict.take(key)
	if !ok || o.IsNil() {
		return NewOptionalStringUnset(), nil
	}
	s, err := o.TakeString()
	if err != nil {
		o.Free()
		return NewOptionalStringUnset(), err
	}
	defer s.Free()
	return NewOptionalStringSet(s.String()), nil
}

func (dd *DictDecoder) OptionalInt(key string) (OptionalInt, error) {
	o, ok := dd.dict.take(key)
	if !ok || o.IsNil() {
		return NewOptionalIntUnset(), nil
	}
	defer o.Free()
	i, err := o.AsInteger()
	if err != nil {
		return NewOptionalIntUnset(), err
	}
	return NewOptionalIntSet(i), nil
}

func (dd *DictDecoder) OptionalBool(key string) (OptionalBool, error) {
	o, ok := dd.dict.take(key)
	if !ok || o.IsNil() {
		return NewOptionalBoolUnset(), nil
	}
	defer o.Free()
	b, err := o.AsBoolean()
	if err != nil {
		return NewOptionalBoolUnset(), err
	}
	return NewOptionalBoolSet(b), nil
}
