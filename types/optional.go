package types

// OptionalString is able to represent an absent value as well as a present
// string. It allows us to differentiate between a missing dictionary field
// and an empty string. When decoding, an absent key and a key mapped to the
// nil Object both yield the unset state; only a present string yields the
// set state. If you want to treat unset the same way as the empty string,
// use .String() which maps the two to an empty string.
type OptionalString struct {
	Set bool
	// Value is the string value when Set is true. When Set is false, this
	// field must be ignored.
	Value string
}

func NewOptionalStringUnset() OptionalString {
	return OptionalString{Set: false}
}

func NewOptionalStringSet(value string) OptionalString {
	return OptionalString{Set: true, Value: value}
}

// String converts the OptionalString to a string by mapping unset to an
// empty string. Use this when you no longer need the differentiation.
func (os OptionalString) String() string {
	if !os.Set {
		return ""
	}
	return os.Value
}

// OptionalInt is the integer counterpart of OptionalString.
type OptionalInt struct {
	Set bool
	// Value is the integer value when Set is true. When Set is false, this
	// field must be ignored.
	Value int64
}

func NewOptionalIntUnset() OptionalInt {
	return OptionalInt{Set: false}
}

func NewOptionalIntSet(value int64) OptionalInt {
	return OptionalInt{Set: true, Value: value}
}

// Int64 converts the OptionalInt to an int64 by mapping unset to zero.
func (oi OptionalInt) Int64() int64 {
	if !oi.Set {
		return 0
	}
	return oi.Value
}

// OptionalBool is the boolean counterpart of OptionalString.
type OptionalBool struct {
	Set   bool
	Value bool
}

func NewOptionalBoolUnset() OptionalBool {
	return OptionalBool{Set: false}
}

func NewOptionalBoolSet(value bool) OptionalBool {
	return OptionalBool{Set: true, Value: value}
}

// Bool converts the OptionalBool to a bool by mapping unset to false.
func (ob OptionalBool) Bool() bool {
	return ob.Set && ob.Value
}
