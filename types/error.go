package types

// ErrorType is the discriminant of the host's error record. The values
// match the host's enum: None is -1, so the Go zero value is NOT the
// no-error state. Always construct records with NewError.
type ErrorType int32

const (
	ErrorTypeNone       ErrorType = iota - 1 // -1
	ErrorTypeException                       // 0
	ErrorTypeValidation                      // 1
)

func (t ErrorType) String() string {
	switch t {
	case ErrorTypeNone:
		return "none"
	case ErrorTypeException:
		return "exception"
	case ErrorTypeValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error mirrors the host's out-parameter error record: a type discriminant
// plus an optional owned message buffer. One record is zeroed before every
// fallible boundary call, passed by pointer, and inspected afterwards.
//
// The message buffer is owned by the record until Take transfers it into a
// typed error. The host side historically leaked this buffer when a record
// was reused; here Take always consumes it and resets the record, so the
// buffer is released exactly once whichever side wrote it.
type Error struct {
	typ ErrorType
	msg String
}

// NewError returns a record in the no-error state.
func NewError() Error {
	return Error{typ: ErrorTypeNone}
}

// IsErr reports whether the record indicates a failure.
func (e *Error) IsErr() bool {
	return e.typ != ErrorTypeNone
}

// Type returns the record's discriminant.
func (e *Error) Type() ErrorType { return e.typ }

// SetException puts the record into the exception state with the given
// message, replacing any previous message. Used by hosts to report
// failures through the record.
func (e *Error) SetException(msg string) { e.set(ErrorTypeException, msg) }

// SetValidation puts the record into the validation state with the given
// message.
func (e *Error) SetValidation(msg string) { e.set(ErrorTypeValidation, msg) }

func (e *Error) set(t ErrorType, msg string) {
	e.msg.Free()
	e.typ = t
	e.msg = NewString(msg)
}

// Take converts the record into a typed error and resets it to the
// no-error state. Returns nil when the record is clean. The message buffer
// is consumed: after Take the record owns nothing and can be reused.
func (e *Error) Take() error {
	if e.typ == ErrorTypeNone {
		return nil
	}
	out := &BoundaryError{Type: e.typ, Msg: e.msg.String()}
	e.msg.Free()
	*e = Error{typ: ErrorTypeNone}
	return out
}

// Free releases the record's message buffer, if any, and resets it.
func (e *Error) Free() {
	e.msg.Free()
	*e = Error{typ: ErrorTypeNone}
}
