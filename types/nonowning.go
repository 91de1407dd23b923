package types

// NonOwning wraps an owned value so it can be handed across the boundary
// "by value" without transferring ownership. The receiving side sees the
// wrapped value bit-for-bit, but nothing is ever freed through the wrapper:
// the original owner keeps responsibility for the one eventual Free.
//
// Precondition, not enforced at runtime: the owner must outlive every use
// of the wrapper. If the owner frees the value while the other side still
// reads through a borrow taken from it, the other side observes a dangling
// buffer. Wrappers are plain values and may be copied freely.
type NonOwning[T any] struct {
	inner T
}

// Borrow wraps value without taking ownership of it.
func Borrow[T any](value T) NonOwning[T] {
	return NonOwning[T]{inner: value}
}

// Value returns the wrapped value. The result aliases the owner's
// allocations; it must not be freed and must not be used after the owner
// frees it.
func (n NonOwning[T]) Value() T {
	return n.inner
}
