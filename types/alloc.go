package types

import (
	"fmt"
	"sync"
	"unsafe"
)

// Allocator is the memory source backing every heap-backed value in this
// package. It mirrors the host's xmalloc/xfree pair: Free takes only the
// pointer returned by Alloc.
//
// The default allocator hands out Go memory and is suitable for tests and
// for the remote host. When running embedded in the host process it must be
// replaced with the host's own allocator (see internal/ffi) so that buffers
// we allocate can be freed by the other side and vice versa.
type Allocator interface {
	// Alloc returns a pointer to size bytes of zeroed memory. Returns nil
	// when size is 0.
	Alloc(size int) unsafe.Pointer

	// Free releases a pointer previously returned by Alloc. Freeing nil is
	// a no-op.
	Free(ptr unsafe.Pointer)
}

var (
	allocMu   sync.Mutex
	allocator Allocator = NewGoAllocator()
)

// SetAllocator installs a and returns the previously installed allocator.
// Callers swapping in a test double should restore the previous one when
// done.
func SetAllocator(a Allocator) Allocator {
	allocMu.Lock()
	defer allocMu.Unlock()
	prev := allocator
	allocator = a
	return prev
}

// CurrentAllocator returns the installed allocator.
func CurrentAllocator() Allocator {
	allocMu.Lock()
	defer allocMu.Unlock()
	return allocator
}

func alloc(size int) unsafe.Pointer { return CurrentAllocator().Alloc(size) }
func free(ptr unsafe.Pointer)       { CurrentAllocator().Free(ptr) }

// GoAllocator is the default Allocator. It allocates Go byte slices and
// keeps a reference to each live one in a registry so the garbage collector
// never reclaims a buffer that is still owned by a String or Object.
//
// Freeing a pointer the registry doesn't know about panics: it is either a
// double free or a pointer from a different allocator, and both are bugs on
// the owning side.
type GoAllocator struct {
	mu   sync.Mutex
	live map[unsafe.Pointer][]byte
}

var _ Allocator = (*GoAllocator)(nil)

func NewGoAllocator() *GoAllocator {
	return &GoAllocator{live: make(map[unsafe.Pointer][]byte)}
}

func (g *GoAllocator) Alloc(size int) unsafe.Pointer {
	if size == 0 {
		return nil
	}
	buf := make([]byte, size)
	ptr := unsafe.Pointer(&buf[0])
	g.mu.Lock()
	g.live[ptr] = buf
	g.mu.Unlock()
	return ptr
}

func (g *GoAllocator) Free(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.live[ptr]; !ok {
		panic(fmt.Sprintf("types: free of unknown pointer %p (double free?)", ptr))
	}
	delete(g.live, ptr)
}

// LiveAllocations returns the number of outstanding allocations.
func (g *GoAllocator) LiveAllocations() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.live)
}

// CountingAllocator wraps another Allocator and counts every Alloc and Free
// passing through it. It stands in for the external allocator in ownership
// tests: after a value and all its children have been released exactly once,
// Live() is zero and DoubleFrees() reports any Free of a pointer that was
// not live.
//
// This cannot be defined in a test file because tests of multiple packages
// rely on it.
type CountingAllocator struct {
	inner Allocator

	mu         sync.Mutex
	live       map[unsafe.Pointer]struct{}
	allocs     int
	frees      int
	doubleFree int
}

var _ Allocator = (*CountingAllocator)(nil)

func NewCountingAllocator(inner Allocator) *CountingAllocator {
	if inner == nil {
		inner = NewGoAllocator()
	}
	return &CountingAllocator{inner: inner, live: make(map[unsafe.Pointer]struct{})}
}

func (c *CountingAllocator) Alloc(size int) unsafe.Pointer {
	ptr := c.inner.Alloc(size)
	if ptr == nil {
		return nil
	}
	c.mu.Lock()
	c.allocs++
	c.live[ptr] = struct{}{}
	c.mu.Unlock()
	return ptr
}

func (c *CountingAllocator) Free(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}
	c.mu.Lock()
	if _, ok := c.live[ptr]; !ok {
		c.doubleFree++
		c.mu.Unlock()
		return
	}
	delete(c.live, ptr)
	c.frees++
	c.mu.Unlock()
	c.inner.Free(ptr)
}

// Allocs returns the total number of allocations performed.
func (c *CountingAllocator) Allocs() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.allocs
}

// Frees returns the total number of successful frees performed.
func (c *CountingAllocator) Frees() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frees
}

// Live returns the number of outstanding allocations.
func (c *CountingAllocator) Live() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.live)
}

// DoubleFrees returns the number of frees of pointers that were not live.
func (c *CountingAllocator) DoubleFrees() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.doubleFree
}
