//go:build darwin || linux

package ffi

import (
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/nvimgo/nvimgo/types"
)

// LibcAllocator allocates through the C library's malloc/free so payloads
// can cross the boundary: the host frees what we hand over and we free
// what it returns, and both sides hit the same heap.
type LibcAllocator struct {
	malloc func(size uintptr) unsafe.Pointer
	free   func(ptr unsafe.Pointer)
}

var _ types.Allocator = (*LibcAllocator)(nil)

// NewLibcAllocator resolves malloc and free from the process image.
func NewLibcAllocator() (*LibcAllocator, error) {
	if _, err := purego.Dlsym(purego.RTLD_DEFAULT, "malloc"); err != nil {
		return nil, fmt.Errorf("resolve malloc: %w", err)
	}
	a := &LibcAllocator{}
	purego.RegisterLibFunc(&a.malloc, purego.RTLD_DEFAULT, "malloc")
	purego.RegisterLibFunc(&a.free, purego.RTLD_DEFAULT, "free")
	return a, nil
}

func (a *LibcAllocator) Alloc(size int) unsafe.Pointer {
	if size <= 0 {
		return nil
	}
	return a.malloc(uintptr(size))
}

func (a *LibcAllocator) Free(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}
	a.free(ptr)
}
