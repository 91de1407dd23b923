// Package testdb provides the ordered name/value store backing the mock
// host's editor state: global and buffer-local variables, options and
// highlight groups. Keys iterate in lexical order, which keeps listings
// deterministic across test runs.
package testdb

import (
	"errors"
	"sync"

	"github.com/google/btree"

	"github.com/nvimgo/nvimgo/types"
)

// ErrKeyEmpty is returned when attempting to use an empty key.
var ErrKeyEmpty = errors.New("key cannot be empty")

const btreeDegree = 8

type item struct {
	key   string
	value types.Object
}

func byKey(a, b item) bool { return a.key < b.key }

// Store is a mutex-guarded ordered map from names to owned Objects. The
// Store owns every stored Object: Set frees a replaced value, Delete frees
// the removed one, and Clear frees everything.
type Store struct {
	mtx  sync.RWMutex
	tree *btree.BTreeG[item]
}

func NewStore() *Store {
	return &Store{tree: btree.NewG(btreeDegree, byKey)}
}

// Get returns a deep copy of the value stored under key, so the caller may
// free it independently of the store.
func (s *Store) Get(key string) (types.Object, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	it, ok := s.tree.Get(item{key: key})
	if !ok {
		return types.Nil(), false
	}
	return it.value.Clone(), true
}

// Set stores value under key, taking ownership of it. A previous value
// under the same key is freed.
func (s *Store) Set(key string, value types.Object) error {
	if key == "" {
		value.Free()
		return ErrKeyEmpty
	}
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if old, ok := s.tree.ReplaceOrInsert(item{key: key, value: value}); ok {
		old.value.Free()
	}
	return nil
}

// Delete removes and frees the value stored under key. Reports whether the
// key was present.
func (s *Store) Delete(key string) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	old, ok := s.tree.Delete(item{key: key})
	if ok {
		old.value.Free()
	}
	return ok
}

func (s *Store) Has(key string) bool {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	_, ok := s.tree.Get(item{key: key})
	return ok
}

func (s *Store) Len() int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.tree.Len()
}

// Keys returns every key in lexical order.
func (s *Store) Keys() []string {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	out := make([]string, 0, s.tree.Len())
	s.tree.Ascend(func(it item) bool {
		out = append(out, it.key)
		return true
	})
	return out
}

// Clear frees every stored value and empties the store.
func (s *Store) Clear() {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.tree.Ascend(func(it item) bool {
		it.value.Free()
		return true
	})
	s.tree.Clear(false)
}
