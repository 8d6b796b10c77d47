// Package store provides a concurrency-safe key/value store with LRU
// eviction, intended as a shared application resource reachable from
// request handlers. It owns its own locking discipline; the dispatch
// engine makes no guarantees on its behalf.
package store

import (
	"container/list"
	"sync"
)

// Store is a bounded key/value store. Reads and writes from concurrent
// dispatches are safe; the least recently used entry is evicted when the
// capacity is exceeded.
type Store struct {
	mu        sync.Mutex
	capacity  int
	ll        *list.List
	items     map[string]*list.Element
	onEvicted func(key string, value []byte)
}

type entry struct {
	key   string
	value []byte
}

// Option configures a Store.
type Option func(*Store)

// WithEvictionCallback registers a callback invoked for each evicted entry.
// The callback runs while the store lock is held and must not call back
// into the store.
func WithEvictionCallback(fn func(key string, value []byte)) Option {
	return func(s *Store) {
		s.onEvicted = fn
	}
}

// New creates a store holding at most capacity entries. A capacity of zero
// means unbounded.
func New(capacity int, opts ...Option) *Store {
	s := &Store{
		capacity: capacity,
		ll:       list.New(),
		items:    make(map[string]*list.Element),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Set adds or replaces the value for key, marking it most recently used.
func (s *Store) Set(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ele, ok := s.items[key]; ok {
		s.ll.MoveToFront(ele)
		ele.Value.(*entry).value = value
		return
	}

	s.items[key] = s.ll.PushFront(&entry{key: key, value: value})
	for s.capacity != 0 && s.ll.Len() > s.capacity {
		s.removeOldest()
	}
}

// Get returns the value for key, marking it most recently used.
func (s *Store) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ele, ok := s.items[key]
	if !ok {
		return nil, false
	}
	s.ll.MoveToFront(ele)
	return ele.Value.(*entry).value, true
}

// Delete removes key from the store. It reports whether the key existed.
func (s *Store) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ele, ok := s.items[key]
	if !ok {
		return false
	}
	s.remove(ele)
	return true
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ll.Len()
}

func (s *Store) removeOldest() {
	if ele := s.ll.Back(); ele != nil {
		s.remove(ele)
	}
}

func (s *Store) remove(ele *list.Element) {
	s.ll.Remove(ele)
	kv := ele.Value.(*entry)
	delete(s.items, kv.key)
	if s.onEvicted != nil {
		s.onEvicted(kv.key, kv.value)
	}
}
