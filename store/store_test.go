package store_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routekit/routekit/store"
)

func TestStoreSetGet(t *testing.T) {
	t.Parallel()

	s := store.New(0)
	s.Set("key1", []byte("value1"))
	s.Set("key2", []byte("value2"))

	v, ok := s.Get("key1")
	require.True(t, ok)
	assert.Equal(t, []byte("value1"), v)

	_, ok = s.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, 2, s.Len())
}

func TestStoreOverwrite(t *testing.T) {
	t.Parallel()

	s := store.New(0)
	s.Set("key", []byte("old"))
	s.Set("key", []byte("new"))

	v, ok := s.Get("key")
	require.True(t, ok)
	assert.Equal(t, []byte("new"), v)
	assert.Equal(t, 1, s.Len())
}

func TestStoreDelete(t *testing.T) {
	t.Parallel()

	s := store.New(0)
	s.Set("key", []byte("value"))

	assert.True(t, s.Delete("key"))
	assert.False(t, s.Delete("key"))

	_, ok := s.Get("key")
	assert.False(t, ok)
}

func TestStoreLRUEviction(t *testing.T) {
	t.Parallel()

	s := store.New(2)
	s.Set("a", []byte("1"))
	s.Set("b", []byte("2"))

	// Touch "a" so "b" becomes the eviction candidate.
	_, ok := s.Get("a")
	require.True(t, ok)

	s.Set("c", []byte("3"))

	_, ok = s.Get("b")
	assert.False(t, ok, "least recently used entry should be evicted")
	_, ok = s.Get("a")
	assert.True(t, ok)
	_, ok = s.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, s.Len())
}

func TestStoreEvictionCallback(t *testing.T) {
	t.Parallel()

	var evictedKeys []string
	s := store.New(1, store.WithEvictionCallback(func(key string, value []byte) {
		evictedKeys = append(evictedKeys, key)
	}))

	s.Set("a", []byte("1"))
	s.Set("b", []byte("2"))
	s.Set("c", []byte("3"))

	assert.Equal(t, []string{"a", "b"}, evictedKeys)
}

func TestStoreConcurrentAccess(t *testing.T) {
	t.Parallel()

	s := store.New(128)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("key-%d-%d", i, j%10)
				s.Set(key, []byte("v"))
				s.Get(key)
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, s.Len(), 128)
}
