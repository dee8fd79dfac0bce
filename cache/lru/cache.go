// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lru

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/ava-labs/commitment-signer/cache"
)

var _ cache.Cacher[struct{}, struct{}] = (*Cache[struct{}, struct{}])(nil)

// Cache is a key value store with bounded size. If the size is attempted to be
// exceeded, then an element is removed from the cache before the insertion is
// done, based on evicting the least recently used value.
//
// Cache is safe for concurrent use.
type Cache[K comparable, V any] struct {
	elements *lru.Cache
}

// NewCache creates a new LRU cache with the given size. Sizes smaller than 1
// are treated as 1.
func NewCache[K comparable, V any](size int) *Cache[K, V] {
	elements, err := lru.New(max(size, 1))
	if err != nil {
		// lru.New only errors on a non-positive size.
		panic(err)
	}
	return &Cache[K, V]{elements: elements}
}

func (c *Cache[K, V]) Put(key K, value V) {
	c.elements.Add(key, value)
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	val, ok := c.elements.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	return val.(V), true
}

func (c *Cache[K, _]) Evict(key K) {
	c.elements.Remove(key)
}

func (c *Cache[_, _]) Flush() {
	c.elements.Purge()
}

func (c *Cache[_, _]) Len() int {
	return c.elements.Len()
}
