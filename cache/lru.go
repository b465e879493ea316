package cache

import (
	"container/list"
	"errors"
	"sync"

	"github.com/oarkflow/xsync"
)

var ErrKeyNotFound = errors.New("key not found")

// LRU is a fixed capacity cache that evicts the least recently used entry.
type LRU[K comparable, V any] struct {
	capacity   int
	data       xsync.IMap[K, *list.Element]
	list       *list.List
	m          sync.Mutex
	onEviction func(K, V)
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRU[K, V]{
		capacity: capacity,
		data:     xsync.NewMap[K, *list.Element](),
		list:     list.New(),
	}
}

// Get marks the entry as recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.m.Lock()
	defer c.m.Unlock()
	if elem, found := c.data.Get(key); found {
		c.list.MoveToFront(elem)
		return elem.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

func (c *LRU[K, V]) SetEvictionHandler(onEviction func(K, V)) {
	c.m.Lock()
	defer c.m.Unlock()
	c.onEviction = onEviction
}

func (c *LRU[K, V]) EvictionHandler() func(K, V) {
	c.m.Lock()
	defer c.m.Unlock()
	return c.onEviction
}

func (c *LRU[K, V]) Set(key K, value V) error {
	c.m.Lock()
	if elem, found := c.data.Get(key); found {
		c.list.MoveToFront(elem)
		elem.Value.(*entry[K, V]).value = value
		c.m.Unlock()
		return nil
	}
	var evicted *entry[K, V]
	if c.list.Len() >= c.capacity {
		if oldest := c.list.Back(); oldest != nil {
			c.list.Remove(oldest)
			evicted = oldest.Value.(*entry[K, V])
			c.data.Del(evicted.key)
		}
	}
	c.data.Set(key, c.list.PushFront(&entry[K, V]{key, value}))
	onEviction := c.onEviction
	c.m.Unlock()

	if evicted != nil && onEviction != nil {
		onEviction(evicted.key, evicted.value)
	}
	return nil
}

func (c *LRU[K, V]) Del(key K) error {
	c.m.Lock()
	defer c.m.Unlock()
	elem, found := c.data.Get(key)
	if !found {
		return ErrKeyNotFound
	}
	c.list.Remove(elem)
	c.data.Del(key)
	return nil
}

func (c *LRU[K, V]) Len() int {
	c.m.Lock()
	defer c.m.Unlock()
	return c.list.Len()
}

// Drain empties the cache and returns what it held.
func (c *LRU[K, V]) Drain() map[K]V {
	c.m.Lock()
	defer c.m.Unlock()
	items := make(map[K]V, c.list.Len())
	for elem := c.list.Front(); elem != nil; elem = elem.Next() {
		e := elem.Value.(*entry[K, V])
		items[e.key] = e.value
		c.data.Del(e.key)
	}
	c.list.Init()
	return items
}

func (c *LRU[K, V]) Clear() {
	c.Drain()
}
