package cache

// Store is a cache tier. LRU and FlyDB both implement it.
type Store[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V) error
	Del(key K) error
}
