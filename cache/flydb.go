package cache

import (
	"fmt"

	"github.com/oarkflow/flydb"
	"github.com/oarkflow/msgpack"

	"github.com/oarkflow/stemmer/lib"
)

// FlyDB is a persistent Store. Values are msgpack encoded and optionally
// gzip compressed.
type FlyDB[K comparable, V any] struct {
	client   *flydb.DB[[]byte, []byte]
	compress bool
}

func NewFlyDB[K comparable, V any](path string, compress bool) (*FlyDB[K, V], error) {
	client, err := flydb.Open[[]byte, []byte](path, nil)
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", path, err)
	}
	return &FlyDB[K, V]{client: client, compress: compress}, nil
}

func (s *FlyDB[K, V]) key(key K) []byte {
	return []byte(fmt.Sprintf("%v", key))
}

func (s *FlyDB[K, V]) Set(key K, value V) error {
	data, err := msgpack.Marshal(value)
	if err != nil {
		return err
	}
	if s.compress {
		data, err = lib.Compress(data)
		if err != nil {
			return err
		}
	}
	return s.client.Put(s.key(key), data)
}

func (s *FlyDB[K, V]) Get(key K) (V, bool) {
	data, err := s.client.Get(s.key(key))
	if err != nil || data == nil {
		return *new(V), false
	}
	return s.decode(data)
}

func (s *FlyDB[K, V]) decode(data []byte) (V, bool) {
	var value V
	var err error
	if s.compress {
		data, err = lib.Decompress(data)
		if err != nil {
			return value, false
		}
	}
	if err = msgpack.Unmarshal(data, &value); err != nil {
		return *new(V), false
	}
	return value, true
}

func (s *FlyDB[K, V]) Del(key K) error {
	return s.client.Delete(s.key(key))
}

func (s *FlyDB[K, V]) Len() uint32 {
	return s.client.Count()
}

// Sample returns up to size stored entries keyed by their encoded key.
func (s *FlyDB[K, V]) Sample(size int) map[string]V {
	values := make(map[string]V)
	it := s.client.Items()
	for i := 0; i < size; i++ {
		key, val, err := it.Next()
		if err != nil {
			break
		}
		if value, ok := s.decode(val); ok {
			values[string(key)] = value
		}
	}
	return values
}

func (s *FlyDB[K, V]) Close() error {
	return s.client.Close()
}
