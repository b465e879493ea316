package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/oarkflow/log"
)

// Janitor keeps hot entries in an LRU and moves evicted or idle entries to a
// target store. With targetAsFallback, misses on the LRU are served from the
// target and promoted back.
type Janitor[K comparable, V any] struct {
	source           *LRU[K, V]
	target           Store[K, V]
	cleanupFrequency time.Duration
	stopChan         chan struct{}
	stopOnce         sync.Once
	targetAsFallback bool
}

func NewJanitor[K comparable, V any](source *LRU[K, V], target Store[K, V], cleanupFrequency time.Duration, targetAsFallback bool) *Janitor[K, V] {
	j := &Janitor[K, V]{
		source:           source,
		target:           target,
		cleanupFrequency: cleanupFrequency,
		stopChan:         make(chan struct{}),
		targetAsFallback: targetAsFallback,
	}
	if source.EvictionHandler() == nil {
		source.SetEvictionHandler(j.HandleEviction)
	}
	return j
}

func (j *Janitor[K, V]) HandleEviction(key K, value V) {
	if j.target == nil {
		return
	}
	if err := j.target.Set(key, value); err != nil {
		log.Error().Err(err).Str("key", fmt.Sprint(key)).Msg("cache: unable to move evicted entry")
	}
}

func (j *Janitor[K, V]) Get(key K) (V, bool) {
	if val, found := j.source.Get(key); found {
		return val, true
	}
	if j.targetAsFallback && j.target != nil {
		if val, found := j.target.Get(key); found {
			_ = j.source.Set(key, val)
			return val, true
		}
	}
	var zero V
	return zero, false
}

func (j *Janitor[K, V]) Set(key K, value V) error {
	return j.source.Set(key, value)
}

func (j *Janitor[K, V]) Len() int {
	return j.source.Len()
}

// Clear empties the LRU without touching the target.
func (j *Janitor[K, V]) Clear() {
	j.source.Clear()
}

// CleanUp runs Offload every cleanupFrequency until Stop is called.
func (j *Janitor[K, V]) CleanUp() {
	if j.cleanupFrequency <= 0 {
		return
	}
	ticker := time.NewTicker(j.cleanupFrequency)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			j.Offload()
		case <-j.stopChan:
			return
		}
	}
}

// Offload moves every LRU entry to the target, or drops them when there is
// no target.
func (j *Janitor[K, V]) Offload() int {
	items := j.source.Drain()
	if j.target != nil {
		for key, value := range items {
			if err := j.target.Set(key, value); err != nil {
				log.Error().Err(err).Str("key", fmt.Sprint(key)).Msg("cache: unable to offload entry")
			}
		}
	}
	if len(items) > 0 {
		log.Info().Int("entries", len(items)).Msg("cache: offloaded")
	}
	return len(items)
}

func (j *Janitor[K, V]) Stop() {
	j.stopOnce.Do(func() {
		close(j.stopChan)
	})
}
