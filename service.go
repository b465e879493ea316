package stemmer

import (
	"errors"
	"slices"

	"github.com/oarkflow/log"
	"github.com/oarkflow/xsync"
)

var ErrEngineNotFound = errors.New("engine not found")

var engines xsync.IMap[string, *Engine]

func init() {
	engines = xsync.NewMap[string, *Engine]()
}

// GetEngine returns the engine registered under key.
func GetEngine(key string) (*Engine, error) {
	eng, ok := engines.Get(key)
	if !ok {
		return nil, ErrEngineNotFound
	}
	return eng, nil
}

// GetOrSetEngine returns the engine registered under key, creating it from
// cfg when missing.
func GetOrSetEngine(key string, cfg ...*Config) (*Engine, error) {
	if eng, ok := engines.Get(key); ok {
		return eng, nil
	}
	return SetEngine(key, cfg...)
}

// SetEngine creates an engine and registers it under key, closing the one it
// replaces.
func SetEngine(key string, cfg ...*Config) (*Engine, error) {
	c := MergeConfigs(append(cfg, &Config{Key: key})...)
	eng, err := New(c)
	if err != nil {
		return nil, err
	}
	if old, ok := engines.Get(key); ok {
		if err := old.Close(); err != nil {
			log.Error().Err(err).Str("key", key).Msg("Unable to close replaced engine")
		}
	}
	engines.Set(key, eng)
	log.Info().Str("key", key).Msg("Engine registered")
	return eng, nil
}

func RemoveEngine(key string) error {
	eng, ok := engines.Get(key)
	if !ok {
		return ErrEngineNotFound
	}
	engines.Del(key)
	return eng.Close()
}

// AvailableEngines lists registered keys in sorted order.
func AvailableEngines() []string {
	var keys []string
	engines.ForEach(func(key string, _ *Engine) bool {
		keys = append(keys, key)
		return true
	})
	slices.Sort(keys)
	return keys
}
