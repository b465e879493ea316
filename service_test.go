package stemmer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineRegistry(t *testing.T) {
	_, err := GetEngine("registry-test")
	assert.ErrorIs(t, err, ErrEngineNotFound)

	eng, err := GetOrSetEngine("registry-test", &Config{CacheSize: 4})
	require.NoError(t, err)
	assert.Equal(t, "registry-test", eng.Key())

	same, err := GetOrSetEngine("registry-test")
	require.NoError(t, err)
	assert.Same(t, eng, same)
	assert.Contains(t, AvailableEngines(), "registry-test")

	replaced, err := SetEngine("registry-test")
	require.NoError(t, err)
	assert.NotSame(t, eng, replaced)

	require.NoError(t, RemoveEngine("registry-test"))
	assert.ErrorIs(t, RemoveEngine("registry-test"), ErrEngineNotFound)
	assert.NotContains(t, AvailableEngines(), "registry-test")
}
