package stemmer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/stemmer/tokenizer"
)

func TestMergeConfigs(t *testing.T) {
	disabled := false
	merged := MergeConfigs(
		&Config{Key: "a", CacheSize: 10, Keywords: []string{"ankara"}},
		nil,
		&Config{Key: "b", EnableStemming: &disabled, Keywords: []string{"ankara", "izmir"}, Workers: 2},
	)
	assert.Equal(t, "b", merged.Key)
	assert.Equal(t, 10, merged.CacheSize)
	assert.Equal(t, 2, merged.Workers)
	assert.Equal(t, []string{"ankara", "izmir"}, merged.Keywords)
	require.NotNil(t, merged.EnableStemming)
	assert.False(t, *merged.EnableStemming)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"key":"tr","default_language":"tr","cache_size":128,"keywords":["istanbul"],"enable_stop_words":true}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "tr", cfg.Key)
	assert.Equal(t, tokenizer.TURKISH, cfg.DefaultLanguage)
	assert.Equal(t, 128, cfg.CacheSize)
	assert.Equal(t, []string{"istanbul"}, cfg.Keywords)
	assert.True(t, cfg.EnableStopWords)
	assert.Nil(t, cfg.EnableStemming)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
