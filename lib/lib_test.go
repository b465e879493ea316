package lib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressRoundTrip(t *testing.T) {
	data := []byte("satıyorsunuz satıyorsunuz satıyorsunuz")
	compressed, err := Compress(data)
	require.NoError(t, err)
	decompressed, err := Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, decompressed)

	_, err = Decompress([]byte("not gzip"))
	assert.Error(t, err)
}

func TestReadJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.json")
	require.NoError(t, os.WriteFile(path, []byte(`["kitaplar","evler"]`), 0o644))
	words, err := ReadJSONFile[[]string](path)
	require.NoError(t, err)
	assert.Equal(t, []string{"kitaplar", "evler"}, words)

	_, err = ReadJSONFile[[]string](filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Unique([]string{"a", "b", "a"}))
	assert.Nil(t, Unique[string](nil))
}
