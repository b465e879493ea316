package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	input := "# protected words\nkedi\n\n  köpek  \nkedi\n#ev\n"
	set, err := Load(strings.NewReader(input), DefaultComment)
	require.NoError(t, err)
	assert.Equal(t, []string{"kedi", "köpek"}, set.Words())
	assert.True(t, set.Contains("köpek"))
	assert.False(t, set.Contains("#ev"))
}

func TestLoadWithoutComment(t *testing.T) {
	set, err := Load(strings.NewReader("#ev\nkedi\n"), "")
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains("#ev"))
}

func TestLoadEmpty(t *testing.T) {
	set, err := Load(strings.NewReader(""), DefaultComment)
	require.NoError(t, err)
	assert.NotNil(t, set)
	assert.Equal(t, 0, set.Len())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("masa\nkapı\n"), 0o644))
	set, err := LoadFile(path, DefaultComment)
	require.NoError(t, err)
	assert.Equal(t, []string{"kapı", "masa"}, set.Words())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.txt"), DefaultComment)
	assert.Error(t, err)
}

func TestNilSet(t *testing.T) {
	var set Set
	assert.False(t, set.Contains("kedi"))
	assert.Equal(t, 0, set.Len())
	assert.Empty(t, set.Words())
}
