package stemmer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/stemmer/tokenizer"
)

func TestEngineStem(t *testing.T) {
	eng, err := New()
	require.NoError(t, err)
	assert.NotEmpty(t, eng.Key())
	assert.Equal(t, tokenizer.TURKISH, eng.Config().DefaultLanguage)

	assert.Equal(t, "satıyor", eng.Stem("satıyorsunuz"))
	assert.Equal(t, "kedi", eng.Stem("kedi"))
	assert.Equal(t, []string{"satıyor", "satıyors"}, eng.Candidates("satıyorsunuz"))

	stem, err := eng.StemLanguage("running", tokenizer.ENGLISH)
	require.NoError(t, err)
	assert.Equal(t, "run", stem)

	_, err = eng.StemLanguage("word", "xx")
	assert.ErrorIs(t, err, tokenizer.LanguageNotSupported)
}

func TestEngineUnsupportedDefaultLanguage(t *testing.T) {
	_, err := New(&Config{DefaultLanguage: "xx"})
	assert.ErrorIs(t, err, tokenizer.LanguageNotSupported)
}

func TestEngineAnalyze(t *testing.T) {
	eng, err := New(&Config{EnableStopWords: true, Keywords: []string{"telefonlar"}})
	require.NoError(t, err)
	tokens, err := eng.Analyze("Telefonları ve telefonlar satıyorsunuz")
	require.NoError(t, err)
	assert.Equal(t, []string{"telefon", "telefonlar", "satıyor"}, tokens)

	disabled := false
	eng, err = New(&Config{EnableStemming: &disabled})
	require.NoError(t, err)
	tokens, err = eng.Analyze("Telefonları ve")
	require.NoError(t, err)
	assert.Equal(t, []string{"telefonları", "ve"}, tokens)
}

func TestEngineStemBatch(t *testing.T) {
	eng, err := New(&Config{Workers: 4, BatchSize: 8})
	require.NoError(t, err)
	words := []string{"satıyorsunuz", "telefonları", "ayfon", "eriklimişsincesine", "kedi", "adrese"}
	stems, errs := eng.StemBatch(words)
	assert.Empty(t, errs)
	assert.Equal(t, []string{"satıyor", "telefon", "ayfon", "erik", "kedi", "adre"}, stems)

	stems, errs = eng.StemBatch(nil)
	assert.Empty(t, errs)
	assert.Empty(t, stems)
}

func TestEngineCache(t *testing.T) {
	eng, err := New(&Config{CacheSize: 16})
	require.NoError(t, err)
	defer eng.Close()

	assert.Equal(t, "telefon", eng.Stem("telefonları"))
	assert.Equal(t, "telefon", eng.Stem("telefonları"))
	md := eng.Metadata()
	assert.EqualValues(t, 2, md["requests"])
	assert.EqualValues(t, 1, md["cache_hits"])
	assert.EqualValues(t, 1, md["cached"])

	eng.ClearCache()
	assert.EqualValues(t, 0, eng.Metadata()["cached"])

	require.NoError(t, eng.Warm([]string{"satıyorsunuz", "adrese"}))
	assert.EqualValues(t, 2, eng.Metadata()["cached"])
}

func TestEngineWarmWithoutCache(t *testing.T) {
	eng, err := New()
	require.NoError(t, err)
	assert.ErrorIs(t, eng.Warm([]string{"adrese"}), errNoCache)
}

func TestEnginePersistentCache(t *testing.T) {
	dir := t.TempDir()
	eng, err := New(&Config{Key: "persist", CacheSize: 1, CachePath: dir, CleanupPeriod: time.Hour})
	require.NoError(t, err)

	assert.Equal(t, "telefon", eng.Stem("telefonları"))
	assert.Equal(t, "satıyor", eng.Stem("satıyorsunuz"))
	// telefonları was evicted to disk and comes back from there
	assert.Equal(t, "telefon", eng.Stem("telefonları"))
	assert.EqualValues(t, 1, eng.Metadata()["cache_hits"])

	sample, err := eng.Sample(10)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"telefonları": "telefon", "satıyorsunuz": "satıyor"}, sample)
	require.NoError(t, eng.Close())
	require.NoError(t, eng.Close())
}

func TestEngineSampleWithoutStore(t *testing.T) {
	eng, err := New(&Config{CacheSize: 4})
	require.NoError(t, err)
	_, err = eng.Sample(10)
	assert.ErrorIs(t, err, errNoPersistentCache)
}

func TestEngineWordListFallback(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("# nothing protected\n"), 0o644))

	eng, err := New(&Config{ProtectedWordsPath: filepath.Join(dir, "missing.txt")})
	require.NoError(t, err)
	assert.Equal(t, "kedi", eng.Stem("kedi"))
	assert.Positive(t, eng.Metadata()["protected_words"])

	eng, err = New(&Config{ProtectedWordsPath: empty})
	require.NoError(t, err)
	assert.EqualValues(t, 0, eng.Metadata()["protected_words"])
	assert.Positive(t, eng.Metadata()["vowel_harmony_exceptions"])
}
