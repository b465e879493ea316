package stemmer

import (
	"errors"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/oarkflow/gopool"
	"github.com/oarkflow/gopool/spinlock"
	"github.com/oarkflow/log"
	"github.com/oarkflow/xid"
	"github.com/oarkflow/xsync"

	"github.com/oarkflow/stemmer/cache"
	"github.com/oarkflow/stemmer/snowball"
	"github.com/oarkflow/stemmer/tokenizer"
	"github.com/oarkflow/stemmer/turkish"
	"github.com/oarkflow/stemmer/wordlist"
)

const DefaultBatchSize = 1000

// Engine wraps a Turkish stemmer with the text pipeline, other languages,
// a stem cache and usage counters.
type Engine struct {
	key             string
	cfg             *Config
	turkish         *turkish.Stemmer
	languages       *snowball.Stemmer
	tokenizerConfig *tokenizer.Config
	cache           *cache.Janitor[string, string]
	store           *cache.FlyDB[string, string]
	requests        *xsync.Counter
	hits            *xsync.Counter
	closeOnce       sync.Once
}

func New(cfg ...*Config) (*Engine, error) {
	c := &Config{}
	if len(cfg) > 0 && cfg[0] != nil {
		c = cfg[0]
	}
	if c.Key == "" {
		c.Key = xid.New().String()
	}
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = tokenizer.TURKISH
	}
	if !tokenizer.IsSupportedLanguage(c.DefaultLanguage) {
		return nil, tokenizer.LanguageNotSupported
	}
	if c.EnableStemming == nil {
		enabled := true
		c.EnableStemming = &enabled
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultBatchSize
	}
	tr, err := turkish.New(&turkish.Options{
		ProtectedWords:          loadWordList("protected words", c.ProtectedWordsPath),
		VowelHarmonyExceptions:  loadWordList("vowel harmony exceptions", c.VowelHarmonyExceptionsPath),
		LastConsonantExceptions: loadWordList("last consonant exceptions", c.LastConsonantExceptionsPath),
		AverageStemSizeWords:    loadWordList("average stem size words", c.AverageStemSizeWordsPath),
	})
	if err != nil {
		return nil, err
	}
	e := &Engine{
		key:       c.Key,
		cfg:       c,
		turkish:   tr,
		languages: snowball.New(tr),
		requests:  xsync.NewCounter(),
		hits:      xsync.NewCounter(),
	}
	e.tokenizerConfig = &tokenizer.Config{
		EnableStemming:  *c.EnableStemming,
		EnableStopWords: c.EnableStopWords,
		Keywords:        wordlist.NewSet(c.Keywords...),
		Stemmers:        make(map[tokenizer.Language]tokenizer.Stem),
	}
	for _, lang := range tokenizer.Languages {
		e.tokenizerConfig.Stemmers[lang] = func(word string) string {
			stem, err := e.StemLanguage(word, lang)
			if err != nil {
				return word
			}
			return stem
		}
	}
	if err := e.setupCache(); err != nil {
		return nil, err
	}
	return e, nil
}

// loadWordList returns nil, which selects the bundled default, when path is
// empty or cannot be read.
func loadWordList(name, path string) wordlist.Set {
	if path == "" {
		return nil
	}
	set, err := wordlist.LoadFile(path, wordlist.DefaultComment)
	if err != nil {
		log.Info().Err(err).Str("list", name).Str("path", path).Msg("Unable to load word list, using default")
		return nil
	}
	return set
}

func (e *Engine) setupCache() error {
	if e.cfg.CacheSize <= 0 {
		return nil
	}
	lru := cache.NewLRU[string, string](e.cfg.CacheSize)
	var target cache.Store[string, string]
	if e.cfg.CachePath != "" {
		store, err := cache.NewFlyDB[string, string](filepath.Join(e.cfg.CachePath, e.key), e.cfg.Compress)
		if err != nil {
			return err
		}
		e.store = store
		target = store
	}
	e.cache = cache.NewJanitor[string, string](lru, target, e.cfg.CleanupPeriod, target != nil)
	if e.cfg.CleanupPeriod > 0 {
		go e.cache.CleanUp()
	}
	return nil
}

func (e *Engine) Key() string {
	return e.key
}

func (e *Engine) Config() *Config {
	return e.cfg
}

// Stem returns the Turkish stem of word.
func (e *Engine) Stem(word string) string {
	e.requests.Inc()
	if e.cache != nil {
		if stem, ok := e.cache.Get(word); ok {
			e.hits.Inc()
			return stem
		}
	}
	stem := e.turkish.Stem(word)
	if e.cache != nil {
		_ = e.cache.Set(word, stem)
	}
	return stem
}

func (e *Engine) StemLanguage(word string, lang tokenizer.Language) (string, error) {
	if lang == "" {
		lang = e.cfg.DefaultLanguage
	}
	if lang == tokenizer.TURKISH {
		return e.Stem(word), nil
	}
	if !tokenizer.IsSupportedLanguage(lang) {
		return word, tokenizer.LanguageNotSupported
	}
	e.requests.Inc()
	return e.languages.Stem(word, lang.Name(), false)
}

// Candidates lists every Turkish stem considered for word, best first.
func (e *Engine) Candidates(word string) []string {
	return e.turkish.Candidates(word)
}

// Analyze tokenizes text and replaces every token by its stem.
func (e *Engine) Analyze(text string, lang ...tokenizer.Language) ([]string, error) {
	language := e.cfg.DefaultLanguage
	if len(lang) > 0 && lang[0] != "" {
		language = lang[0]
	}
	return tokenizer.Tokenize(&tokenizer.TokenizeParams{
		Text:            text,
		Language:        language,
		AllowDuplicates: true,
	}, e.tokenizerConfig)
}

// StemBatch stems words on a worker pool. Results keep the input order.
func (e *Engine) StemBatch(words []string, lang ...tokenizer.Language) ([]string, []error) {
	results := make([]string, len(words))
	if len(words) == 0 {
		return results, nil
	}
	language := e.cfg.DefaultLanguage
	if len(lang) > 0 && lang[0] != "" {
		language = lang[0]
	}
	var mu sync.Mutex
	var errs []error
	pool := gopool.NewGoPool(e.cfg.Workers,
		gopool.WithTaskQueueSize(e.cfg.BatchSize),
		gopool.WithLock(new(spinlock.SpinLock)),
		gopool.WithErrorCallback(func(err error) {
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}),
	)
	defer pool.Release()
	for i, word := range words {
		pool.AddTask(func() (interface{}, error) {
			stem, err := e.StemLanguage(word, language)
			results[i] = stem
			return stem, err
		})
	}
	pool.Wait()
	for _, err := range errs {
		log.Error().Err(err).Str("key", e.key).Msg("Unable to stem word")
	}
	return results, errs
}

// Warm fills the cache with the stems of words.
func (e *Engine) Warm(words []string) error {
	if e.cache == nil {
		return errNoCache
	}
	pool, err := gopool.NewPoolSimple(e.cfg.Workers, func(job gopool.Job[string], _ int) error {
		e.Stem(job.Payload)
		return nil
	})
	if err != nil {
		return err
	}
	for _, word := range words {
		pool.Submit(word)
	}
	pool.StopAndWait()
	return nil
}

var errNoCache = errors.New("cache is disabled")

// Sample returns up to size word/stem pairs from the persistent cache tier.
func (e *Engine) Sample(size int) (map[string]string, error) {
	if e.store == nil {
		return nil, errNoPersistentCache
	}
	return e.store.Sample(size), nil
}

var errNoPersistentCache = errors.New("persistent cache is disabled")

func (e *Engine) ClearCache() {
	if e.cache != nil {
		e.cache.Clear()
	}
}

func (e *Engine) Metadata() map[string]any {
	details := map[string]any{
		"key":                       e.key,
		"language":                  e.cfg.DefaultLanguage,
		"protected_words":           e.turkish.ProtectedWords().Len(),
		"vowel_harmony_exceptions":  e.turkish.VowelHarmonyExceptions().Len(),
		"last_consonant_exceptions": e.turkish.LastConsonantExceptions().Len(),
		"average_stem_size_words":   e.turkish.AverageStemSizeWords().Len(),
		"keywords":                  len(e.cfg.Keywords),
		"requests":                  e.requests.Value(),
		"cache_hits":                e.hits.Value(),
		"stemming":                  *e.cfg.EnableStemming,
		"stop_words":                e.cfg.EnableStopWords,
	}
	if e.cache != nil {
		details["cache_size"] = e.cfg.CacheSize
		details["cached"] = e.cache.Len()
	}
	if e.store != nil {
		details["persisted"] = e.store.Len()
	}
	return details
}

func (e *Engine) Close() error {
	var err error
	e.closeOnce.Do(func() {
		if e.cache != nil {
			e.cache.Stop()
			if e.store != nil {
				e.cache.Offload()
				err = e.store.Close()
			}
		}
	})
	return err
}
