package stemmer

import (
	"time"

	"github.com/oarkflow/stemmer/lib"
	"github.com/oarkflow/stemmer/tokenizer"
)

type Config struct {
	Key                         string             `json:"key"`
	DefaultLanguage             tokenizer.Language `json:"default_language"`
	ProtectedWordsPath          string             `json:"protected_words_path"`
	VowelHarmonyExceptionsPath  string             `json:"vowel_harmony_exceptions_path"`
	LastConsonantExceptionsPath string             `json:"last_consonant_exceptions_path"`
	AverageStemSizeWordsPath    string             `json:"average_stem_size_words_path"`
	Keywords                    []string           `json:"keywords"`
	EnableStemming              *bool              `json:"enable_stemming"`
	EnableStopWords             bool               `json:"enable_stop_words"`
	CacheSize                   int                `json:"cache_size"`
	CachePath                   string             `json:"cache_path"`
	Compress                    bool               `json:"compress"`
	CleanupPeriod               time.Duration      `json:"cleanup_period"`
	Workers                     int                `json:"workers"`
	BatchSize                   int                `json:"batch_size"`
}

// MergeConfigs merges multiple Config structs into one. Later non-zero
// fields win; keywords accumulate.
func MergeConfigs(configs ...*Config) *Config {
	mergedConfig := &Config{}
	for _, cfg := range configs {
		if cfg == nil {
			continue
		}
		if cfg.Key != "" {
			mergedConfig.Key = cfg.Key
		}
		if cfg.DefaultLanguage != "" {
			mergedConfig.DefaultLanguage = cfg.DefaultLanguage
		}
		if cfg.ProtectedWordsPath != "" {
			mergedConfig.ProtectedWordsPath = cfg.ProtectedWordsPath
		}
		if cfg.VowelHarmonyExceptionsPath != "" {
			mergedConfig.VowelHarmonyExceptionsPath = cfg.VowelHarmonyExceptionsPath
		}
		if cfg.LastConsonantExceptionsPath != "" {
			mergedConfig.LastConsonantExceptionsPath = cfg.LastConsonantExceptionsPath
		}
		if cfg.AverageStemSizeWordsPath != "" {
			mergedConfig.AverageStemSizeWordsPath = cfg.AverageStemSizeWordsPath
		}
		if len(cfg.Keywords) > 0 {
			mergedConfig.Keywords = lib.Unique(append(mergedConfig.Keywords, cfg.Keywords...))
		}
		if cfg.EnableStemming != nil {
			mergedConfig.EnableStemming = cfg.EnableStemming
		}
		if cfg.EnableStopWords {
			mergedConfig.EnableStopWords = cfg.EnableStopWords
		}
		if cfg.CacheSize != 0 {
			mergedConfig.CacheSize = cfg.CacheSize
		}
		if cfg.CachePath != "" {
			mergedConfig.CachePath = cfg.CachePath
		}
		if cfg.Compress {
			mergedConfig.Compress = cfg.Compress
		}
		if cfg.CleanupPeriod != 0 {
			mergedConfig.CleanupPeriod = cfg.CleanupPeriod
		}
		if cfg.Workers != 0 {
			mergedConfig.Workers = cfg.Workers
		}
		if cfg.BatchSize != 0 {
			mergedConfig.BatchSize = cfg.BatchSize
		}
	}
	return mergedConfig
}

// LoadConfig reads a JSON encoded Config from path.
func LoadConfig(path string) (*Config, error) {
	cfg, err := lib.ReadJSONFile[Config](path)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
