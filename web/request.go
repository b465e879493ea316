package web

type StemQuery struct {
	Query    string `json:"q" query:"q"`
	Language string `json:"l" query:"l"`
}

type BatchRequest struct {
	Words    []string `json:"words"`
	Language string   `json:"language"`
}

type AnalyzeRequest struct {
	Text     string `json:"text" query:"text"`
	Language string `json:"language" query:"language"`
}

type NewEngine struct {
	Key                         string   `json:"key"`
	ProtectedWordsPath          string   `json:"protected_words_path"`
	VowelHarmonyExceptionsPath  string   `json:"vowel_harmony_exceptions_path"`
	LastConsonantExceptionsPath string   `json:"last_consonant_exceptions_path"`
	AverageStemSizeWordsPath    string   `json:"average_stem_size_words_path"`
	Keywords                    []string `json:"keywords"`
	EnableStemming              *bool    `json:"enable_stemming"`
	EnableStopWords             bool     `json:"enable_stop_words"`
	CacheSize                   int      `json:"cache_size"`
	CachePath                   string   `json:"cache_path"`
	Compress                    bool     `json:"compress"`
}

type SampleQuery struct {
	Size int `json:"size" query:"size"`
}

type WarmRequest struct {
	Words []string `json:"words"`
}
