package tokenizer

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	TURKISH   Language = "tr"
	ENGLISH   Language = "en"
	FRENCH    Language = "fr"
	HUNGARIAN Language = "hu"
	NORWEGIAN Language = "no"
	RUSSIAN   Language = "ru"
	SPANISH   Language = "es"
	SWEDISH   Language = "sv"
)

var Languages = []Language{TURKISH, ENGLISH, FRENCH, HUNGARIAN, NORWEGIAN, RUSSIAN, SPANISH, SWEDISH}

var names = map[Language]string{
	TURKISH:   "turkish",
	ENGLISH:   "english",
	FRENCH:    "french",
	HUNGARIAN: "hungarian",
	NORWEGIAN: "norwegian",
	RUSSIAN:   "russian",
	SPANISH:   "spanish",
	SWEDISH:   "swedish",
}

// folds diacritics away; Turkish letters are kept with NFC only.
var normalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var (
	LanguageNotSupported = errors.New("language not supported")
)

type Language string

// Name is the snowball name of the language.
func (l Language) Name() string {
	return names[l]
}

type Stem func(word string) string

type Config struct {
	EnableStemming  bool
	EnableStopWords bool
	// Keywords are emitted as they are, without stemming.
	Keywords map[string]struct{}
	Stemmers map[Language]Stem
}

type TokenizeParams struct {
	Text            string
	Language        Language
	AllowDuplicates bool
}

type normalizeParams struct {
	token    string
	language Language
}

func IsSupportedLanguage(language Language) bool {
	_, ok := names[language]
	return ok
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !isApostrophe(r)
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}

func splitSentence(text string) []string {
	return strings.FieldsFunc(text, isSeparator)
}

func lower(text string, lang Language) string {
	if lang == TURKISH {
		return norm.NFC.String(cases.Lower(language.Turkish).String(text))
	}
	folded, _, err := transform.String(normalizer, strings.ToLower(text))
	if err != nil {
		return strings.ToLower(text)
	}
	return folded
}

// trimApostrophe drops what follows an apostrophe, the inflection of a
// proper noun in Turkish ("ankara'da" -> "ankara").
func trimApostrophe(token string, lang Language) string {
	i := strings.IndexFunc(token, isApostrophe)
	if i < 0 {
		return token
	}
	if lang == TURKISH {
		return token[:i]
	}
	return strings.Map(func(r rune) rune {
		if isApostrophe(r) {
			return -1
		}
		return r
	}, token)
}

func Tokenize(params *TokenizeParams, config *Config) ([]string, error) {
	if params.Language == "" {
		params.Language = TURKISH
	}
	if !IsSupportedLanguage(params.Language) {
		return nil, LanguageNotSupported
	}
	splitText := splitSentence(lower(params.Text, params.Language))
	tokens := make([]string, 0, len(splitText))
	uniqueTokens := make(map[string]struct{})
	for _, token := range splitText {
		normParams := normalizeParams{
			token:    trimApostrophe(token, params.Language),
			language: params.Language,
		}
		if normToken := normalizeToken(&normParams, config); normToken != "" {
			if _, ok := uniqueTokens[normToken]; (!ok && !params.AllowDuplicates) || params.AllowDuplicates {
				uniqueTokens[normToken] = struct{}{}
				tokens = append(tokens, normToken)
			}
		}
	}

	return tokens, nil
}

func normalizeToken(params *normalizeParams, config *Config) string {
	token := params.token
	if _, ok := stopWords[params.language][token]; config.EnableStopWords && ok {
		return ""
	}
	if _, ok := config.Keywords[token]; ok {
		return token
	}
	if stem, ok := config.Stemmers[params.language]; config.EnableStemming && ok && stem != nil {
		token = stem(token)
	}
	return token
}
