package snowball

import (
	"fmt"

	"github.com/kljensen/snowball/english"
	"github.com/kljensen/snowball/french"
	"github.com/kljensen/snowball/hungarian"
	"github.com/kljensen/snowball/norwegian"
	"github.com/kljensen/snowball/russian"
	"github.com/kljensen/snowball/spanish"
	"github.com/kljensen/snowball/swedish"

	"github.com/oarkflow/stemmer/turkish"
)

var Languages = []string{"english", "french", "hungarian", "norwegian", "russian", "spanish", "swedish", "turkish"}

// Stemmer dispatches words to a stemmer by language name. Turkish is handled
// by the rule-based stemmer, every other language by snowball.
type Stemmer struct {
	turkish *turkish.Stemmer
}

func New(tr *turkish.Stemmer) *Stemmer {
	return &Stemmer{turkish: tr}
}

// Stem a word in the specified language.
func (s *Stemmer) Stem(word, language string, stemStopWords bool) (stemmed string, err error) {
	var f func(string, bool) string
	switch language {
	case "turkish":
		if s.turkish == nil {
			return word, fmt.Errorf("turkish stemmer not configured")
		}
		return s.turkish.Stem(word), nil
	case "english":
		f = english.Stem
	case "french":
		f = french.Stem
	case "hungarian":
		f = hungarian.Stem
	case "norwegian":
		f = norwegian.Stem
	case "russian":
		f = russian.Stem
	case "spanish":
		f = spanish.Stem
	case "swedish":
		f = swedish.Stem
	default:
		return word, fmt.Errorf("unknown language: %s", language)
	}
	return f(word, stemStopWords), nil
}
