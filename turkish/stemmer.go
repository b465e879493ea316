// Package turkish implements a rule-based Turkish stemmer. Words are reduced
// by three suffix-removal machines run in sequence (nominal verb, noun,
// derivational) and the resulting candidates are ranked to pick one stem.
package turkish

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/oarkflow/stemmer/wordlist"
)

// Options holds the exception sets of a Stemmer. A nil set selects the
// bundled default; an empty set is used as is.
type Options struct {
	ProtectedWords          wordlist.Set
	VowelHarmonyExceptions  wordlist.Set
	LastConsonantExceptions wordlist.Set
	AverageStemSizeWords    wordlist.Set
}

// Stemmer is safe for concurrent use. Its sets must not be modified after New.
type Stemmer struct {
	protected       wordlist.Set
	vowelHarmony    wordlist.Set
	lastConsonant   wordlist.Set
	averageStemSize wordlist.Set
}

func New(opts ...*Options) (*Stemmer, error) {
	o := &Options{}
	if len(opts) > 0 && opts[0] != nil {
		o = opts[0]
	}
	s := &Stemmer{
		protected:       o.ProtectedWords,
		vowelHarmony:    o.VowelHarmonyExceptions,
		lastConsonant:   o.LastConsonantExceptions,
		averageStemSize: o.AverageStemSizeWords,
	}
	for _, list := range defaultLists {
		target := list.field(s)
		if *target != nil {
			continue
		}
		set, err := list.load()
		if err != nil {
			return nil, fmt.Errorf("turkish: loading default %s: %w", list.name, err)
		}
		*target = set
	}
	return s, nil
}

// Stem returns the most plausible stem of word, or word itself when it is
// not stemmed.
func (s *Stemmer) Stem(word string) string {
	if !s.proceed(word) {
		return word
	}
	return s.postProcess(s.candidates(word), word)
}

// Candidates returns every stem considered for word, best first.
func (s *Stemmer) Candidates(word string) []string {
	if !s.proceed(word) {
		return nil
	}
	return s.rank(s.candidates(word), word)
}

func (s *Stemmer) ProtectedWords() wordlist.Set { return s.protected }
func (s *Stemmer) VowelHarmonyExceptions() wordlist.Set { return s.vowelHarmony }
func (s *Stemmer) LastConsonantExceptions() wordlist.Set { return s.lastConsonant }
func (s *Stemmer) AverageStemSizeWords() wordlist.Set { return s.averageStemSize }

func (s *Stemmer) proceed(word string) bool {
	return IsTurkish(word) && !s.protected.Contains(word) && CountSyllables(word) >= 2
}

func (s *Stemmer) candidates(word string) map[string]struct{} {
	stems := make(map[string]struct{})
	s.walk(nominalVerbMachine, word, stems)
	for _, w := range withWord(word, stems) {
		s.walk(nounMachine, w, stems)
	}
	for _, w := range withWord(word, stems) {
		s.walk(derivationalMachine, w, stems)
	}
	return stems
}

func withWord(word string, stems map[string]struct{}) []string {
	words := make([]string, 0, len(stems)+1)
	words = append(words, word)
	for stem := range stems {
		if stem != word {
			words = append(words, stem)
		}
	}
	return words
}

// stemWord removes suffix from word when the exception sets and the
// phonology allow it. It returns word unchanged otherwise.
func (s *Stemmer) stemWord(word string, suffix *Suffix) string {
	if !s.shouldStrip(word, suffix) || !suffix.Match(word) {
		return word
	}
	stem := suffix.Remove(word)
	if letter, ok := suffix.OptionalLetter(stem); ok {
		if !ValidOptionalLetter(stem, letter) {
			return word
		}
		stem = trimLastLetter(stem)
	}
	return stem
}

func (s *Stemmer) shouldStrip(word string, suffix *Suffix) bool {
	if s.protected.Contains(word) {
		return false
	}
	return !suffix.CheckHarmony || HasVowelHarmony(word) || s.vowelHarmony.Contains(word)
}

// LastConsonant devoices the final letter of word unless it is a
// last-consonant exception.
func (s *Stemmer) LastConsonant(word string) string {
	if s.lastConsonant.Contains(word) {
		return word
	}
	return Devoice(word)
}

func (s *Stemmer) postProcess(stems map[string]struct{}, original string) string {
	ranked := s.rank(stems, original)
	if len(ranked) == 0 {
		return original
	}
	return ranked[0]
}

func (s *Stemmer) rank(stems map[string]struct{}, original string) []string {
	seen := make(map[string]struct{}, len(stems))
	ranked := make([]string, 0, len(stems))
	for stem := range stems {
		if stem == original || CountSyllables(stem) == 0 {
			continue
		}
		stem = s.LastConsonant(stem)
		if _, ok := seen[stem]; ok {
			continue
		}
		seen[stem] = struct{}{}
		ranked = append(ranked, stem)
	}
	slices.SortFunc(ranked, s.compare)
	return ranked
}

// compare prefers average stem size words, then stems closest to
// AverageStemSize, then shorter stems.
func (s *Stemmer) compare(a, b string) int {
	aPreferred, bPreferred := s.averageStemSize.Contains(a), s.averageStemSize.Contains(b)
	switch {
	case aPreferred && !bPreferred:
		return -1
	case bPreferred && !aPreferred:
		return 1
	}
	aLen, bLen := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if d := distance(aLen) - distance(bLen); d != 0 {
		return d
	}
	if aLen != bLen {
		return aLen - bLen
	}
	return strings.Compare(a, b)
}

func distance(length int) int {
	if length > AverageStemSize {
		return length - AverageStemSize
	}
	return AverageStemSize - length
}
