package turkish

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/oarkflow/stemmer/wordlist"
)

var (
	//go:embed resources/protected_words.txt
	protectedWords string
	//go:embed resources/vowel_harmony_exceptions.txt
	vowelHarmonyExceptions string
	//go:embed resources/last_consonant_exceptions.txt
	lastConsonantExceptions string
	//go:embed resources/average_stem_size_exceptions.txt
	averageStemSizeWords string
)

type defaultList struct {
	name  string
	data  string
	field func(*Stemmer) *wordlist.Set
}

func (l defaultList) load() (wordlist.Set, error) {
	return wordlist.Load(strings.NewReader(l.data), wordlist.DefaultComment)
}

var defaultLists = []defaultList{
	{"protected words", protectedWords, func(s *Stemmer) *wordlist.Set { return &s.protected }},
	{"vowel harmony exceptions", vowelHarmonyExceptions, func(s *Stemmer) *wordlist.Set { return &s.vowelHarmony }},
	{"last consonant exceptions", lastConsonantExceptions, func(s *Stemmer) *wordlist.Set { return &s.lastConsonant }},
	{"average stem size words", averageStemSizeWords, func(s *Stemmer) *wordlist.Set { return &s.averageStemSize }},
}

// DefaultOptions returns freshly parsed copies of the bundled word lists.
func DefaultOptions() (*Options, error) {
	s := &Stemmer{}
	for _, list := range defaultLists {
		set, err := list.load()
		if err != nil {
			return nil, fmt.Errorf("turkish: loading default %s: %w", list.name, err)
		}
		*list.field(s) = set
	}
	return &Options{
		ProtectedWords:          s.protected,
		VowelHarmonyExceptions:  s.vowelHarmony,
		LastConsonantExceptions: s.lastConsonant,
		AverageStemSizeWords:    s.averageStemSize,
	}, nil
}
