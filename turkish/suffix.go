package turkish

import (
	"strings"
)

// Suffix is one entry of a suffix table. All surfaces of a suffix have the
// same length, so stripping removes exactly one of them from the end.
type Suffix struct {
	ID           string
	Name         string
	CheckHarmony bool
	surfaces     []string
	optional     []rune
}

func newSuffix(id, name, surfaces, optional string, checkHarmony bool) *Suffix {
	s := &Suffix{
		ID:           id,
		Name:         name,
		CheckHarmony: checkHarmony,
		surfaces:     strings.Split(surfaces, "|"),
	}
	if optional != "" {
		for _, letter := range strings.Split(optional, "|") {
			s.optional = append(s.optional, []rune(letter)[0])
		}
	}
	return s
}

func (s *Suffix) String() string {
	return s.Name + " (" + s.ID + ")"
}

func (s *Suffix) Surfaces() []string {
	return s.surfaces
}

func (s *Suffix) Match(word string) bool {
	for _, surface := range s.surfaces {
		if strings.HasSuffix(word, surface) {
			return true
		}
	}
	return false
}

// Remove strips the matching surface from word, or returns word unchanged.
func (s *Suffix) Remove(word string) string {
	for _, surface := range s.surfaces {
		if strings.HasSuffix(word, surface) {
			return word[:len(word)-len(surface)]
		}
	}
	return word
}

// OptionalLetter returns the last letter of word when it is one of the
// letters this suffix may leave behind.
func (s *Suffix) OptionalLetter(word string) (rune, bool) {
	if len(s.optional) == 0 || word == "" {
		return 0, false
	}
	letters := []rune(word)
	last := letters[len(letters)-1]
	for _, letter := range s.optional {
		if letter == last {
			return last, true
		}
	}
	return 0, false
}

// SuffixTable is an ordered suffix catalogue; order is match priority.
type SuffixTable []*Suffix

func (t SuffixTable) Get(id string) *Suffix {
	for _, s := range t {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func (t SuffixTable) index(id string) int {
	for i, s := range t {
		if s.ID == id {
			return i
		}
	}
	return -1
}

var NominalVerbSuffixes = SuffixTable{
	newSuffix("S11", "-cAsInA", "casına|çasına|cesine|çesine", "", true),
	newSuffix("S4", "-sUnUz", "sınız|siniz|sunuz|sünüz", "", true),
	newSuffix("S14", "-(y)mUş", "muş|miş|müş|mış", "y", true),
	newSuffix("S15", "-(y)ken", "ken", "y", true),
	newSuffix("S2", "-sUn", "sın|sin|sun|sün", "", true),
	newSuffix("S5", "-lAr", "lar|ler", "", true),
	newSuffix("S9", "-nUz", "nız|niz|nuz|nüz", "", true),
	newSuffix("S10", "-DUr", "tır|tir|tur|tür|dır|dir|dur|dür", "", true),
	newSuffix("S3", "-(y)Uz", "ız|iz|uz|üz", "y", true),
	newSuffix("S1", "-(y)Um", "ım|im|um|üm", "y", true),
	newSuffix("S12", "-(y)DU", "dı|di|du|dü|tı|ti|tu|tü", "y", true),
	newSuffix("S13", "-(y)sA", "sa|se", "y", true),
	newSuffix("S6", "-m", "m", "", true),
	newSuffix("S7", "-n", "n", "", true),
	newSuffix("S8", "-k", "k", "", true),
}

var NounSuffixes = SuffixTable{
	newSuffix("S16", "-nDAn", "ndan|ntan|nden|nten", "", true),
	newSuffix("S7", "-lArI", "ları|leri", "", true),
	newSuffix("S3", "-(U)mUz", "mız|miz|muz|müz", "ı|i|u|ü", true),
	newSuffix("S5", "-(U)nUz", "nız|niz|nuz|nüz", "ı|i|u|ü", true),
	newSuffix("S1", "-lAr", "lar|ler", "", true),
	newSuffix("S14", "-nDA", "nta|nte|nda|nde", "", true),
	newSuffix("S15", "-DAn", "dan|tan|den|ten", "", true),
	newSuffix("S17", "-(y)lA", "la|le", "y", true),
	newSuffix("S10", "-(n)Un", "ın|in|un|ün", "n", true),
	newSuffix("S19", "-(n)cA", "ca|ce", "n", true),
	newSuffix("S4", "-Un", "ın|in|un|ün", "", true),
	newSuffix("S9", "-nU", "nı|ni|nu|nü", "", true),
	newSuffix("S12", "-nA", "na|ne", "", true),
	newSuffix("S13", "-DA", "da|de|ta|te", "", true),
	newSuffix("S18", "-ki", "ki", "", false),
	newSuffix("S2", "-(U)m", "m", "ı|i|u|ü", true),
	newSuffix("S6", "-(s)U", "ı|i|u|ü", "s", true),
	newSuffix("S8", "-(y)U", "ı|i|u|ü", "y", true),
	newSuffix("S11", "-(y)A", "a|e", "y", true),
}

var DerivationalSuffixes = SuffixTable{
	newSuffix("S1", "-lU", "lı|li|lu|lü", "", true),
}
