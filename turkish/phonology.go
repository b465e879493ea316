package turkish

import (
	"strings"
	"unicode/utf8"
)

const (
	Alphabet               = "abcçdefgğhıijklmnoöprsştuüvyz"
	VowelLetters           = "üiıueöao"
	ConsonantLetters       = "bcçdfgğhjklmnprsştvyz"
	RoundedVowels          = "oöuü"
	UnroundedVowels        = "iıea"
	FollowingRoundedVowels = "aeuü"
	FrontVowels            = "eiöü"
	BackVowels             = "ıuao"

	// AverageStemSize is the stem length, in letters, ranking aims for.
	AverageStemSize = 4
)

func isVowel(r rune) bool {
	return strings.ContainsRune(VowelLetters, r)
}

func isConsonant(r rune) bool {
	return strings.ContainsRune(ConsonantLetters, r)
}

// Vowels returns word with its consonants removed. Runes outside the
// alphabet are kept.
func Vowels(word string) string {
	var sb strings.Builder
	for _, r := range word {
		if !isConsonant(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func CountSyllables(word string) int {
	return utf8.RuneCountInString(Vowels(word))
}

func HasFrontness(a, b rune) bool {
	front := strings.ContainsRune(FrontVowels, a) && strings.ContainsRune(FrontVowels, b)
	back := strings.ContainsRune(BackVowels, a) && strings.ContainsRune(BackVowels, b)
	return front || back
}

func HasRoundness(a, b rune) bool {
	unrounded := strings.ContainsRune(UnroundedVowels, a) && strings.ContainsRune(UnroundedVowels, b)
	rounded := strings.ContainsRune(RoundedVowels, a) && strings.ContainsRune(FollowingRoundedVowels, b)
	return unrounded || rounded
}

func VowelHarmony(a, b rune) bool {
	return HasRoundness(a, b) && HasFrontness(a, b)
}

// HasVowelHarmony checks the last two vowels of word. Words with fewer than
// two vowels are harmonic.
func HasVowelHarmony(word string) bool {
	vowels := []rune(Vowels(word))
	if len(vowels) < 2 {
		return true
	}
	return VowelHarmony(vowels[len(vowels)-2], vowels[len(vowels)-1])
}

// ValidOptionalLetter reports whether candidate, the last letter of word, may
// be elided: a vowel must follow a consonant and a consonant must follow a
// vowel.
func ValidOptionalLetter(word string, candidate rune) bool {
	letters := []rune(word)
	if len(letters) < 2 {
		return false
	}
	previous := letters[len(letters)-2]
	if isVowel(candidate) {
		return isConsonant(previous)
	}
	return isVowel(previous)
}

// IsTurkish reports whether every letter of word is in Alphabet.
func IsTurkish(word string) bool {
	for _, r := range word {
		if !strings.ContainsRune(Alphabet, r) {
			return false
		}
	}
	return true
}

// Devoice rewrites a trailing b, c, d or ğ to p, ç, t or k.
func Devoice(word string) string {
	last, size := utf8.DecodeLastRuneInString(word)
	var voiceless rune
	switch last {
	case 'b':
		voiceless = 'p'
	case 'c':
		voiceless = 'ç'
	case 'd':
		voiceless = 't'
	case 'ğ':
		voiceless = 'k'
	default:
		return word
	}
	return word[:len(word)-size] + string(voiceless)
}

func trimLastLetter(word string) string {
	_, size := utf8.DecodeLastRuneInString(word)
	return word[:len(word)-size]
}
