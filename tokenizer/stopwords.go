package tokenizer

type StopWords map[string]struct{}

func newStopWords(words ...string) StopWords {
	sw := make(StopWords, len(words))
	for _, word := range words {
		sw[word] = struct{}{}
	}
	return sw
}

var stopWords = map[Language]StopWords{
	TURKISH: newStopWords(
		"acaba", "ama", "aslında", "az", "bazı", "belki", "biri", "birkaç", "birşey", "biz", "bu",
		"çok", "çünkü", "da", "daha", "de", "defa", "diye", "eğer", "en", "gibi", "hem", "hep",
		"hepsi", "her", "hiç", "için", "ile", "ise", "kez", "ki", "kim", "mı", "mi", "mu", "mü",
		"nasıl", "ne", "neden", "nerde", "nerede", "nereye", "niçin", "niye", "o", "sanki", "şey",
		"siz", "şu", "tüm", "ve", "veya", "ya", "yani",
	),
	ENGLISH: newStopWords(
		"a", "an", "and", "are", "as", "at", "be", "but", "by", "for", "if", "in", "into", "is",
		"it", "no", "not", "of", "on", "or", "such", "that", "the", "their", "then", "there",
		"these", "they", "this", "to", "was", "will", "with",
	),
}

// IsStopWord reports whether word is a stop word of language.
func IsStopWord(language Language, word string) bool {
	_, ok := stopWords[language][word]
	return ok
}
