package slug

import "slices"

// stopwords is matched against lower-cased words.
var stopwords = []string{
	"a", "an", "and", "are", "as", "at", "be", "by", "for", "from",
	"has", "he", "in", "is", "it", "its", "of", "on", "that", "the",
	"to", "was", "will", "with", "the", "this", "but", "they", "have",
}

// IsStopword reports whether word is one of the common English words
// removed by RemoveStopwords. The comparison is case-insensitive.
func IsStopword(word string) bool {
	return isStopword(newLowerCaser().String(word))
}

func isStopword(lower string) bool {
	return slices.Contains(stopwords, lower)
}
