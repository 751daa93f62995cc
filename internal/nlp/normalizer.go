package nlp

import (
	"strings"
	"unicode"
)

// suffixRules drive the stemmer. Rules are tried in order and only the first
// match is applied; minLen is the shortest word a rule may touch.
var suffixRules = []struct {
	suffix  string
	replace string
	minLen  int
}{
	{"ies", "y", 6},
	{"ing", "", 7},
	{"ed", "", 6},
	{"ful", "", 7},
	{"ness", "", 8},
	{"ly", "", 6},
	{"ous", "", 7},
	{"ive", "", 7},
	{"er", "", 6},
	{"est", "", 7},
	{"s", "", 5},
}

// Normalize tokenizes raw text into stemmed lexical terms: lowercase,
// punctuation stripped, short tokens dropped, suffix-stemmed, stop words
// removed. Always returns a (possibly empty) slice.
func Normalize(text string) []string {
	lowered := strings.ToLower(text)

	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, lowered)

	var terms []string
	for _, token := range strings.Fields(cleaned) {
		if len(token) <= 2 {
			continue
		}
		token = stem(token)
		if stopWords[token] {
			continue
		}
		terms = append(terms, token)
	}
	return terms
}

func stem(word string) string {
	for _, rule := range suffixRules {
		if len(word) >= rule.minLen && strings.HasSuffix(word, rule.suffix) {
			return word[:len(word)-len(rule.suffix)] + rule.replace
		}
	}
	return word
}
