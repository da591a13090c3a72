// Package keywords turns a free-text survey column into the word→frequency
// map the word-cloud renderer consumes. The extractor is independent of any
// rendering capability and stays usable when no renderer is present.
package keywords

import (
	"sort"
	"strings"
	"unicode"

	"github.com/BertrandGueri09/Pojet-personnel-recherche/domain/survey"
)

// DefaultMinLength is the minimum token length kept by a default extractor.
const DefaultMinLength = 3

// stopwords is the closed list of French function words excluded from
// keyword counts.
var stopwords = []string{
	"le", "de", "un", "une", "et", "en", "à", "dans", "sur", "au", "aux", "du", "des", "la", "les",
	"je", "tu", "il", "elle", "nous", "vous", "ils", "elles", "est", "sont", "être", "avoir", "pour",
	"ce", "cet", "cette", "ces", "qui", "quoi", "dont", "où", "comment", "pourquoi", "quand",
	"avec", "par", "plus", "moins", "très", "tres", "bien", "mal", "ne", "pas", "se", "son", "sa", "ses",
}

// DefaultStopwords returns a fresh copy of the built-in French stopword set.
func DefaultStopwords() map[string]struct{} {
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[w] = struct{}{}
	}
	return set
}

// Extractor tokenizes text cells and counts keyword frequencies. MinLength
// and Stopwords are fixed configuration in the running app but parameters
// here so behavior stays testable.
type Extractor struct {
	MinLength int
	Stopwords map[string]struct{}
}

// NewExtractor returns an extractor with the default minimum length and
// stopword set.
func NewExtractor() *Extractor {
	return &Extractor{
		MinLength: DefaultMinLength,
		Stopwords: DefaultStopwords(),
	}
}

// Extract counts normalized tokens across every present value of a column.
// Tokens are lowercased, punctuation collapses to spaces (accented letters
// survive), and tokens shorter than MinLength or in the stopword set are
// dropped. An empty view or column yields an empty map.
func (e *Extractor) Extract(view survey.View, column string) map[string]int {
	freq := map[string]int{}
	for _, rec := range view.Records {
		text, ok := rec.String(column)
		if !ok {
			continue
		}
		for _, token := range e.tokenize(text) {
			freq[token]++
		}
	}
	return freq
}

func (e *Extractor) tokenize(text string) []string {
	normalized := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
			return unicode.ToLower(r)
		default:
			// Punctuation (including both apostrophe forms) becomes a
			// token boundary.
			return ' '
		}
	}, text)

	tokens := []string{}
	for _, word := range strings.Fields(normalized) {
		if len([]rune(word)) < e.MinLength {
			continue
		}
		if _, stop := e.Stopwords[word]; stop {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// Keyword is one entry of a ranked keyword list.
type Keyword struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Rank orders a frequency map by descending count, alphabetical among equal
// counts, truncated to at most n entries (n <= 0 means no truncation).
func Rank(freq map[string]int, n int) []Keyword {
	ranked := make([]Keyword, 0, len(freq))
	for word, count := range freq {
		ranked = append(ranked, Keyword{Word: word, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
