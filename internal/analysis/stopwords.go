package analysis

import (
	"fmt"
	"sort"

	"github.com/blevesearch/bleve/v2/analysis"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
)

// Stopword set names accepted by StopwordsByName.
const (
	StopwordsDefault = "default"
	StopwordsEnglish = "english"
	StopwordsNone    = "none"
)

// defaultStopwords are the functional words excluded by the tokenizer by default:
// articles, conjunctions, prepositions, auxiliary verbs, pronouns and demonstratives.
var defaultStopwords = []string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with", "by",
	"is", "are", "was", "were", "be", "been", "being", "have", "has", "had", "do", "does", "did",
	"will", "would", "should", "could", "can", "may", "might", "must", "shall",
	"i", "you", "he", "she", "it", "we", "they", "me", "him", "her", "us", "them",
	"this", "that", "these", "those",
}

// StopwordSet is a read-only set of terms. It is safe for concurrent reads.
type StopwordSet struct {
	words map[string]struct{}
}

// NewStopwordSet returns a set containing words.
func NewStopwordSet(words ...string) *StopwordSet {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return &StopwordSet{words: m}
}

// DefaultStopwords returns the default stopword set.
func DefaultStopwords() *StopwordSet {
	return NewStopwordSet(defaultStopwords...)
}

// EnglishStopwords returns bleve's extended English stopword list.
func EnglishStopwords() (*StopwordSet, error) {
	tm := analysis.NewTokenMap()
	if err := tm.LoadBytes(en.EnglishStopWords); err != nil {
		return nil, fmt.Errorf("load english stopwords: %w", err)
	}
	return fromTokenMap(tm), nil
}

// LoadStopwords reads a stopword file: one word per line, "#" or "|" comments allowed.
func LoadStopwords(path string) (*StopwordSet, error) {
	tm := analysis.NewTokenMap()
	if err := tm.LoadFile(path); err != nil {
		return nil, fmt.Errorf("load stopwords %s: %w", path, err)
	}
	return fromTokenMap(tm), nil
}

// StopwordsByName resolves a configured stopword source: "default", "english",
// "none", or a path to a stopword file.
func StopwordsByName(name string) (*StopwordSet, error) {
	switch name {
	case "", StopwordsDefault:
		return DefaultStopwords(), nil
	case StopwordsEnglish:
		return EnglishStopwords()
	case StopwordsNone:
		return NewStopwordSet(), nil
	default:
		return LoadStopwords(name)
	}
}

func fromTokenMap(tm analysis.TokenMap) *StopwordSet {
	m := make(map[string]struct{}, len(tm))
	for w, ok := range tm {
		if ok {
			m[w] = struct{}{}
		}
	}
	return &StopwordSet{words: m}
}

// Contains reports whether word is a stopword. A nil set contains nothing.
func (s *StopwordSet) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[word]
	return ok
}

// Len returns the number of stopwords.
func (s *StopwordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// Words returns the stopwords in sorted order.
func (s *StopwordSet) Words() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
