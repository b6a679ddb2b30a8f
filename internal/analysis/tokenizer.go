package analysis

import (
	"strings"
	"unicode/utf8"
)

// DefaultMinTermLength is the shortest term kept by the tokenizer (terms must be longer than 2).
const DefaultMinTermLength = 3

// Tokenizer splits normalized text into terms.
type Tokenizer struct {
	stopwords     *StopwordSet
	minTermLength int
}

// TokenizerOption configures a Tokenizer.
type TokenizerOption func(*Tokenizer)

// WithMinTermLength sets the minimum term length in runes. Values below 1 are ignored.
func WithMinTermLength(n int) TokenizerOption {
	return func(t *Tokenizer) {
		if n > 0 {
			t.minTermLength = n
		}
	}
}

// NewTokenizer returns a tokenizer that drops terms in stopwords. A nil set drops none.
func NewTokenizer(stopwords *StopwordSet, opts ...TokenizerOption) *Tokenizer {
	t := &Tokenizer{stopwords: stopwords, minTermLength: DefaultMinTermLength}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tokenize returns the terms of normalized text in order of occurrence,
// keeping terms that are long enough and not stopwords.
func (t *Tokenizer) Tokenize(normalized string) []string {
	return t.split(normalized, true)
}

// Terms returns the terms of normalized text filtered by length only.
func (t *Tokenizer) Terms(normalized string) []string {
	return t.split(normalized, false)
}

func (t *Tokenizer) split(text string, dropStopwords bool) []string {
	parts := strings.Split(text, " ")
	terms := make([]string, 0, len(parts))
	for _, p := range parts {
		if utf8.RuneCountInString(p) < t.minTermLength {
			continue
		}
		if dropStopwords && t.stopwords.Contains(p) {
			continue
		}
		terms = append(terms, p)
	}
	return terms
}
