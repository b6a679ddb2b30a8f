// Package vector implements the term-frequency vector space model and cosine similarity.
package vector

// Vocabulary is the distinct terms of one comparison in first-seen order.
// Both term-frequency vectors of a pair are indexed by the same Vocabulary, so
// position i always refers to the same term.
type Vocabulary struct {
	terms []string
	index map[string]int
}

// NewVocabulary collects the distinct terms of seqs in insertion order.
func NewVocabulary(seqs ...[]string) *Vocabulary {
	v := &Vocabulary{index: make(map[string]int)}
	for _, seq := range seqs {
		for _, term := range seq {
			if _, ok := v.index[term]; ok {
				continue
			}
			v.index[term] = len(v.terms)
			v.terms = append(v.terms, term)
		}
	}
	return v
}

// Len returns the number of distinct terms.
func (v *Vocabulary) Len() int { return len(v.terms) }

// Terms returns the terms in index order.
func (v *Vocabulary) Terms() []string { return append([]string(nil), v.terms...) }

// Index returns the position of term, or -1 if absent.
func (v *Vocabulary) Index(term string) int {
	if i, ok := v.index[term]; ok {
		return i
	}
	return -1
}

// TermFrequencies counts each vocabulary term in tokens. Tokens outside the
// vocabulary are ignored.
func (v *Vocabulary) TermFrequencies(tokens []string) []int {
	vec := make([]int, len(v.terms))
	for _, t := range tokens {
		if i, ok := v.index[t]; ok {
			vec[i]++
		}
	}
	return vec
}
