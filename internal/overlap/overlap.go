// Package overlap scores documents by the overlap of their distinct terms.
//
// Jaccard and WordSimilarity share the intersection-over-union formula but run
// over differently filtered terms and disagree on the empty case. They are kept
// apart on purpose; merging them changes scores.
package overlap

// Splitter splits normalized text into terms.
type Splitter interface {
	Terms(normalized string) []string
}

// Jaccard returns |A∩B| / |A∪B| over the distinct tokens of each sequence,
// or 0 when both are empty.
func Jaccard(tokens1, tokens2 []string) float64 {
	inter, union := intersectionUnion(termSet(tokens1), termSet(tokens2))
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// WordSimilarity splits both normalized texts with s (no stopword filtering)
// and returns the intersection-over-union of their term sets. Two empty sets
// are identical (1); exactly one empty set scores 0.
func WordSimilarity(text1, text2 string, s Splitter) float64 {
	set1 := termSet(s.Terms(text1))
	set2 := termSet(s.Terms(text2))
	switch {
	case len(set1) == 0 && len(set2) == 0:
		return 1
	case len(set1) == 0 || len(set2) == 0:
		return 0
	}
	inter, union := intersectionUnion(set1, set2)
	return float64(inter) / float64(union)
}

func termSet(terms []string) map[string]struct{} {
	set := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		set[t] = struct{}{}
	}
	return set
}

func intersectionUnion(a, b map[string]struct{}) (inter, union int) {
	if len(a) > len(b) {
		a, b = b, a
	}
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	return inter, len(a) + len(b) - inter
}
