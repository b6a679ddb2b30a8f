package vector

import "math"

// InnerProduct returns the dot product of two equal-length vectors, or 0 otherwise.
func InnerProduct(a, b []int) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot
}

// L2Norm returns the Euclidean magnitude of a vector.
func L2Norm(x []int) float64 {
	var sum float64
	for _, v := range x {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum)
}

// Cosine returns the cosine of the angle between a and b, or 0 when either has zero magnitude.
func Cosine(a, b []int) float64 {
	magnitude := L2Norm(a) * L2Norm(b)
	if magnitude == 0 {
		return 0
	}
	return InnerProduct(a, b) / magnitude
}

// CosineSimilarity builds term-frequency vectors for two token sequences over
// their shared vocabulary and returns their cosine similarity in [0, 1].
// An empty vocabulary yields 0.
func CosineSimilarity(tokens1, tokens2 []string) float64 {
	vocab := NewVocabulary(tokens1, tokens2)
	if vocab.Len() == 0 {
		return 0
	}
	return Cosine(vocab.TermFrequencies(tokens1), vocab.TermFrequencies(tokens2))
}
