package scoring

import "fmt"

// Default weights of the component metrics in the final score.
const (
	DefaultCosineWeight  = 0.5
	DefaultJaccardWeight = 0.3
	DefaultWordWeight    = 0.2
)

// Score bounds and short-circuit values, in percent.
const (
	MinSimilarity       = 0.0
	MaxSimilarity       = 100.0
	IdenticalSimilarity = 100.0
)

// DefaultMinTextLength is the normalized length, in runes, below which a pair is not scored.
const DefaultMinTextLength = 10

// Weights are the coefficients of the component metrics.
type Weights struct {
	Cosine  float64 `yaml:"cosine_weight"`
	Jaccard float64 `yaml:"jaccard_weight"`
	Word    float64 `yaml:"word_weight"`
}

// DefaultWeights returns 0.5 cosine, 0.3 Jaccard, 0.2 word similarity.
func DefaultWeights() Weights {
	return Weights{
		Cosine:  DefaultCosineWeight,
		Jaccard: DefaultJaccardWeight,
		Word:    DefaultWordWeight,
	}
}

// Validate rejects negative weights and an all-zero set.
func (w Weights) Validate() error {
	if w.Cosine < 0 || w.Jaccard < 0 || w.Word < 0 {
		return fmt.Errorf("weights must be non-negative: %+v", w)
	}
	if w.Cosine+w.Jaccard+w.Word == 0 {
		return fmt.Errorf("at least one weight must be positive")
	}
	return nil
}

// Combine returns the weighted sum of the component scores as a percentage, unclamped.
func (w Weights) Combine(cosine, jaccard, word float64) float64 {
	return (cosine*w.Cosine + jaccard*w.Jaccard + word*w.Word) * 100
}
