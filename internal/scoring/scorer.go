// Package scoring combines the component similarity metrics into one score per document pair.
package scoring

import (
	"fmt"
	"unicode/utf8"

	"github.com/hyperjump/ruiji/internal/analysis"
	"github.com/hyperjump/ruiji/internal/models"
	"github.com/hyperjump/ruiji/internal/overlap"
	"github.com/hyperjump/ruiji/internal/vector"
	"github.com/hyperjump/ruiji/pkg/utils"
)

// Scorer compares two documents. It holds no per-pair state and is safe for concurrent use.
type Scorer struct {
	tokenizer     *analysis.Tokenizer
	weights       Weights
	minTextLength int
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithWeights sets the component weights.
func WithWeights(w Weights) Option {
	return func(s *Scorer) { s.weights = w }
}

// WithMinTextLength sets the length floor of normalized text.
func WithMinTextLength(n int) Option {
	return func(s *Scorer) {
		if n >= 0 {
			s.minTextLength = n
		}
	}
}

// NewScorer returns a scorer using tokenizer. A nil tokenizer uses the default stopwords.
func NewScorer(tokenizer *analysis.Tokenizer, opts ...Option) *Scorer {
	if tokenizer == nil {
		tokenizer = analysis.NewTokenizer(analysis.DefaultStopwords())
	}
	s := &Scorer{
		tokenizer:     tokenizer,
		weights:       DefaultWeights(),
		minTextLength: DefaultMinTextLength,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Compare scores a document pair. It never fails: unusable input and
// unexpected errors resolve to 0 with a Status saying why.
func (s *Scorer) Compare(doc1, doc2 *models.Document) *models.ComparisonResult {
	text1, ok1 := doc1.Text()
	text2, ok2 := doc2.Text()
	if !ok1 || !ok2 {
		return models.NewResult(doc1, doc2, MinSimilarity, models.StatusMissingContent)
	}

	similarity, status, breakdown, err := s.ScoreTexts(text1, text2)
	if err != nil {
		return models.NewResult(doc1, doc2, MinSimilarity, models.StatusFailed)
	}
	result := models.NewResult(doc1, doc2, utils.Round2(similarity), status)
	result.Breakdown = breakdown
	return result
}

// ScoreTexts scores two raw texts and returns the clamped, unrounded similarity.
// breakdown is nil unless the pair was fully scored.
func (s *Scorer) ScoreTexts(raw1, raw2 string) (similarity float64, status models.Status, breakdown *models.ScoreBreakdown, err error) {
	defer func() {
		if r := recover(); r != nil {
			similarity, status, breakdown = MinSimilarity, models.StatusFailed, nil
			err = fmt.Errorf("score texts: %v", r)
		}
	}()

	text1 := analysis.Normalize(raw1)
	text2 := analysis.Normalize(raw2)
	if text1 == text2 {
		return IdenticalSimilarity, models.StatusIdentical, nil, nil
	}
	if utf8.RuneCountInString(text1) < s.minTextLength || utf8.RuneCountInString(text2) < s.minTextLength {
		return MinSimilarity, models.StatusTooShort, nil, nil
	}

	tokens1 := s.tokenizer.Tokenize(text1)
	tokens2 := s.tokenizer.Tokenize(text2)
	b := &models.ScoreBreakdown{
		Cosine:  vector.CosineSimilarity(tokens1, tokens2),
		Jaccard: overlap.Jaccard(tokens1, tokens2),
		Word:    overlap.WordSimilarity(text1, text2, s.tokenizer),
	}
	combined := s.weights.Combine(b.Cosine, b.Jaccard, b.Word)
	return utils.Clamp(combined, MinSimilarity, MaxSimilarity), models.StatusScored, b, nil
}
