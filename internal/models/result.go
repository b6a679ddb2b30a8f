package models

// Status records why a comparison produced its score. A 0.0 similarity can mean
// dissimilar content or a pair that could not be scored; Status tells them apart.
type Status string

const (
	// StatusScored means all three metrics were computed.
	StatusScored Status = "scored"
	// StatusIdentical means both texts normalized to the same string.
	StatusIdentical Status = "identical"
	// StatusMissingContent means at least one document had no usable content.
	StatusMissingContent Status = "missing_content"
	// StatusTooShort means at least one normalized text was below the length floor.
	StatusTooShort Status = "too_short"
	// StatusFailed means scoring failed unexpectedly and was replaced by 0.
	StatusFailed Status = "failed"
)

// ScoreBreakdown holds the component scores of a scored pair, each in [0, 1].
type ScoreBreakdown struct {
	Cosine  float64 `json:"cosine"`
	Jaccard float64 `json:"jaccard"`
	Word    float64 `json:"word"`
}

// ComparisonResult is the similarity of one unordered document pair.
type ComparisonResult struct {
	ID    string    `json:"id"`
	File1 *Document `json:"file1"`
	File2 *Document `json:"file2"`
	// Similarity is in [0, 100], rounded to two decimals.
	Similarity float64         `json:"similarity"`
	Status     Status          `json:"status"`
	Breakdown  *ScoreBreakdown `json:"breakdown,omitempty"`
}

// PairID returns the deterministic result id for a pair of documents.
func PairID(a, b *Document) string {
	var id1, id2 DocumentID
	if a != nil {
		id1 = a.ID
	}
	if b != nil {
		id2 = b.ID
	}
	return string(id1) + "-" + string(id2)
}

// NewResult builds a result for the pair with the given similarity and status.
func NewResult(a, b *Document, similarity float64, status Status) *ComparisonResult {
	return &ComparisonResult{
		ID:         PairID(a, b),
		File1:      a,
		File2:      b,
		Similarity: similarity,
		Status:     status,
	}
}
