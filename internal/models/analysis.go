package models

import "fmt"

// AnalyzeRequest is the body of a JSON analysis request.
type AnalyzeRequest struct {
	Documents []*Document `json:"documents"`
	// Sort is "similarity" (default) or "name".
	Sort string `json:"sort,omitempty"`
}

// Validate checks the request shape. The minimum document count is enforced by the
// batch comparator, not here.
func (r *AnalyzeRequest) Validate() error {
	for i, d := range r.Documents {
		if d == nil {
			return fmt.Errorf("document %d is null", i)
		}
	}
	switch r.Sort {
	case "", "similarity", "name":
	default:
		return fmt.Errorf("unknown sort %q", r.Sort)
	}
	return nil
}
