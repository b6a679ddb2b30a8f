package batch

import "fmt"

// MinDocuments is the smallest batch that can be analyzed.
const MinDocuments = 2

// ValidationError reports a batch that cannot be analyzed at all.
type ValidationError struct {
	Documents int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("at least %d documents are required for comparison, got %d", MinDocuments, e.Documents)
}
