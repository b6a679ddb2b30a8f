// Package fileid provides document IDs: stable ones derived from file paths and random ones for uploads.
package fileid

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/hyperjump/ruiji/internal/models"
)

const (
	filePrefix = "file:"
	// pathHashLen is the number of hex characters of the path hash kept in the ID.
	pathHashLen = 16
)

// FileDocID returns a stable document ID for the given path.
// Same cleaned path always yields the same ID.
func FileDocID(path string) models.DocumentID {
	hash := sha256.Sum256([]byte(filepath.Clean(path)))
	return models.DocumentID(filePrefix + hex.EncodeToString(hash[:])[:pathHashLen])
}

// New returns a random document ID.
func New() models.DocumentID {
	return models.DocumentID(uuid.NewString())
}

// EnsureIDs assigns a random ID to every document without one.
func EnsureIDs(docs []*models.Document) {
	for _, d := range docs {
		if d != nil && d.ID == "" {
			d.ID = New()
		}
	}
}
