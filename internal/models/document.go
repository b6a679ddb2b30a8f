// Package models defines core data structures for documents, comparison results,
// and analysis requests.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// DocumentID is an opaque document identifier supplied by the caller or generated.
// In JSON it accepts both strings and numbers.
type DocumentID string

// UnmarshalJSON accepts a JSON string or number.
func (id *DocumentID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = DocumentID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("document id must be a string or number: %w", err)
	}
	*id = DocumentID(n.String())
	return nil
}

// Document is one input unit of an analysis. The engine only reads it.
type Document struct {
	ID   DocumentID `json:"id"`
	Name string     `json:"name"`
	// Content is nil when the document source could not supply text.
	Content *string `json:"content,omitempty"`
	// Size is the byte count of the source file; informational only.
	Size int64 `json:"size"`
}

// NewDocument returns a document with the given content.
func NewDocument(id DocumentID, name, content string) *Document {
	return &Document{ID: id, Name: name, Content: &content, Size: int64(len(content))}
}

// Text returns the document content and whether it is present and valid UTF-8.
// Empty content is present.
func (d *Document) Text() (string, bool) {
	if d == nil || d.Content == nil || !utf8.ValidString(*d.Content) {
		return "", false
	}
	return *d.Content, true
}
