// Package extract validates document files and extracts their plain text.
package extract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// ErrUnsupportedType is returned for files whose extension is not accepted.
	ErrUnsupportedType = errors.New("file type not supported")
	// ErrFileTooLarge is returned for files above the size limit.
	ErrFileTooLarge = errors.New("file too large")
)

// Extractor extracts plain text from document files of accepted types.
type Extractor struct {
	extensions map[string]struct{}
	maxSize    int64
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithExtensions restricts accepted files to exts (leading dot optional, case-insensitive).
// An empty list accepts every extension.
func WithExtensions(exts []string) Option {
	return func(e *Extractor) {
		e.extensions = make(map[string]struct{}, len(exts))
		for _, ext := range exts {
			e.extensions[normalizeExt(ext)] = struct{}{}
		}
	}
}

// WithMaxFileSize rejects files larger than n bytes. n <= 0 disables the limit.
func WithMaxFileSize(n int64) Option {
	return func(e *Extractor) { e.maxSize = n }
}

// NewExtractor returns an Extractor. Without options it accepts every type and size.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Supports reports whether the file name has an accepted extension.
func (e *Extractor) Supports(name string) bool {
	if len(e.extensions) == 0 {
		return true
	}
	_, ok := e.extensions[normalizeExt(filepath.Ext(name))]
	return ok
}

// Validate checks the file type and size of a named file.
func (e *Extractor) Validate(name string, size int64) error {
	if !e.Supports(name) {
		return fmt.Errorf("%s: %w (accepted: %s)", filepath.Base(name), ErrUnsupportedType, strings.Join(e.Extensions(), ", "))
	}
	if e.maxSize > 0 && size > e.maxSize {
		return fmt.Errorf("%s: %w (%d bytes, max %d)", filepath.Base(name), ErrFileTooLarge, size, e.maxSize)
	}
	return nil
}

// Extensions returns the accepted extensions with a leading dot.
func (e *Extractor) Extensions() []string {
	out := make([]string, 0, len(e.extensions))
	for ext := range e.extensions {
		out = append(out, "."+ext)
	}
	sort.Strings(out)
	return out
}

// Extract validates and reads the file at path and returns its text content.
func (e *Extractor) Extract(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat file: %w", err)
	}
	if err := e.Validate(path, info.Size()); err != nil {
		return "", err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return e.ExtractBytes(content, filepath.Ext(path))
}

// ExtractBytes extracts text from content based on the given extension
// (leading dot optional). Unknown extensions are treated as plain text.
func (e *Extractor) ExtractBytes(content []byte, ext string) (string, error) {
	switch normalizeExt(ext) {
	case "pdf":
		return extractPDF(content)
	case "docx":
		return extractDOCX(content)
	case "odt", "rtf":
		return extractWithCat(content)
	case "doc":
		return extractLegacyDoc(content)
	case "xlsx":
		return extractExcel(content)
	case "pptx":
		return extractPPTX(content)
	default:
		return extractPlain(content)
	}
}

func normalizeExt(ext string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(ext)), ".")
}
