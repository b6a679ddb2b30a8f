// Package docsource turns files and directories into documents ready for analysis.
package docsource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/hyperjump/ruiji/internal/extract"
	"github.com/hyperjump/ruiji/internal/fileid"
	"github.com/hyperjump/ruiji/internal/models"
	"github.com/hyperjump/ruiji/pkg/utils"
)

// ErrExtraction is returned when an accepted file's text cannot be extracted.
var ErrExtraction = errors.New("text extraction failed")

// LoadError reports a file that could not be turned into a document.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string { return fmt.Sprintf("%s: %v", e.Path, e.Err) }

func (e *LoadError) Unwrap() error { return e.Err }

// Loader reads documents from the file system.
type Loader struct {
	extractor *extract.Extractor
	recursive bool
	logger    *zap.Logger
}

// NewLoader returns a loader. Directories are walked recursively when recursive is true.
func NewLoader(extractor *extract.Extractor, recursive bool, logger *zap.Logger) *Loader {
	if extractor == nil {
		extractor = extract.NewExtractor()
	}
	return &Loader{extractor: extractor, recursive: recursive, logger: utils.OrNop(logger)}
}

// Load expands paths (files or directories) into documents sorted by path.
// Files that fail validation or extraction are skipped and reported as
// *LoadError values; only context cancellation is fatal.
func (l *Loader) Load(ctx context.Context, paths []string) ([]*models.Document, []error) {
	files, errs := l.expand(paths)
	docs := make([]*models.Document, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, append(errs, err)
		}
		doc, err := l.LoadFile(path)
		if err != nil {
			l.logger.Warn("skipping document", zap.String("path", path), zap.Error(err))
			errs = append(errs, &LoadError{Path: path, Err: err})
			continue
		}
		docs = append(docs, doc)
	}
	return docs, errs
}

// LoadFile reads one file into a document with a path-derived ID.
func (l *Loader) LoadFile(path string) (*models.Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	text, err := l.extractor.Extract(abs)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("document loaded", zap.String("path", abs), zap.Int64("size", info.Size()))
	return &models.Document{
		ID:      fileid.FileDocID(abs),
		Name:    filepath.Base(abs),
		Content: &text,
		Size:    info.Size(),
	}, nil
}

// FromBytes builds a document from uploaded content after validating its name and size.
func (l *Loader) FromBytes(name string, content []byte) (*models.Document, error) {
	if err := l.extractor.Validate(name, int64(len(content))); err != nil {
		return nil, err
	}
	text, err := l.extractor.ExtractBytes(content, filepath.Ext(name))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", name, ErrExtraction, err)
	}
	return &models.Document{
		ID:      fileid.New(),
		Name:    filepath.Base(name),
		Content: &text,
		Size:    int64(len(content)),
	}, nil
}

// Extractor returns the loader's extractor.
func (l *Loader) Extractor() *extract.Extractor { return l.extractor }

// expand resolves paths to a sorted, de-duplicated list of accepted files.
func (l *Loader) expand(paths []string) ([]string, []error) {
	seen := make(map[string]struct{})
	var files []string
	var errs []error
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		files = append(files, p)
	}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			errs = append(errs, &LoadError{Path: p, Err: err})
			continue
		}
		info, err := os.Stat(abs)
		if err != nil {
			errs = append(errs, &LoadError{Path: p, Err: err})
			continue
		}
		if !info.IsDir() {
			// Explicitly named files are validated by LoadFile, not filtered.
			add(abs)
			continue
		}
		err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != abs && !l.recursive {
					return filepath.SkipDir
				}
				return nil
			}
			if l.extractor.Supports(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			errs = append(errs, &LoadError{Path: p, Err: err})
		}
	}
	sort.Strings(files)
	return files, errs
}
