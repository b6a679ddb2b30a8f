package analyzer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hyperjump/ruiji/internal/batch"
	"github.com/hyperjump/ruiji/internal/config"
	"github.com/hyperjump/ruiji/internal/models"
	"github.com/hyperjump/ruiji/internal/report"
)

func newTestAnalyzer(t *testing.T, mutate func(*config.Config)) *Analyzer {
	t.Helper()
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	if mutate != nil {
		mutate(cfg)
	}
	a, err := New(cfg, nil, prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a.now = func() time.Time { return time.Unix(1700000000, 0) }
	return a
}

func TestAnalyzer_AnalyzeDocuments(t *testing.T) {
	a := newTestAnalyzer(t, nil)
	docs := []*models.Document{
		models.NewDocument("1", "a.txt", "the quick brown fox jumps over the lazy dog"),
		models.NewDocument("2", "b.txt", "the quick brown fox jumps over the lazy dog"),
		models.NewDocument("3", "c.txt", "completely unrelated sentence about gardening tools"),
	}
	r, err := a.AnalyzeDocuments(context.Background(), docs, "")
	if err != nil {
		t.Fatalf("AnalyzeDocuments: %v", err)
	}
	if len(r.Results) != 3 {
		t.Fatalf("len(Results) = %d, want 3", len(r.Results))
	}
	top := r.Results[0]
	if top.Similarity != 100 || top.Status != models.StatusIdentical || top.Risk != report.RiskHigh {
		t.Errorf("top row = %+v, want identical 100 high", top)
	}
	if r.Summary.Documents != 3 || r.Summary.High != 1 {
		t.Errorf("summary = %+v", r.Summary)
	}
	if !r.Timestamp.Equal(time.Unix(1700000000, 0)) {
		t.Errorf("timestamp = %v", r.Timestamp)
	}
}

func TestAnalyzer_AnalyzeDocuments_generatesIDs(t *testing.T) {
	a := newTestAnalyzer(t, nil)
	docs := []*models.Document{
		models.NewDocument("", "a.txt", "first document body text"),
		models.NewDocument("", "b.txt", "second document body text"),
	}
	if _, err := a.AnalyzeDocuments(context.Background(), docs, ""); err != nil {
		t.Fatal(err)
	}
	if docs[0].ID == "" || docs[1].ID == "" || docs[0].ID == docs[1].ID {
		t.Errorf("ids = %q, %q", docs[0].ID, docs[1].ID)
	}
}

func TestAnalyzer_AnalyzeDocuments_tooFew(t *testing.T) {
	a := newTestAnalyzer(t, nil)
	_, err := a.AnalyzeDocuments(context.Background(), []*models.Document{models.NewDocument("1", "a", "x")}, "")
	var ve *batch.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want *batch.ValidationError", err)
	}
}

func TestAnalyzer_AnalyzeDocuments_sortByName(t *testing.T) {
	a := newTestAnalyzer(t, nil)
	docs := []*models.Document{
		models.NewDocument("1", "zeta.txt", "alpha beta gamma delta epsilon"),
		models.NewDocument("2", "beta.txt", "alpha beta gamma delta epsilon"),
		models.NewDocument("3", "alpha.txt", "something else entirely here"),
	}
	r, err := a.AnalyzeDocuments(context.Background(), docs, report.SortName)
	if err != nil {
		t.Fatal(err)
	}
	if r.Results[0].File1 != "beta.txt" || r.Results[2].File1 != "zeta.txt" {
		t.Errorf("unexpected order: %+v", r.Results)
	}
}

func TestAnalyzer_AnalyzePaths(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write("one.txt", "students must cite every source they use in their essays")
	write("two.txt", "students must cite every source they use in their essays")
	write("three.md", "a recipe for bread requires flour water salt and yeast")
	write("skip.png", "not a document")

	a := newTestAnalyzer(t, nil)
	r, loadErrs, err := a.AnalyzePaths(context.Background(), []string{dir}, "")
	if err != nil {
		t.Fatalf("AnalyzePaths: %v", err)
	}
	if len(loadErrs) != 0 {
		t.Errorf("load errors: %v", loadErrs)
	}
	if r.Summary.Documents != 3 || len(r.Results) != 3 {
		t.Fatalf("summary = %+v", r.Summary)
	}
	if r.Results[0].Similarity != 100 {
		t.Errorf("top similarity = %v, want 100", r.Results[0].Similarity)
	}
}

func TestNew_invalidStopwordFile(t *testing.T) {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.Analysis.Stopwords = filepath.Join(t.TempDir(), "missing.txt")
	if _, err := New(cfg, nil, nil); err == nil {
		t.Fatal("expected error for missing stopword file")
	}
}
