package e2e

import (
	"path/filepath"
	"testing"
)

func TestBuildCorpus(t *testing.T) {
	c := BuildCorpus()
	if got, want := len(c.Submissions), len(essays)+copies; got != want {
		t.Fatalf("submissions = %d, want %d", got, want)
	}
	if len(c.CopiedPairs) != copies {
		t.Errorf("copied pairs = %d, want %d", len(c.CopiedPairs), copies)
	}
	seen := make(map[string]bool)
	for _, s := range c.Submissions {
		if seen[s.Name] {
			t.Errorf("duplicate name %s", s.Name)
		}
		seen[s.Name] = true
		if s.Content == "" {
			t.Errorf("%s has no content", s.Name)
		}
	}
	for orig, cp := range c.CopiedPairs {
		if !seen[orig] || !seen[cp] {
			t.Errorf("pair %s/%s refers to unknown submissions", orig, cp)
		}
		if filepath.Ext(orig) == filepath.Ext(cp) {
			t.Errorf("pair %s/%s shares a file type", orig, cp)
		}
	}
}
