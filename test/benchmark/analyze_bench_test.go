package benchmark

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/hyperjump/ruiji/internal/analysis"
	"github.com/hyperjump/ruiji/internal/batch"
	"github.com/hyperjump/ruiji/internal/models"
	"github.com/hyperjump/ruiji/internal/scoring"
)

var words = strings.Fields("river mountain forest desert ocean valley canyon glacier meadow island " +
	"volcano prairie tundra lagoon plateau marsh delta estuary savanna reef")

func essay(seed, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = words[(seed*7+i*3)%len(words)]
	}
	return strings.Join(parts, " ")
}

func BenchmarkNormalize(b *testing.B) {
	text := strings.Repeat("Hello, World! Café déjà-vu; numbers 123 and_underscores. ", 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = analysis.Normalize(text)
	}
}

func BenchmarkScoreTexts(b *testing.B) {
	s := scoring.NewScorer(nil)
	t1, t2 := essay(1, 500), essay(2, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _, _ = s.ScoreTexts(t1, t2)
	}
}

func BenchmarkComparatorAnalyze(b *testing.B) {
	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			docs := make([]*models.Document, 30)
			for i := range docs {
				docs[i] = models.NewDocument(models.DocumentID(fmt.Sprint(i)), "", essay(i, 200))
			}
			c := batch.NewComparator(scoring.NewScorer(nil), batch.WithWorkers(workers))
			ctx := context.Background()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := c.Analyze(ctx, docs); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
