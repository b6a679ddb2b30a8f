// Package batch compares every unordered pair of a document collection.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hyperjump/ruiji/internal/metrics"
	"github.com/hyperjump/ruiji/internal/models"
	"github.com/hyperjump/ruiji/pkg/utils"
)

// PairScorer scores one document pair.
type PairScorer interface {
	Compare(doc1, doc2 *models.Document) *models.ComparisonResult
}

// Comparator runs a PairScorer over all pairs of a batch on a bounded worker pool.
type Comparator struct {
	scorer  PairScorer
	workers int
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// Option configures a Comparator.
type Option func(*Comparator)

// WithWorkers bounds concurrent pair computations. n <= 0 uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *Comparator) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithLogger sets the logger for pair failures and batch summaries.
func WithLogger(l *zap.Logger) Option {
	return func(c *Comparator) { c.logger = utils.OrNop(l) }
}

// WithMetrics records batch and pair metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Comparator) { c.metrics = m }
}

// NewComparator returns a comparator using scorer.
func NewComparator(scorer PairScorer, opts ...Option) *Comparator {
	c := &Comparator{
		scorer:  scorer,
		workers: runtime.GOMAXPROCS(0),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PairCount returns the number of unordered pairs of n documents.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

type pair struct{ i, j int }

// pairs lists (i, j), i < j, with i ascending outer and j ascending inner.
func pairs(n int) []pair {
	out := make([]pair, 0, PairCount(n))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, pair{i, j})
		}
	}
	return out
}

// Analyze compares every unordered pair of docs and returns one result per pair
// in generation order: (0,1), (0,2), ..., (1,2), ...
// It returns a *ValidationError when fewer than two documents are given, and
// ctx.Err() without results when ctx is cancelled before all pairs finish.
// A pair whose scoring panics is logged and reported with similarity 0.
func (c *Comparator) Analyze(ctx context.Context, docs []*models.Document) ([]*models.ComparisonResult, error) {
	start := time.Now()
	if len(docs) < MinDocuments {
		c.metrics.ObserveBatch(metrics.OutcomeInvalid, len(docs), time.Since(start))
		return nil, &ValidationError{Documents: len(docs)}
	}

	ps := pairs(len(docs))
	results := make([]*models.ComparisonResult, len(ps))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	scheduled := 0
	for k, p := range ps {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[k] = c.comparePair(docs[p.i], docs[p.j])
			return nil
		})
		scheduled++
	}
	err := g.Wait()
	if err == nil && scheduled < len(ps) {
		err = ctx.Err()
	}
	if err != nil {
		c.metrics.ObserveBatch(metrics.OutcomeCancelled, len(docs), time.Since(start))
		return nil, err
	}

	elapsed := time.Since(start)
	c.metrics.ObserveBatch(metrics.OutcomeOK, len(docs), elapsed)
	c.logger.Debug("batch analyzed",
		zap.Int("documents", len(docs)),
		zap.Int("pairs", len(results)),
		zap.Int("workers", c.workers),
		zap.Duration("elapsed", elapsed),
	)
	return results, nil
}

func (c *Comparator) comparePair(a, b *models.Document) (result *models.ComparisonResult) {
	defer func() {
		if r := recover(); r != nil {
			result = c.failedPair(a, b, fmt.Errorf("panic: %v", r))
		}
		c.metrics.ObservePair(result.Status)
	}()
	result = c.scorer.Compare(a, b)
	if result == nil {
		result = c.failedPair(a, b, fmt.Errorf("scorer returned no result"))
	}
	return result
}

func (c *Comparator) failedPair(a, b *models.Document, err error) *models.ComparisonResult {
	res := models.NewResult(a, b, 0, models.StatusFailed)
	c.logger.Warn("pair comparison failed",
		zap.String("pair", res.ID),
		zap.Error(err),
	)
	return res
}
