// Package analyzer assembles the similarity pipeline from configuration and
// produces reports for document batches, file paths and uploads.
package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/hyperjump/ruiji/internal/analysis"
	"github.com/hyperjump/ruiji/internal/batch"
	"github.com/hyperjump/ruiji/internal/config"
	"github.com/hyperjump/ruiji/internal/docsource"
	"github.com/hyperjump/ruiji/internal/extract"
	"github.com/hyperjump/ruiji/internal/fileid"
	"github.com/hyperjump/ruiji/internal/metrics"
	"github.com/hyperjump/ruiji/internal/models"
	"github.com/hyperjump/ruiji/internal/report"
	"github.com/hyperjump/ruiji/internal/scoring"
	"github.com/hyperjump/ruiji/pkg/utils"
)

// Analyzer runs batch comparisons and turns them into reports.
type Analyzer struct {
	comparator  *batch.Comparator
	loader      *docsource.Loader
	thresholds  report.Thresholds
	defaultSort string
	logger      *zap.Logger
	now         func() time.Time
}

// New builds an Analyzer from cfg. Metrics are registered on reg when it is non-nil.
func New(cfg *config.Config, logger *zap.Logger, reg prometheus.Registerer) (*Analyzer, error) {
	logger = utils.OrNop(logger)

	stopwords, err := analysis.StopwordsByName(cfg.Analysis.Stopwords)
	if err != nil {
		return nil, fmt.Errorf("stopwords: %w", err)
	}
	tokenizer := analysis.NewTokenizer(stopwords, analysis.WithMinTermLength(cfg.Analysis.MinTermLength))
	scorer := scoring.NewScorer(tokenizer,
		scoring.WithWeights(cfg.Scoring),
		scoring.WithMinTextLength(cfg.Analysis.MinTextLength),
	)

	opts := []batch.Option{batch.WithWorkers(cfg.Batch.Workers), batch.WithLogger(logger)}
	if reg != nil {
		opts = append(opts, batch.WithMetrics(metrics.New(reg)))
	}

	extractor := extract.NewExtractor(
		extract.WithExtensions(cfg.Documents.Extensions),
		extract.WithMaxFileSize(cfg.Documents.MaxFileSize),
	)
	logger.Debug("analyzer initialized",
		zap.String("stopwords", cfg.Analysis.Stopwords),
		zap.Int("stopword_count", stopwords.Len()),
		zap.Int("workers", cfg.Batch.Workers),
	)

	return &Analyzer{
		comparator: batch.NewComparator(scorer, opts...),
		loader:     docsource.NewLoader(extractor, true, logger),
		thresholds: report.Thresholds{
			High:   cfg.Report.HighRiskThreshold,
			Medium: cfg.Report.MediumRiskThreshold,
		},
		defaultSort: cfg.Report.Sort,
		logger:      logger,
		now:         time.Now,
	}, nil
}

// Loader returns the document loader used for paths and uploads.
func (a *Analyzer) Loader() *docsource.Loader { return a.loader }

// AnalyzeDocuments compares every pair of docs and returns a sorted report.
// Documents without an ID get a generated one. sortOrder "" uses the configured default.
// Fewer than two documents yields a *batch.ValidationError.
func (a *Analyzer) AnalyzeDocuments(ctx context.Context, docs []*models.Document, sortOrder string) (*report.Report, error) {
	fileid.EnsureIDs(docs)
	results, err := a.comparator.Analyze(ctx, docs)
	if err != nil {
		return nil, err
	}
	r := report.Build(results, len(docs), a.thresholds, a.now())
	if sortOrder == "" {
		sortOrder = a.defaultSort
	}
	if err := r.Sort(sortOrder); err != nil {
		return nil, err
	}
	return r, nil
}

// AnalyzePaths loads files and directories and analyzes the resulting documents.
// Per-file load errors are returned alongside the report and do not stop the run.
func (a *Analyzer) AnalyzePaths(ctx context.Context, paths []string, sortOrder string) (*report.Report, []error, error) {
	docs, loadErrs := a.loader.Load(ctx, paths)
	if err := ctx.Err(); err != nil {
		return nil, loadErrs, err
	}
	a.logger.Debug("documents loaded", zap.Int("documents", len(docs)), zap.Int("errors", len(loadErrs)))
	r, err := a.AnalyzeDocuments(ctx, docs, sortOrder)
	return r, loadErrs, err
}
