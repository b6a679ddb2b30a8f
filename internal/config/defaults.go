package config

import (
	"github.com/hyperjump/ruiji/internal/analysis"
	"github.com/hyperjump/ruiji/internal/scoring"
)

// DefaultExtensions are the document types accepted when none are configured.
var DefaultExtensions = []string{".txt", ".md", ".doc", ".docx", ".odt", ".rtf", ".pdf", ".xlsx", ".pptx"}

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.MaxUploadBytes == 0 {
		cfg.Server.MaxUploadBytes = 50 << 20
	}
	if cfg.Analysis.Stopwords == "" {
		cfg.Analysis.Stopwords = analysis.StopwordsDefault
	}
	if cfg.Analysis.MinTermLength == 0 {
		cfg.Analysis.MinTermLength = analysis.DefaultMinTermLength
	}
	if cfg.Analysis.MinTextLength == 0 {
		cfg.Analysis.MinTextLength = scoring.DefaultMinTextLength
	}
	// Weights are all-or-nothing: a partial set is kept as written.
	if cfg.Scoring == (scoring.Weights{}) {
		cfg.Scoring = scoring.DefaultWeights()
	}
	if cfg.Documents.Extensions == nil {
		cfg.Documents.Extensions = append([]string(nil), DefaultExtensions...)
	}
	if cfg.Documents.MaxFileSize == 0 {
		cfg.Documents.MaxFileSize = 5 << 20
	}
	if cfg.Report.HighRiskThreshold == 0 {
		cfg.Report.HighRiskThreshold = 70
	}
	if cfg.Report.MediumRiskThreshold == 0 {
		cfg.Report.MediumRiskThreshold = 40
	}
	if cfg.Report.Sort == "" {
		cfg.Report.Sort = "similarity"
	}
	// Recursive defaults to true when unset (nil).
	if len(cfg.Watch.Directories) > 0 && cfg.Watch.Recursive == nil {
		t := true
		cfg.Watch.Recursive = &t
	}
}
