// Package config provides configuration loading and structs for ruiji.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hyperjump/ruiji/internal/analysis"
	"github.com/hyperjump/ruiji/internal/scoring"
)

// Config holds all configuration for the application.
type Config struct {
	Debug     bool            `yaml:"debug"`
	Server    ServerConfig    `yaml:"server"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
	Scoring   scoring.Weights `yaml:"scoring"`
	Batch     BatchConfig     `yaml:"batch"`
	Documents DocumentsConfig `yaml:"documents"`
	Report    ReportConfig    `yaml:"report"`
	Watch     WatchConfig     `yaml:"watch"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`
}

// AnalysisConfig holds normalization and tokenization settings.
type AnalysisConfig struct {
	// Stopwords is "default", "english", "none", or a path to a stopword file.
	Stopwords     string `yaml:"stopwords"`
	MinTermLength int    `yaml:"min_term_length"`
	MinTextLength int    `yaml:"min_text_length"`
}

// BatchConfig holds pairwise comparison settings.
type BatchConfig struct {
	// Workers bounds concurrent pair comparisons; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// DocumentsConfig holds document acceptance rules.
type DocumentsConfig struct {
	Extensions  []string `yaml:"extensions"`
	MaxFileSize int64    `yaml:"max_file_size"`
}

// ReportConfig holds risk thresholds (percent) and the default sort order.
type ReportConfig struct {
	HighRiskThreshold   float64 `yaml:"high_risk_threshold"`
	MediumRiskThreshold float64 `yaml:"medium_risk_threshold"`
	Sort                string  `yaml:"sort"`
}

// WatchConfig holds directory watch settings.
type WatchConfig struct {
	Directories []string `yaml:"directories"`
	Recursive   *bool    `yaml:"recursive"`
}

// RecursiveOrDefault returns whether to watch recursively; defaults to true when unset.
func (w *WatchConfig) RecursiveOrDefault() bool {
	if w.Recursive != nil {
		return *w.Recursive
	}
	return true
}

// Load reads and parses the config file at path, expands paths, applies defaults and validates.
// Returns an error if the file cannot be read, parsed or is invalid.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	if isStopwordPath(cfg.Analysis.Stopwords) {
		cfg.Analysis.Stopwords = expandPath(cfg.Analysis.Stopwords, configDir)
	}
	for i := range cfg.Watch.Directories {
		cfg.Watch.Directories[i] = expandPath(cfg.Watch.Directories[i], configDir)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks values that defaults cannot repair.
func (c *Config) Validate() error {
	if err := c.Scoring.Validate(); err != nil {
		return fmt.Errorf("scoring: %w", err)
	}
	if c.Report.MediumRiskThreshold > c.Report.HighRiskThreshold {
		return fmt.Errorf("report: medium_risk_threshold %.2f exceeds high_risk_threshold %.2f",
			c.Report.MediumRiskThreshold, c.Report.HighRiskThreshold)
	}
	switch c.Report.Sort {
	case "similarity", "name":
	default:
		return fmt.Errorf("report: unknown sort %q", c.Report.Sort)
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("batch: workers must not be negative")
	}
	return nil
}

func isStopwordPath(name string) bool {
	switch name {
	case "", analysis.StopwordsDefault, analysis.StopwordsEnglish, analysis.StopwordsNone:
		return false
	}
	return true
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
