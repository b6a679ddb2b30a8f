// Package report turns comparison results into a risk-classified report
// that can be sorted, summarized and exported as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/hyperjump/ruiji/internal/models"
	"github.com/hyperjump/ruiji/pkg/utils"
)

// Risk is the plagiarism risk of a pair.
type Risk string

const (
	RiskHigh   Risk = "high"
	RiskMedium Risk = "medium"
	RiskLow    Risk = "low"
)

// Sort orders.
const (
	SortSimilarity = "similarity"
	SortName       = "name"
)

const (
	DefaultHighThreshold   = 70.0
	DefaultMediumThreshold = 40.0
)

// Thresholds are the lower bounds (inclusive, percent) of the high and medium risk levels.
type Thresholds struct {
	High   float64
	Medium float64
}

// DefaultThresholds returns 70 / 40.
func DefaultThresholds() Thresholds {
	return Thresholds{High: DefaultHighThreshold, Medium: DefaultMediumThreshold}
}

// Classify returns the risk level of a similarity score.
func (t Thresholds) Classify(similarity float64) Risk {
	switch {
	case similarity >= t.High:
		return RiskHigh
	case similarity >= t.Medium:
		return RiskMedium
	default:
		return RiskLow
	}
}

// Row is one reported pair.
type Row struct {
	ID         string                 `json:"id"`
	File1      string                 `json:"file1"`
	File2      string                 `json:"file2"`
	Similarity float64                `json:"similarity"`
	Risk       Risk                   `json:"risk"`
	Status     models.Status          `json:"status"`
	Breakdown  *models.ScoreBreakdown `json:"breakdown,omitempty"`

	Size1 int64 `json:"-"`
	Size2 int64 `json:"-"`
}

// Summary holds aggregate counts over all rows.
type Summary struct {
	Documents         int     `json:"documents"`
	Comparisons       int     `json:"comparisons"`
	AverageSimilarity float64 `json:"average_similarity"`
	High              int     `json:"high_risk"`
	Medium            int     `json:"medium_risk"`
	Low               int     `json:"low_risk"`
}

// Report is the exported analysis outcome.
type Report struct {
	Timestamp time.Time `json:"timestamp"`
	Summary   Summary   `json:"summary"`
	Results   []Row     `json:"results"`
}

// Build classifies results into a report. Rows keep the order of results.
func Build(results []*models.ComparisonResult, documents int, t Thresholds, now time.Time) *Report {
	r := &Report{
		Timestamp: now.UTC(),
		Results:   make([]Row, 0, len(results)),
	}
	var total float64
	for _, res := range results {
		if res == nil {
			continue
		}
		row := Row{
			ID:         res.ID,
			File1:      displayName(res.File1),
			File2:      displayName(res.File2),
			Similarity: res.Similarity,
			Risk:       t.Classify(res.Similarity),
			Status:     res.Status,
			Breakdown:  res.Breakdown,
		}
		if res.File1 != nil {
			row.Size1 = res.File1.Size
		}
		if res.File2 != nil {
			row.Size2 = res.File2.Size
		}
		switch row.Risk {
		case RiskHigh:
			r.Summary.High++
		case RiskMedium:
			r.Summary.Medium++
		default:
			r.Summary.Low++
		}
		total += res.Similarity
		r.Results = append(r.Results, row)
	}
	r.Summary.Documents = documents
	r.Summary.Comparisons = len(r.Results)
	if len(r.Results) > 0 {
		r.Summary.AverageSimilarity = utils.Round2(total / float64(len(r.Results)))
	}
	return r
}

func displayName(d *models.Document) string {
	if d == nil {
		return ""
	}
	if d.Name != "" {
		return d.Name
	}
	return string(d.ID)
}

// Sort orders rows in place: by similarity descending, or by first file name
// using English collation. The sort is stable.
func (r *Report) Sort(order string) error {
	switch order {
	case "", SortSimilarity:
		sort.SliceStable(r.Results, func(i, j int) bool {
			return r.Results[i].Similarity > r.Results[j].Similarity
		})
	case SortName:
		c := collate.New(language.English)
		sort.SliceStable(r.Results, func(i, j int) bool {
			return c.CompareString(r.Results[i].File1, r.Results[j].File1) < 0
		})
	default:
		return fmt.Errorf("unknown sort order %q (want %q or %q)", order, SortSimilarity, SortName)
	}
	return nil
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// ExportFileName returns the default export file name for a report created at now.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("plagiarism-report-%d.json", now.UnixMilli())
}

// Export writes the report as JSON to path. A directory path gets the default file name.
// Returns the written file path.
func (r *Report) Export(path string) (string, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, ExportFileName(r.Timestamp))
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}
	if err := r.WriteJSON(f); err != nil {
		f.Close()
		return "", fmt.Errorf("write report: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close report: %w", err)
	}
	return path, nil
}
