// Package cli provides report output helpers for the ruiji command line.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/hyperjump/ruiji/internal/report"
	"github.com/hyperjump/ruiji/pkg/utils"
)

// maxNameWidth bounds file name columns in table output.
const maxNameWidth = 40

// OutputFormat is the format for report output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputTable renders one row per pair in a table.
	OutputTable OutputFormat = "table"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

var (
	red    = color.New(color.FgRed, color.Bold).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// ParseOutputFormat validates a format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case "", OutputText:
		return OutputText, nil
	case OutputTable, OutputJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (use text, table or json)", s)
	}
}

// WriteReport writes the report to w in the given format.
func WriteReport(w io.Writer, r *report.Report, format OutputFormat) error {
	switch format {
	case OutputJSON:
		return r.WriteJSON(w)
	case OutputTable:
		fmt.Fprintln(w, renderTable(r))
		writeSummary(w, r.Summary)
		return nil
	default:
		writeReportText(w, r)
		return nil
	}
}

func writeReportText(w io.Writer, r *report.Report) {
	fmt.Fprintf(w, "\n%d documents, %d comparisons\n\n", r.Summary.Documents, r.Summary.Comparisons)
	for _, row := range r.Results {
		fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
		fmt.Fprintf(w, "%s  %s\n", colorRisk(row.Risk, riskLabel(row.Risk)), bold(formatPercent(row.Similarity)))
		fmt.Fprintf(w, "  %s (%s)\n", row.File1, humanize.Bytes(uint64(max(row.Size1, 0))))
		fmt.Fprintf(w, "  %s (%s)\n", row.File2, humanize.Bytes(uint64(max(row.Size2, 0))))
		if row.Breakdown != nil {
			fmt.Fprintf(w, "  cosine %.4f | jaccard %.4f | word %.4f\n",
				row.Breakdown.Cosine, row.Breakdown.Jaccard, row.Breakdown.Word)
		} else {
			fmt.Fprintf(w, "  status: %s\n", row.Status)
		}
	}
	fmt.Fprintln(w)
	writeSummary(w, r.Summary)
}

func writeSummary(w io.Writer, s report.Summary) {
	fmt.Fprintf(w, "Average similarity: %.1f%%\n", s.AverageSimilarity)
	fmt.Fprintf(w, "%s: %d  %s: %d  %s: %d\n",
		colorRisk(report.RiskHigh, riskLabel(report.RiskHigh)), s.High,
		colorRisk(report.RiskMedium, riskLabel(report.RiskMedium)), s.Medium,
		colorRisk(report.RiskLow, riskLabel(report.RiskLow)), s.Low)
}

func renderTable(r *report.Report) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "File 1", "File 2", "Similarity", "Risk", "Status"})
	for i, row := range r.Results {
		tw.AppendRow(table.Row{
			strconv.Itoa(i + 1),
			utils.Truncate(row.File1, maxNameWidth),
			utils.Truncate(row.File2, maxNameWidth),
			formatPercent(row.Similarity),
			colorRisk(row.Risk, string(row.Risk)),
			string(row.Status),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func riskLabel(r report.Risk) string {
	switch r {
	case report.RiskHigh:
		return "High Risk"
	case report.RiskMedium:
		return "Medium Risk"
	default:
		return "Low Risk"
	}
}

func colorRisk(r report.Risk, s string) string {
	switch r {
	case report.RiskHigh:
		return red(s)
	case report.RiskMedium:
		return yellow(s)
	default:
		return green(s)
	}
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "%"
}
