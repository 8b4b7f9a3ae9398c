package main

import (
	"fmt"
	"strconv"

	"imdblist/internal/ingest"
)

type passSummary struct {
	Category   string `json:"category"`
	Path       string `json:"path"`
	Missing    bool   `json:"missing"`
	Error      string `json:"error,omitempty"`
	Lines      int    `json:"lines"`
	Merged     int    `json:"merged"`
	NotFound   int    `json:"not_found"`
	Duplicates int    `json:"duplicates"`
	Mismatched int    `json:"mismatched"`
	Filtered   int    `json:"filtered"`
	Invalid    int    `json:"invalid"`
	ElapsedMS  int64  `json:"elapsed_ms"`
}

func summarizePasses(report ingest.Report) []passSummary {
	out := make([]passSummary, 0, len(report.Passes))
	for _, st := range report.Passes {
		p := passSummary{
			Category:   string(st.Category),
			Path:       st.Path,
			Missing:    st.Missing,
			Lines:      st.Lines,
			Merged:     st.Merged,
			NotFound:   st.NotFound,
			Duplicates: st.Duplicates,
			Mismatched: st.Mismatched,
			Filtered:   st.Filtered,
			Invalid:    st.Invalid,
			ElapsedMS:  st.Elapsed.Milliseconds(),
		}
		if st.Err != nil {
			p.Error = st.Err.Error()
		}
		out = append(out, p)
	}
	return out
}

func renderReport(passes []passSummary) string {
	headers := []string{"Category", "Lines", "Merged", "Not found", "Duplicates", "Mismatched", "Filtered", "Invalid"}
	aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight}
	rows := make([][]string, 0, len(passes))
	var total passSummary
	for _, p := range passes {
		if p.Missing {
			rows = append(rows, []string{p.Category, "-", "-", "-", "-", "-", "-", "-"})
			continue
		}
		rows = append(rows, passCounts(p.Category, p))
		total.Lines += p.Lines
		total.Merged += p.Merged
		total.NotFound += p.NotFound
		total.Duplicates += p.Duplicates
		total.Mismatched += p.Mismatched
		total.Filtered += p.Filtered
		total.Invalid += p.Invalid
	}
	return renderTable(headers, rows, aligns, passCounts("Total", total)...)
}

func passCounts(label string, p passSummary) []string {
	return []string{
		label,
		strconv.Itoa(p.Lines),
		strconv.Itoa(p.Merged),
		strconv.Itoa(p.NotFound),
		strconv.Itoa(p.Duplicates),
		strconv.Itoa(p.Mismatched),
		strconv.Itoa(p.Filtered),
		strconv.Itoa(p.Invalid),
	}
}

// renderMissing lists sources that were skipped.
func renderMissing(passes []passSummary, colorize bool) []string {
	var lines []string
	for _, p := range passes {
		if !p.Missing {
			continue
		}
		detail := fmt.Sprintf("%s not found", p.Path)
		if p.Error != "" {
			detail = p.Error
		}
		lines = append(lines, renderStatusLine(p.Category, statusWarn, detail, colorize))
	}
	return lines
}
