package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"imdblist/internal/catalog"
)

type tallySummary struct {
	RunID    string          `json:"run_id"`
	Titles   int             `json:"titles"`
	Genre    []catalog.Entry `json:"genre"`
	Country  []catalog.Entry `json:"country"`
	Language []catalog.Entry `json:"language"`
	MPAA     []catalog.Entry `json:"mpaa"`
}

func newSummaryCommand(ctx *commandContext) *cobra.Command {
	var (
		top        int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Ingest every list and show genre, country, language and rating counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if top < 0 {
				return fmt.Errorf("--top must be zero or positive")
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			runID := newRunID()
			run, err := runIngest(cmd.Context(), cfg, logger, runID)
			if err != nil {
				return err
			}

			tally := run.pipeline.Tally
			summary := tallySummary{
				RunID:    runID,
				Titles:   run.pipeline.Registry.Len(),
				Genre:    topEntries(tally.Genre.Sorted(), top),
				Country:  topEntries(tally.Country.Sorted(), top),
				Language: topEntries(tally.Language.Sorted(), top),
				MPAA:     topEntries(tally.MPAA.Sorted(), top),
			}
			if jsonOutput {
				return writeJSON(cmd, summary)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintf(out, "%s titles\n", humanize.Comma(int64(summary.Titles)))
			sections := []struct {
				title   string
				entries []catalog.Entry
			}{
				{"Genres", summary.Genre},
				{"Countries", summary.Country},
				{"Languages", summary.Language},
				{"MPAA ratings", summary.MPAA},
			}
			for _, section := range sections {
				fmt.Fprintln(out)
				for _, line := range renderSectionHeader(section.title, colorize) {
					fmt.Fprintln(out, line)
				}
				if len(section.entries) == 0 {
					fmt.Fprintln(out, "No entries")
					continue
				}
				fmt.Fprintln(out, renderTally(section.entries))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&top, "top", "n", 10, "Entries to show per table (0 shows all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output counts as JSON")
	return cmd
}

func topEntries(entries []catalog.Entry, n int) []catalog.Entry {
	if n > 0 && len(entries) > n {
		return entries[:n]
	}
	return entries
}

func renderTally(entries []catalog.Entry) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Label, strconv.Itoa(e.Count)})
	}
	return renderTable([]string{"Label", "Count"}, rows, []columnAlignment{alignLeft, alignRight})
}
