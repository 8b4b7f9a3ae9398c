package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"imdblist/internal/catalog"
)

type searchHit struct {
	Title  string            `json:"title"`
	Values map[string]string `json:"values"`
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var (
		prefix     bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "search PHRASE",
		Short: "Ingest every list and look up titles by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase := strings.TrimSpace(args[0])
			if phrase == "" {
				return fmt.Errorf("search phrase must not be empty")
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			run, err := runIngest(cmd.Context(), cfg, logger, newRunID())
			if err != nil {
				return err
			}

			reg := run.pipeline.Registry
			var matches []catalog.Match
			if prefix {
				matches = reg.PrefixSearch(phrase)
			} else {
				matches = reg.SubstringSearch(phrase)
			}

			if jsonOutput {
				hits := make([]searchHit, 0, len(matches))
				for _, m := range matches {
					hit := searchHit{Title: m.Title, Values: map[string]string{}}
					for _, key := range catalog.AllKeys {
						if v, ok := m.Record.Value(key); ok {
							hit.Values[string(key)] = v
						}
					}
					hits = append(hits, hit)
				}
				return writeJSON(cmd, hits)
			}

			out := cmd.OutOrStdout()
			if len(matches) == 0 {
				fmt.Fprintf(out, "No titles match %q\n", phrase)
				return nil
			}
			rows := make([][]string, 0, len(matches))
			for _, m := range matches {
				rows = append(rows, []string{
					m.Title,
					recordValue(m.Record, catalog.KeyRating),
					recordValue(m.Record, catalog.KeyVotes),
					recordValue(m.Record, catalog.KeyGenre),
					recordValue(m.Record, catalog.KeyDirector),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Title", "Rating", "Votes", "Genres", "Directors"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&prefix, "prefix", false, "Match titles starting with PHRASE instead of containing it")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output matches as JSON")
	return cmd
}

func recordValue(rec *catalog.Record, key catalog.Key) string {
	if v, ok := rec.Value(key); ok {
		return v
	}
	return "-"
}
