package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"imdblist/internal/catalog"
	"imdblist/internal/config"
	"imdblist/internal/export"
)

type runSummary struct {
	RunID   string         `json:"run_id"`
	Titles  int            `json:"titles"`
	Passes  []passSummary  `json:"passes"`
	Cleared []string       `json:"cleared,omitempty"`
	Export  *exportSummary `json:"export"`
}

type exportSummary struct {
	Path         string   `json:"path"`
	Format       string   `json:"format"`
	Rows         int      `json:"rows"`
	Columns      []string `json:"columns"`
	GenreColumns []string `json:"genre_columns,omitempty"`
}

func newRunCommand(ctx *commandContext) *cobra.Command {
	var (
		inputDir   string
		outputPath string
		format     string
		clearKeys  []string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Ingest every list and export the merged table",
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			cfg, err := applyRunOverrides(*base, inputDir, outputPath, format)
			if err != nil {
				return err
			}
			cleared, err := catalog.ParseKeys(clearKeys)
			if err != nil {
				return fmt.Errorf("--clear: %w", err)
			}
			opts, err := export.OptionsFromConfig(cfg.Export)
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			exporter, err := export.New(opts, logger)
			if err != nil {
				return err
			}

			runID := newRunID()
			run, err := runIngest(cmd.Context(), &cfg, logger, runID)
			if err != nil {
				return err
			}
			reg := run.pipeline.Registry
			for _, key := range cleared {
				reg.ClearAttribute(key)
			}

			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}
			result, err := exporter.Write(cmd.Context(), reg, run.pipeline.Tally, cfg.Paths.OutputPath)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}

			summary := runSummary{
				RunID:  runID,
				Titles: reg.Len(),
				Passes: summarizePasses(run.report),
				Export: &exportSummary{
					Path:         result.Path,
					Format:       string(result.Format),
					Rows:         result.Rows,
					Columns:      result.Columns,
					GenreColumns: result.GenreColumns,
				},
			}
			for _, key := range cleared {
				summary.Cleared = append(summary.Cleared, string(key))
			}
			if jsonOutput {
				return writeJSON(cmd, summary)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintln(out, renderReport(summary.Passes))
			for _, line := range renderMissing(summary.Passes, colorize) {
				fmt.Fprintln(out, line)
			}
			if len(result.GenreColumns) > 0 {
				fmt.Fprintf(out, "Genre columns: %s\n", strings.Join(result.GenreColumns, ", "))
			}
			fmt.Fprintf(out, "Run %s: %d titles, %d rows written to %s (%s)\n",
				runID, summary.Titles, result.Rows, result.Path, result.Format)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input", "i", "", "Directory holding the list files (overrides paths.input_dir)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Export destination (overrides paths.output_path)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Export format: tsv or sqlite (overrides export.format)")
	cmd.Flags().StringArrayVar(&clearKeys, "clear", nil, "Attribute to remove from every record before export (repeatable)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the run report as JSON")
	return cmd
}

// applyRunOverrides layers command-line flags over a copy of the loaded
// configuration and revalidates it.
func applyRunOverrides(cfg config.Config, inputDir, outputPath, format string) (config.Config, error) {
	if dir := strings.TrimSpace(inputDir); dir != "" {
		expanded, err := config.ExpandPath(dir)
		if err != nil {
			return cfg, fmt.Errorf("--input: %w", err)
		}
		cfg.Paths.InputDir = expanded
	}
	if f := strings.ToLower(strings.TrimSpace(format)); f != "" {
		cfg.Export.Format = f
		if strings.TrimSpace(outputPath) == "" {
			cfg.Paths.OutputPath = outputForFormat(cfg.Paths.OutputPath, f)
		}
	}
	if out := strings.TrimSpace(outputPath); out != "" {
		expanded, err := config.ExpandPath(out)
		if err != nil {
			return cfg, fmt.Errorf("--output: %w", err)
		}
		cfg.Paths.OutputPath = expanded
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// outputForFormat swaps a conventional extension so --format sqlite does not
// write a database named movies.tsv.
func outputForFormat(path, format string) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	switch {
	case format == string(export.FormatSQLite) && strings.EqualFold(ext, ".tsv"):
		return stem + ".db"
	case format == string(export.FormatTSV) && strings.EqualFold(ext, ".db"):
		return stem + ".tsv"
	default:
		return path
	}
}
