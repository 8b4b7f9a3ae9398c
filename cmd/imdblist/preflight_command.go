package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"imdblist/internal/preflight"
)

func newPreflightCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "preflight",
		Short: "Check list files, encoding and output directories before a run",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("ensure directories: %w", err)
			}
			results := preflight.RunAll(cfg)
			out := cmd.OutOrStdout()
			for _, line := range preflightLines(results, shouldColorize(out)) {
				fmt.Fprintln(out, line)
			}
			if failed := preflight.Failed(results); failed > 0 {
				return fmt.Errorf("%d preflight check(s) failed", failed)
			}
			return nil
		},
	}
}

func preflightLines(results []preflight.Result, colorize bool) []string {
	lines := make([]string, 0, len(results))
	for _, r := range results {
		kind := statusOK
		switch {
		case r.Passed:
		case r.Optional:
			kind = statusWarn
		default:
			kind = statusError
		}
		lines = append(lines, renderStatusLine(r.Name, kind, r.Detail, colorize))
	}
	return lines
}
