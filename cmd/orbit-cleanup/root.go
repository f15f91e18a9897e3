package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ritualage/orbit-cleanup/internal/cleanup"
	"github.com/ritualage/orbit-cleanup/internal/filesystem"
)

func newRootCmd(trasher filesystem.Trasher) *cobra.Command {
	var (
		dryRun  bool
		keepDB  bool
		format  string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:          "orbit-cleanup",
		Short:        "Cleanup Orbit PDFs and DB entries",
		Long:         "orbit-cleanup moves PDFs referenced by Orbit's saved_docs table to the trash, trashes orphaned PDFs, and clears the table.",
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch format {
			case cleanup.FormatText, cleanup.FormatTable, cleanup.FormatJSON:
			default:
				return fmt.Errorf("invalid format: %s (valid values: text, table, json)", format)
			}

			result, err := cleanup.Run(cmd.Context(), cleanup.Options{
				DryRun:  dryRun,
				KeepDB:  keepDB,
				Trasher: trasher,
				Out:     cmd.OutOrStdout(),
				Logger:  newLogger(cmd.ErrOrStderr(), verbose),
			})
			if err != nil {
				return err
			}
			if !result.Completed {
				return nil
			}

			return cleanup.WriteSummary(cmd.OutOrStdout(), result.Summary, format)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview actions without trashing files or modifying DB")
	cmd.Flags().BoolVar(&keepDB, "keep-db", false, "Do not clear the saved_docs table")
	cmd.Flags().StringVar(&format, "format", cleanup.FormatText, "Summary format: text, table, or json")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newLocationsCmd())

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
