package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ritualage/orbit-cleanup/internal/config"
	"github.com/ritualage/orbit-cleanup/internal/filesystem"
)

func newLocationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "Show the database and PDF folder locations that are probed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			dbs := config.DBCandidates()
			selected, ok := config.PickExisting(dbs)

			fmt.Fprintln(out, "Database candidates:")
			for _, p := range dbs {
				fmt.Fprintf(out, " %s %s\n", marker(p, selected, ok), p)
			}

			existing := make(map[string]struct{})
			for _, d := range config.ExistingDirs(config.PDFFolderCandidates()) {
				existing[d] = struct{}{}
			}

			fmt.Fprintln(out, "PDF folder candidates:")
			for _, p := range config.PDFFolderCandidates() {
				mark := "-"
				if _, found := existing[p]; found {
					mark = "+"
				}
				fmt.Fprintf(out, " %s %s\n", mark, p)
			}

			if ok {
				fmt.Fprintf(out, "Using DB: %s\n", selected)
			} else {
				fmt.Fprintln(out, "No database found in known locations.")
			}
			return nil
		},
	}
}

// marker flags the selected database with '*', other existing ones with '+'.
func marker(path, selected string, ok bool) string {
	switch {
	case ok && path == selected:
		return "*"
	case filesystem.FileExists(path):
		return "+"
	default:
		return "-"
	}
}
