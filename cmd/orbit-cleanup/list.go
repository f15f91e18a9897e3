package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ritualage/orbit-cleanup/internal/config"
	"github.com/ritualage/orbit-cleanup/internal/database"
	"github.com/ritualage/orbit-cleanup/internal/filesystem"
)

func newListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved documents recorded in the Orbit database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dbPath, ok := config.PickExisting(config.DBCandidates())
			if !ok {
				return fmt.Errorf("no database found in known locations")
			}

			dbCtx, err := database.OpenDatabase(dbPath)
			if err != nil {
				return err
			}
			defer func() {
				_ = database.CloseDatabase(dbCtx)
			}()

			ctx := cmd.Context()
			repo := database.NewSavedDocRepository(dbCtx)

			exists, err := repo.TableExists(ctx)
			if err != nil {
				return err
			}
			if !exists {
				return database.ErrTableNotFound
			}

			records, err := repo.List(ctx)
			if err != nil {
				return err
			}

			switch format {
			case "json":
				return outputJSON(cmd, records)
			case "table":
				outputTable(cmd.OutOrStdout(), records, getTerminalWidth())
				return nil
			default:
				return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}

type listOutputEntry struct {
	ID      int64  `json:"id"`
	Created string `json:"created"`
	TaskID  string `json:"taskId"`
	Emoji   string `json:"emoji"`
	Title   string `json:"title"`
	PDFPath string `json:"pdfPath"`
	OnDisk  bool   `json:"onDisk"`
}

func outputJSON(cmd *cobra.Command, records []database.SavedDocRecord) error {
	output := make([]listOutputEntry, 0, len(records))

	for _, rec := range records {
		output = append(output, listOutputEntry{
			ID:      rec.ID,
			Created: rec.CreatedAt.Format(time.RFC3339),
			TaskID:  rec.TaskID,
			Emoji:   rec.Emoji,
			Title:   rec.Title,
			PDFPath: rec.PDFPath,
			OnDisk:  filesystem.FileExists(rec.PDFPath),
		})
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func getTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// columnWidths holds the widths of the two variable columns.
type columnWidths struct {
	title int
	path  int
}

// calculateColumnWidths splits what is left of the terminal after the fixed
// columns between Title and PDF Path, giving the path the larger share.
func calculateColumnWidths(termWidth int) columnWidths {
	const (
		idWidth      = 5
		createdWidth = 19 // "2006-01-02 15:04:05"
		emojiWidth   = 2
		diskWidth    = 7  // "On Disk"
		numColumns   = 6
	)

	available := termWidth - numColumns*3 - idWidth - createdWidth - emojiWidth - diskWidth

	title := available / 3
	if title < 12 {
		title = 12
	}
	path := available - title
	if path < 20 {
		path = 20
	}

	return columnWidths{title: title, path: path}
}

// truncateLeft keeps the tail of s, which is the informative part of a path.
func truncateLeft(s string, maxWidth int) string {
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	runes := []rune(s)
	for i := range runes {
		tail := string(runes[i:])
		if runewidth.StringWidth(tail)+3 <= maxWidth {
			return "..." + tail
		}
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

func outputTable(w io.Writer, records []database.SavedDocRecord, termWidth int) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	widths := calculateColumnWidths(termWidth)

	t.AppendHeader(table.Row{"ID", "Created", "", "Title", "PDF Path", "On Disk"})

	for _, rec := range records {
		onDisk := "no"
		if filesystem.FileExists(rec.PDFPath) {
			onDisk = "yes"
		}

		t.AppendRow(table.Row{
			rec.ID,
			rec.CreatedAt.Format("2006-01-02 15:04:05"),
			rec.Emoji,
			runewidth.Truncate(strings.TrimSpace(rec.Title), widths.title, "..."),
			truncateLeft(rec.PDFPath, widths.path),
			onDisk,
		})
	}

	t.AppendFooter(table.Row{"", "", "", "Total", len(records), ""})
	t.Render()
}
