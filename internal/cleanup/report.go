package cleanup

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Summary accumulates the counters printed at the end of a run.
type Summary struct {
	TrashedReferenced int `json:"trashedReferenced"`
	MissingReferenced int `json:"missingReferenced"`
	ScannedPDFs       int `json:"scannedPdfs"`
	TrashedOrphans    int `json:"trashedOrphans"`
}

// Output formats accepted by WriteSummary.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

// WriteSummary renders s to w in the requested format.
func WriteSummary(w io.Writer, s Summary, format string) error {
	switch format {
	case FormatText, "":
		fmt.Fprintln(w, "Summary:")
		fmt.Fprintf(w, " - Trashed referenced PDFs: %d\n", s.TrashedReferenced)
		fmt.Fprintf(w, " - Missing referenced PDFs: %d\n", s.MissingReferenced)
		fmt.Fprintf(w, " - Scanned PDFs: %d\n", s.ScannedPDFs)
		fmt.Fprintf(w, " - Trashed orphan PDFs: %d\n", s.TrashedOrphans)
		return nil
	case FormatTable:
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.SetTitle("Summary")
		t.AppendHeader(table.Row{"Metric", "Count"})
		t.AppendRows([]table.Row{
			{"Trashed referenced PDFs", s.TrashedReferenced},
			{"Missing referenced PDFs", s.MissingReferenced},
			{"Scanned PDFs", s.ScannedPDFs},
			{"Trashed orphan PDFs", s.TrashedOrphans},
		})
		t.Render()
		return nil
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(s)
	default:
		return fmt.Errorf("invalid format: %s (valid values: text, table, json)", format)
	}
}
