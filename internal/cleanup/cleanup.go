// Package cleanup runs the Orbit PDF sweep: trash referenced files, trash
// orphans, then clear the saved_docs table.
package cleanup

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/ritualage/orbit-cleanup/internal/config"
	"github.com/ritualage/orbit-cleanup/internal/database"
	"github.com/ritualage/orbit-cleanup/internal/filesystem"
)

// Options controls a single run.
type Options struct {
	DryRun bool
	KeepDB bool

	// DBCandidates and PDFFolders default to the config candidates when nil.
	DBCandidates []string
	PDFFolders   []string

	Trasher filesystem.Trasher
	Out     io.Writer
	Logger  *slog.Logger
}

// Result is what a run produced. Completed is false when the run stopped
// early because the table was missing.
type Result struct {
	DBPath    string
	Completed bool
	Summary   Summary
}

// Run executes the sweep. Database failures are returned; per-file trash
// failures are reported on Out and counted as not trashed.
func Run(ctx context.Context, opts Options) (*Result, error) {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	dbCandidates := opts.DBCandidates
	if dbCandidates == nil {
		dbCandidates = config.DBCandidates()
	}
	pdfFolders := opts.PDFFolders
	if pdfFolders == nil {
		pdfFolders = config.PDFFolderCandidates()
	}

	remover := &filesystem.Remover{Trasher: opts.Trasher, DryRun: opts.DryRun, Out: out}
	result := &Result{}

	var (
		dbCtx *database.Context
		repo  *database.SavedDocRepository
		refs  []database.SavedDocRef
	)

	dbPath, found := config.PickExisting(dbCandidates)
	if !found {
		fmt.Fprintln(out, "No database found in known locations:")
		for _, p := range dbCandidates {
			fmt.Fprintf(out, " - %s\n", p)
		}
	} else {
		fmt.Fprintf(out, "Using DB: %s\n", dbPath)
		logger.Debug("resolved database", "path", dbPath)

		var err error
		dbCtx, err = database.OpenDatabase(dbPath)
		if err != nil {
			return nil, err
		}
		defer func() {
			_ = database.CloseDatabase(dbCtx)
		}()

		result.DBPath = dbCtx.Path
		repo = database.NewSavedDocRepository(dbCtx)

		exists, err := repo.TableExists(ctx)
		if err != nil {
			return nil, err
		}
		if !exists {
			fmt.Fprintf(out, "Table '%s' not found in DB. Exiting.\n", config.SavedDocsTable)
			return result, nil
		}

		refs, err = repo.ListRefs(ctx)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(out, "DB rows in %s: %d\n", config.SavedDocsTable, len(refs))
	}

	sum := &result.Summary
	referenced := make(map[string]struct{})
	parentDirs := make(map[string]struct{})

	for _, ref := range refs {
		if ref.Path != "" {
			parentDirs[filepath.Dir(ref.Path)] = struct{}{}
		}

		if !filesystem.FileExists(ref.Path) {
			sum.MissingReferenced++
			fmt.Fprintf(out, "Missing on disk (DB id %d): %s\n", ref.ID, ref.Path)
			continue
		}

		canonical, err := filesystem.Canonicalize(ref.Path)
		if err != nil {
			logger.Warn("could not canonicalize referenced file", "path", ref.Path, "error", err)
		}
		referenced[canonical] = struct{}{}

		if remover.Remove(ref.Path) {
			sum.TrashedReferenced++
		}
	}

	scanDirs := scanDomain(pdfFolders, parentDirs)
	if len(scanDirs) == 0 {
		fmt.Fprintln(out, "No PDF folders found to scan.")
	} else {
		fmt.Fprintln(out, "Scanning for orphan PDFs in:")
		for _, d := range scanDirs {
			fmt.Fprintf(out, " - %s\n", d)
		}
	}

	for _, dir := range scanDirs {
		pdfs, err := filesystem.ListPDFs(dir)
		if err != nil {
			logger.Warn("could not list folder", "dir", dir, "error", err)
			continue
		}
		for _, pdf := range pdfs {
			sum.ScannedPDFs++

			canonical, err := filesystem.Canonicalize(pdf)
			if err != nil {
				logger.Warn("could not canonicalize scanned file", "path", pdf, "error", err)
			}
			if _, ok := referenced[canonical]; ok {
				logger.Debug("skipping referenced file", "path", pdf)
				continue
			}

			if remover.Remove(pdf) {
				sum.TrashedOrphans++
			}
		}
	}

	if dbCtx != nil && !opts.KeepDB {
		if opts.DryRun {
			fmt.Fprintf(out, "[dry-run] Would clear '%s' table\n", config.SavedDocsTable)
		} else {
			if err := repo.Clear(ctx); err != nil {
				return nil, err
			}
			fmt.Fprintf(out, "Cleared '%s' table.\n", config.SavedDocsTable)
		}
	}

	result.Completed = true
	return result, nil
}

// scanDomain merges the existing static folders with the existing parents of
// referenced files, deduplicated and sorted.
func scanDomain(folders []string, parents map[string]struct{}) []string {
	candidates := make([]string, 0, len(folders)+len(parents))
	candidates = append(candidates, folders...)
	for dir := range parents {
		candidates = append(candidates, dir)
	}

	seen := make(map[string]struct{})
	var dirs []string
	for _, dir := range config.ExistingDirs(candidates) {
		dir = filepath.Clean(dir)
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}
