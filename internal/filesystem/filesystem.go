// Package filesystem locates Orbit PDFs and moves them to the trash.
package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/Bios-Marcel/wastebasket"
)

// PDFPattern matches the files Orbit writes.
const PDFPattern = "*.pdf"

// FileExists reports whether the given path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Canonicalize resolves symlinks and makes the path absolute. When the path
// cannot be resolved the cleaned input is returned with the error.
func Canonicalize(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return filepath.Clean(path), err
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return filepath.Clean(resolved), err
	}
	return abs, nil
}

// ListPDFs returns the immediate children of dir matching PDFPattern, sorted.
// Subdirectories are never descended into.
func ListPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var matches []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ok, err := filepath.Match(PDFPattern, entry.Name())
		if err != nil {
			return nil, err
		}
		if ok {
			matches = append(matches, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(matches)
	return matches, nil
}

// Trasher moves a path to a recoverable location.
type Trasher interface {
	Trash(path string) error
}

// SystemTrash uses the operating system's trash facility.
type SystemTrash struct{}

func (SystemTrash) Trash(path string) error {
	return wastebasket.Trash(path)
}

// Remover trashes files one at a time, reporting each outcome to Out. A
// failure never stops the caller from moving on to the next path.
type Remover struct {
	Trasher Trasher
	DryRun  bool
	Out     io.Writer
}

// Remove reports whether path was (or, in dry-run, would have been) trashed.
func (r *Remover) Remove(path string) bool {
	if r.DryRun {
		fmt.Fprintf(r.Out, "[dry-run] Would trash: %s\n", path)
		return true
	}

	trasher := r.Trasher
	if trasher == nil {
		trasher = SystemTrash{}
	}

	if err := trasher.Trash(path); err != nil {
		fmt.Fprintf(r.Out, "Failed to trash %s: %v\n", path, err)
		return false
	}
	fmt.Fprintf(r.Out, "Trashed: %s\n", path)
	return true
}
