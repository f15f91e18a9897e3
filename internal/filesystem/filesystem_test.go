package filesystem

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

type recordingTrasher struct {
	trashed []string
	failOn  map[string]error
}

func (r *recordingTrasher) Trash(path string) error {
	if err := r.failOn[path]; err != nil {
		return err
	}
	r.trashed = append(r.trashed, path)
	return nil
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("MkdirAll error: %v", err)
	}
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o600); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
}

func TestListPDFsIsShallowAndFiltered(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.pdf"))
	writeFile(t, filepath.Join(dir, "a.pdf"))
	writeFile(t, filepath.Join(dir, "notes.txt"))
	writeFile(t, filepath.Join(dir, "nested", "c.pdf"))
	if err := os.Mkdir(filepath.Join(dir, "folder.pdf"), 0o750); err != nil {
		t.Fatalf("Mkdir error: %v", err)
	}

	got, err := ListPDFs(dir)
	if err != nil {
		t.Fatalf("ListPDFs error: %v", err)
	}

	want := []string{filepath.Join(dir, "a.pdf"), filepath.Join(dir, "b.pdf")}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestCanonicalizeResolvesSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.pdf")
	link := filepath.Join(dir, "link.pdf")
	writeFile(t, target)
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	fromLink, err := Canonicalize(link)
	if err != nil {
		t.Fatalf("Canonicalize link error: %v", err)
	}
	fromTarget, err := Canonicalize(target)
	if err != nil {
		t.Fatalf("Canonicalize target error: %v", err)
	}
	if fromLink != fromTarget {
		t.Fatalf("expected %q and %q to match", fromLink, fromTarget)
	}
}

func TestCanonicalizeMissingFallsBack(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone", "..", "gone.pdf")

	got, err := Canonicalize(missing)
	if err == nil {
		t.Fatalf("expected error for missing path")
	}
	if got != filepath.Clean(missing) {
		t.Fatalf("expected cleaned input, got %q", got)
	}
}

func TestRemoverDryRunNeverTrashes(t *testing.T) {
	var out bytes.Buffer
	trasher := &recordingTrasher{}
	r := &Remover{Trasher: trasher, DryRun: true, Out: &out}

	if !r.Remove("/tmp/a.pdf") {
		t.Fatalf("dry-run remove should report success")
	}
	if len(trasher.trashed) != 0 {
		t.Fatalf("dry-run must not trash, got %v", trasher.trashed)
	}
	if !strings.Contains(out.String(), "[dry-run] Would trash: /tmp/a.pdf") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRemoverReportsFailures(t *testing.T) {
	var out bytes.Buffer
	trasher := &recordingTrasher{failOn: map[string]error{"/tmp/locked.pdf": errors.New("permission denied")}}
	r := &Remover{Trasher: trasher, Out: &out}

	if r.Remove("/tmp/locked.pdf") {
		t.Fatalf("expected failure for locked file")
	}
	if !r.Remove("/tmp/ok.pdf") {
		t.Fatalf("expected success after a failure")
	}

	if len(trasher.trashed) != 1 || trasher.trashed[0] != "/tmp/ok.pdf" {
		t.Fatalf("unexpected trashed list %v", trasher.trashed)
	}
	output := out.String()
	if !strings.Contains(output, "Failed to trash /tmp/locked.pdf: permission denied") {
		t.Fatalf("missing failure line in %q", output)
	}
	if !strings.Contains(output, "Trashed: /tmp/ok.pdf") {
		t.Fatalf("missing success line in %q", output)
	}
}

func TestSystemTrashMovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "system-trash.pdf")
	writeFile(t, path)

	err := SystemTrash{}.Trash(path)
	if err != nil {
		if runtime.GOOS != "darwin" {
			t.Skipf("no trash facility on %s: %v", runtime.GOOS, err)
		}
		t.Fatalf("Trash error: %v", err)
	}

	if FileExists(path) {
		t.Fatalf("expected %s to be gone after trashing", path)
	}
}
