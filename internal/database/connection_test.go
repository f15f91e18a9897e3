package database

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func setupTestDB(t *testing.T) *Context {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "Orbit", "orbit.sqlite3")

	ctx, err := Bootstrap(dbPath)
	if err != nil {
		t.Fatalf("Bootstrap returned error: %v", err)
	}

	t.Cleanup(func() {
		if err := CloseDatabase(ctx); err != nil {
			t.Fatalf("CloseDatabase error: %v", err)
		}
	})

	return ctx
}

func TestBootstrapCreatesSavedDocs(t *testing.T) {
	ctx := setupTestDB(t)

	if _, err := os.Stat(ctx.Path); err != nil {
		t.Fatalf("expected database file to exist at %s: %v", ctx.Path, err)
	}

	exists, err := NewSavedDocRepository(ctx).TableExists(context.Background())
	if err != nil {
		t.Fatalf("TableExists error: %v", err)
	}
	if !exists {
		t.Fatalf("expected saved_docs to exist")
	}
}

func TestOpenDatabaseDoesNotCreateFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "missing.sqlite3")

	if _, err := OpenDatabase(dbPath); err == nil {
		t.Fatalf("expected error opening missing database")
	}
	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Fatalf("expected database file not to be created, stat err: %v", err)
	}
}

func TestTableExistsFalseOnEmptyDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "empty.sqlite3")
	if err := os.WriteFile(dbPath, nil, 0o600); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	ctx, err := OpenDatabase(dbPath)
	if err != nil {
		t.Fatalf("OpenDatabase error: %v", err)
	}
	defer func() {
		_ = CloseDatabase(ctx)
	}()

	exists, err := NewSavedDocRepository(ctx).TableExists(context.Background())
	if err != nil {
		t.Fatalf("TableExists error: %v", err)
	}
	if exists {
		t.Fatalf("expected saved_docs to be absent")
	}
}

func TestListRefsAndClear(t *testing.T) {
	dbCtx := setupTestDB(t)
	ctx := context.Background()
	repo := NewSavedDocRepository(dbCtx)

	insertSavedDoc(t, repo, "/Users/u/Documents/Orbit/a.pdf")
	insertSavedDoc(t, repo, "/Users/u/Documents/Orbit/missing.pdf")

	refs, err := repo.ListRefs(ctx)
	if err != nil {
		t.Fatalf("ListRefs error: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("expected 2 refs, got %d", len(refs))
	}
	if refs[0].Path != "/Users/u/Documents/Orbit/a.pdf" || refs[0].ID == 0 {
		t.Fatalf("unexpected first ref: %#v", refs[0])
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	assertCount(t, dbCtx.DB, 0)
}

func TestListOrdersNewestFirst(t *testing.T) {
	dbCtx := setupTestDB(t)
	ctx := context.Background()
	repo := NewSavedDocRepository(dbCtx)

	older := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	newer := older.Add(time.Hour)

	for _, rec := range []SavedDocRecord{
		{CreatedAt: older, TaskID: "t1", Emoji: "🧹", Title: "Tidy desk", PDFPath: "/tmp/a.pdf"},
		{CreatedAt: newer, TaskID: "t2", Emoji: "📚", Title: "Read", PDFPath: "/tmp/b.pdf"},
	} {
		if _, err := repo.Insert(ctx, rec); err != nil {
			t.Fatalf("Insert error: %v", err)
		}
	}

	records, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].TaskID != "t2" || records[1].TaskID != "t1" {
		t.Fatalf("expected newest first, got %#v", records)
	}
	if !records[1].CreatedAt.Equal(older) {
		t.Fatalf("expected created_at %v, got %v", older, records[1].CreatedAt)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count error: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected count 2, got %d", count)
	}
}

func TestRepositoryWithoutContext(t *testing.T) {
	repo := NewSavedDocRepository(nil)

	if _, err := repo.ListRefs(context.Background()); err != ErrMissingContext {
		t.Fatalf("expected ErrMissingContext, got %v", err)
	}
	if err := repo.Clear(context.Background()); err != ErrMissingContext {
		t.Fatalf("expected ErrMissingContext, got %v", err)
	}
}

func insertSavedDoc(t *testing.T, repo *SavedDocRepository, path string) int64 {
	t.Helper()
	id, err := repo.Insert(context.Background(), SavedDocRecord{
		CreatedAt: time.Now(),
		TaskID:    "task",
		Emoji:     "📄",
		Title:     filepath.Base(path),
		PDFPath:   path,
	})
	if err != nil {
		t.Fatalf("insertSavedDoc failed: %v", err)
	}
	return id
}

func assertCount(t *testing.T, db *sql.DB, expected int) {
	t.Helper()
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM saved_docs").Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != expected {
		t.Fatalf("expected saved_docs to have %d rows, got %d", expected, count)
	}
}
