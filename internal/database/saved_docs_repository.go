package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ritualage/orbit-cleanup/internal/config"
	sqldb "github.com/ritualage/orbit-cleanup/internal/database/sqlc"
)

// SavedDocRepository reads and clears the saved_docs table.
type SavedDocRepository struct {
	ctx *Context
}

func NewSavedDocRepository(dbCtx *Context) *SavedDocRepository {
	return &SavedDocRepository{ctx: dbCtx}
}

// TableExists reports whether saved_docs is present in sqlite_master.
func (r *SavedDocRepository) TableExists(ctx context.Context) (bool, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return false, ErrMissingContext
	}

	_, err := queries.FindTableName(ctx, config.SavedDocsTable)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query schema: %w", err)
	}
	return true, nil
}

// ListRefs returns every row as an (id, path) pair.
func (r *SavedDocRepository) ListRefs(ctx context.Context) ([]SavedDocRef, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, ErrMissingContext
	}

	rows, err := queries.ListSavedDocPaths(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", config.SavedDocsTable, err)
	}

	refs := make([]SavedDocRef, 0, len(rows))
	for _, row := range rows {
		refs = append(refs, SavedDocRef{ID: row.ID, Path: row.PdfPath})
	}
	return refs, nil
}

// List returns full rows, newest first.
func (r *SavedDocRepository) List(ctx context.Context) ([]SavedDocRecord, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, ErrMissingContext
	}

	rows, err := queries.ListSavedDocs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", config.SavedDocsTable, err)
	}

	records := make([]SavedDocRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, mapSavedDoc(row))
	}
	return records, nil
}

func (r *SavedDocRepository) Count(ctx context.Context) (int64, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return 0, ErrMissingContext
	}

	count, err := queries.CountSavedDocs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", config.SavedDocsTable, err)
	}
	return count, nil
}

// Insert adds a row the way the Orbit app does and returns its id.
func (r *SavedDocRepository) Insert(ctx context.Context, record SavedDocRecord) (int64, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return 0, ErrMissingContext
	}

	id, err := queries.InsertSavedDoc(ctx, sqldb.InsertSavedDocParams{
		CreatedAt: timeToUnixSeconds(record.CreatedAt),
		TaskID:    record.TaskID,
		Emoji:     record.Emoji,
		Title:     record.Title,
		PdfPath:   record.PDFPath,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert into %s: %w", config.SavedDocsTable, err)
	}
	return id, nil
}

// Clear deletes every row and commits.
func (r *SavedDocRepository) Clear(ctx context.Context) error {
	if r.ctx == nil || r.ctx.DB == nil {
		return ErrMissingContext
	}

	return withTx(ctx, r.ctx, func(q *sqldb.Queries) error {
		if err := q.DeleteAllSavedDocs(ctx); err != nil {
			return fmt.Errorf("failed to clear %s: %w", config.SavedDocsTable, err)
		}
		return nil
	})
}

func mapSavedDoc(row sqldb.SavedDoc) SavedDocRecord {
	return SavedDocRecord{
		ID:        row.ID,
		CreatedAt: unixSecondsToTime(row.CreatedAt),
		TaskID:    row.TaskID,
		Emoji:     row.Emoji,
		Title:     row.Title,
		PDFPath:   row.PdfPath,
	}
}
