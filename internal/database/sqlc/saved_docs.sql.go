package sqldb

import "context"

const findTableName = `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`

func (q *Queries) FindTableName(ctx context.Context, name string) (string, error) {
	row := q.db.QueryRowContext(ctx, findTableName, name)
	var found string
	err := row.Scan(&found)
	return found, err
}

const listSavedDocPaths = `SELECT id, pdf_path FROM saved_docs`

type ListSavedDocPathsRow struct {
	ID      int64
	PdfPath string
}

func (q *Queries) ListSavedDocPaths(ctx context.Context) ([]ListSavedDocPathsRow, error) {
	rows, err := q.db.QueryContext(ctx, listSavedDocPaths)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListSavedDocPathsRow
	for rows.Next() {
		var i ListSavedDocPathsRow
		if err := rows.Scan(&i.ID, &i.PdfPath); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listSavedDocs = `SELECT id, created_at, task_id, emoji, title, pdf_path FROM saved_docs ORDER BY created_at DESC`

type SavedDoc struct {
	ID        int64
	CreatedAt float64
	TaskID    string
	Emoji     string
	Title     string
	PdfPath   string
}

func (q *Queries) ListSavedDocs(ctx context.Context) ([]SavedDoc, error) {
	rows, err := q.db.QueryContext(ctx, listSavedDocs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SavedDoc
	for rows.Next() {
		var i SavedDoc
		if err := rows.Scan(
			&i.ID,
			&i.CreatedAt,
			&i.TaskID,
			&i.Emoji,
			&i.Title,
			&i.PdfPath,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countSavedDocs = `SELECT COUNT(*) FROM saved_docs`

func (q *Queries) CountSavedDocs(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countSavedDocs)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const insertSavedDoc = `INSERT INTO saved_docs (created_at, task_id, emoji, title, pdf_path) VALUES (?, ?, ?, ?, ?)`

type InsertSavedDocParams struct {
	CreatedAt float64
	TaskID    string
	Emoji     string
	Title     string
	PdfPath   string
}

func (q *Queries) InsertSavedDoc(ctx context.Context, arg InsertSavedDocParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, insertSavedDoc,
		arg.CreatedAt,
		arg.TaskID,
		arg.Emoji,
		arg.Title,
		arg.PdfPath,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

const deleteAllSavedDocs = `DELETE FROM saved_docs`

func (q *Queries) DeleteAllSavedDocs(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllSavedDocs)
	return err
}
