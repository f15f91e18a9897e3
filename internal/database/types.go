package database

import "time"

// SavedDocRef is the (id, pdf_path) pair that marks a PDF as referenced.
type SavedDocRef struct {
	ID   int64
	Path string
}

// SavedDocRecord is a full saved_docs row as the Orbit app writes it.
type SavedDocRecord struct {
	ID        int64
	CreatedAt time.Time
	TaskID    string
	Emoji     string
	Title     string
	PDFPath   string
}
