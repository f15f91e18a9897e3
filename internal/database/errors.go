package database

import "errors"

var (
	// ErrMissingContext indicates a repository was built without an open database.
	ErrMissingContext = errors.New("database: missing database context")

	// ErrTableNotFound indicates the saved_docs table is absent from the schema.
	ErrTableNotFound = errors.New("database: saved_docs table not found")
)
