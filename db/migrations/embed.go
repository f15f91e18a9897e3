// Package migrations embeds the Orbit saved_docs schema used to build fixture databases.
package migrations

import "embed"

// Files exposes the compiled-in migration SQL files.
//
//go:embed *.sql
var Files embed.FS
