// Package config resolves the on-disk locations orbit-cleanup inspects.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// BundleID is the sandbox container name used by current Orbit builds.
	BundleID = "com.ritualage.Orbit"

	// DBFileName is the SQLite file Orbit keeps its saved documents in.
	DBFileName = "orbit.sqlite3"

	// SavedDocsTable is the table that references generated PDFs.
	SavedDocsTable = "saved_docs"
)

// GetHomeDir resolves the root all candidate paths hang off. ORBIT_CLEANUP_HOME
// wins, then the XDG home, then the OS user home directory.
func GetHomeDir() string {
	if explicit := os.Getenv("ORBIT_CLEANUP_HOME"); explicit != "" {
		return explicit
	}

	xdg.Reload()

	if xdg.Home != "" {
		return xdg.Home
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}
	return home
}

// DBCandidates lists the database locations in probe order: the bundle-id
// container, a legacy container named after the app, then the unsandboxed path.
func DBCandidates() []string {
	home := GetHomeDir()
	return []string{
		filepath.Join(home, "Library", "Containers", BundleID, "Data", "Library", "Application Support", "Orbit", DBFileName),
		filepath.Join(home, "Library", "Containers", "Orbit", "Data", "Library", "Application Support", "Orbit", DBFileName),
		filepath.Join(home, "Library", "Application Support", "Orbit", DBFileName),
	}
}

// PDFFolderCandidates lists the folders Orbit may have written PDFs into.
func PDFFolderCandidates() []string {
	home := GetHomeDir()
	return []string{
		filepath.Join(home, "Library", "Containers", BundleID, "Data", "Documents", "Orbit"),
		filepath.Join(home, "Library", "Containers", "Orbit", "Data", "Documents", "Orbit"),
		filepath.Join(home, "Documents", "Orbit"),
		filepath.Join(home, "Orbit"),
	}
}

// PickExisting returns the first path that exists, in list order.
func PickExisting(paths []string) (string, bool) {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

// ExistingDirs keeps every candidate that exists and is a directory.
func ExistingDirs(paths []string) []string {
	var dirs []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			continue
		}
		dirs = append(dirs, p)
	}
	return dirs
}
