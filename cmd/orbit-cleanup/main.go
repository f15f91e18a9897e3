package main

import (
	"os"

	"github.com/ritualage/orbit-cleanup/internal/filesystem"
)

// version is set via ldflags during build
var version = "dev"

func main() {
	if err := newRootCmd(filesystem.SystemTrash{}).Execute(); err != nil {
		os.Exit(1)
	}
}
