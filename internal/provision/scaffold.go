// SPDX-License-Identifier: MPL-2.0

package provision

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// LogDirName is the scaffold directory hook command logs are written to.
	LogDirName = "logs"
	// ConnectionsDirName is the scaffold directory for factory connection
	// files. Never touched by provisioning beyond creation.
	ConnectionsDirName = "connections"
)

// ScaffoldDirs are the directories that must exist in the working directory
// before any provisioning logic runs.
var ScaffoldDirs = []string{LogDirName, ConnectionsDirName}

// EnsureScaffold creates the scaffold directories under root if absent.
func EnsureScaffold(root string) error {
	for _, dir := range ScaffoldDirs {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return fmt.Errorf("failed to create scaffold directory %s: %w", dir, err)
		}
	}
	return nil
}
