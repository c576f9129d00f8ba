package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// RootMarker is the file whose presence identifies a managed directory.
const RootMarker = ".collection"

// FindRoot recursively looks upwards for a managed directory, that is the
// nearest directory holding a RootMarker sidecar file.
// If found, returns the absolute path to the root.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasFile(dir, RootMarker) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("no %s found above %s", RootMarker, abs)
}

func hasFile(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && !info.IsDir()
}
