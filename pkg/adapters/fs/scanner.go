package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/aretw0/arty/pkg/core"
)

// Scan lists the direct children of dir that carry an authorized image
// extension. Only regular files count: directories are skipped and symlinks
// are kept only when they resolve to a regular file. The result is sorted.
func Scan(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", core.ErrDirectoryUnreadable, dir, err)
	}

	var names []string
	for _, e := range entries {
		if !core.IsAuthorized(e.Name()) {
			continue
		}
		if !isRegular(dir, e) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

func isRegular(dir string, e os.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	// Follow the link; dangling links and links to directories are excluded.
	info, err := os.Stat(filepath.Join(dir, e.Name()))
	return err == nil && info.Mode().IsRegular()
}
