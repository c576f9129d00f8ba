package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/arty/pkg/core"
)

// cleanSource strips transport artifacts from a dropped path: a bytes-literal
// wrapper (b'...') and surrounding whitespace.
func cleanSource(source string) string {
	source = strings.TrimSpace(source)
	if strings.HasPrefix(source, "b'") && strings.HasSuffix(source, "'") && len(source) >= 3 {
		source = source[2 : len(source)-1]
	}
	return source
}

// baseName returns the last element of p, treating both '/' and '\' as
// separators so that paths from either platform resolve to a bare filename.
func baseName(p string) string {
	p = strings.TrimRight(p, `/\`)
	if i := strings.LastIndexAny(p, `/\`); i >= 0 {
		return p[i+1:]
	}
	return p
}

// importFile copies source into workDir under its base name and returns that
// name. The destination is written through a temp file and renamed into
// place, so a failed copy never leaves a truncated file under the final name.
func importFile(workDir, source string) (string, error) {
	source = cleanSource(source)
	filename := baseName(source)
	if filename == "" || !core.IsAuthorized(filename) {
		return "", fmt.Errorf("%w: %q", core.ErrUnsupportedFormat, filename)
	}

	dst := filepath.Join(workDir, filename)

	srcInfo, err := os.Stat(source)
	if err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrCopyFailed, err)
	}
	if !srcInfo.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s is not a regular file", core.ErrCopyFailed, source)
	}
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
		return "", fmt.Errorf("%w: %s", core.ErrSourceIsDestination, filename)
	}

	in, err := os.Open(source)
	if err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrCopyFailed, err)
	}
	defer in.Close()

	err = writeAtomic(dst, 0644, func(w io.Writer) error {
		_, err := io.Copy(w, in)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", core.ErrCopyFailed, filename, err)
	}
	return filename, nil
}
