package fs

import (
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"syscall"
	"time"
)

const (
	// TempFilePrefix is the prefix used for temporary atomic write files.
	// It is hidden and carries no image extension, so scans never pick it up.
	TempFilePrefix = ".arty-tmp-"

	renameRetryDelay = 25 * time.Millisecond
)

// writeFileAtomic writes data to a file atomically by writing to a temp file
// and then renaming it to the target filename.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return writeAtomic(filename, perm, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// writeAtomic streams fill into a temp file in the target's directory, syncs
// it and renames it over filename. The temp file is removed on every failure
// path, so filename either keeps its previous content or holds the full new one.
func writeAtomic(filename string, perm os.FileMode, fill func(w io.Writer) error) error {
	dir := filepath.Dir(filename)

	// Create a temporary file in the same directory to ensure atomic rename
	tmpFile, err := os.CreateTemp(dir, TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name()) // Clean up if we fail before rename

	if err := fill(tmpFile); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpFile.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := renameWithRetry(tmpFile.Name(), filename); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", filename, err)
	}

	return nil
}

// renameWithRetry retries the rename once when the first attempt hits a
// transient lock or permission error (e.g. a virus scanner or indexer holding
// the target open on Windows).
func renameWithRetry(from, to string) error {
	err := os.Rename(from, to)
	if err == nil || !isTransient(err) {
		return err
	}
	time.Sleep(renameRetryDelay)
	return os.Rename(from, to)
}

func isTransient(err error) bool {
	return errors.Is(err, iofs.ErrPermission) || errors.Is(err, syscall.EBUSY)
}
