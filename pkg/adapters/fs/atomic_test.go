package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Run("Creates New File", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "test.txt")
		content := []byte("hello atomic")

		if err := writeFileAtomic(filename, content, 0644); err != nil {
			t.Fatalf("writeFileAtomic failed: %v", err)
		}

		got, err := os.ReadFile(filename)
		if err != nil {
			t.Fatalf("Failed to read file: %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("Expected content 'hello atomic', got '%s'", string(got))
		}
	})

	t.Run("Overwrites Existing File", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "test.txt")

		if err := os.WriteFile(filename, []byte("initial"), 0644); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}

		newContent := []byte("overwritten")
		if err := writeFileAtomic(filename, newContent, 0644); err != nil {
			t.Fatalf("writeFileAtomic failed: %v", err)
		}

		got, err := os.ReadFile(filename)
		if err != nil {
			t.Fatalf("Failed to read file: %v", err)
		}
		if string(got) != string(newContent) {
			t.Errorf("Expected content 'overwritten', got '%s'", string(got))
		}
	})

	t.Run("Fails if Directory Missing", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "missing_folder", "test.txt")

		if err := writeFileAtomic(filename, []byte("fail"), 0644); err == nil {
			t.Error("Expected error when directory is missing, got nil")
		}
	})
}

func TestWriteAtomic_FailedFillKeepsPreviousContent(t *testing.T) {
	tmpDir := t.TempDir()
	filename := filepath.Join(tmpDir, ".collection")
	if err := os.WriteFile(filename, []byte("previous"), 0644); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("disk full")
	err := writeAtomic(filename, 0644, func(w io.Writer) error {
		if _, err := w.Write([]byte("half")); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fill error, got %v", err)
	}

	got, _ := os.ReadFile(filename)
	if string(got) != "previous" {
		t.Errorf("previous content was clobbered: %q", got)
	}

	entries, _ := os.ReadDir(tmpDir)
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), TempFilePrefix) {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestIsTransient(t *testing.T) {
	if !isTransient(&os.LinkError{Op: "rename", Err: iofs.ErrPermission}) {
		t.Error("permission errors are transient")
	}
	if !isTransient(&os.LinkError{Op: "rename", Err: syscall.EBUSY}) {
		t.Error("EBUSY is transient")
	}
	if isTransient(&os.LinkError{Op: "rename", Err: iofs.ErrNotExist}) {
		t.Error("missing files are not transient")
	}
}
