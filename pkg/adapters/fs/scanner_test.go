package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"

	"github.com/aretw0/arty/pkg/core"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.PNG", "a.jpg", "c.Tiff", "notes.txt", ".collection", "d.jpeg", "e.webp"} {
		touch(t, filepath.Join(dir, name))
	}
	// A directory with an image-like name must be excluded.
	if err := os.Mkdir(filepath.Join(dir, "folder.jpg"), 0755); err != nil {
		t.Fatal(err)
	}
	touch(t, filepath.Join(dir, "folder.jpg", "nested.jpg"))

	got, err := Scan(context.Background(), dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	want := []string{"a.jpg", "b.PNG", "c.Tiff", "d.jpeg", "e.webp"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scan() = %v, want %v", got, want)
	}
}

func TestScan_Symlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on windows")
	}
	dir := t.TempDir()
	outside := t.TempDir()
	touch(t, filepath.Join(outside, "target.png"))
	if err := os.Mkdir(filepath.Join(outside, "subdir"), 0755); err != nil {
		t.Fatal(err)
	}

	links := map[string]string{
		"linked.png":   filepath.Join(outside, "target.png"),
		"dirlink.jpg":  filepath.Join(outside, "subdir"),
		"dangling.jpg": filepath.Join(outside, "missing.jpg"),
	}
	for name, target := range links {
		if err := os.Symlink(target, filepath.Join(dir, name)); err != nil {
			t.Fatal(err)
		}
	}

	got, err := Scan(context.Background(), dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"linked.png"}) {
		t.Errorf("Scan() = %v, want only the link to a regular file", got)
	}
}

func TestScan_Unreadable(t *testing.T) {
	_, err := Scan(context.Background(), filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, core.ErrDirectoryUnreadable) {
		t.Errorf("expected ErrDirectoryUnreadable, got %v", err)
	}
}
