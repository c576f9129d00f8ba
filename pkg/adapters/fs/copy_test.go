package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/arty/pkg/core"
)

func TestBaseName(t *testing.T) {
	tests := map[string]string{
		"/tmp/art.png":              "art.png",
		`C:\Users\me\art.png`:       "art.png",
		"relative/dir/art.png":      "art.png",
		"art.png":                   "art.png",
		"/tmp/dir/":                 "dir",
		`mixed/path\to\picture.jpg`: "picture.jpg",
	}
	for in, want := range tests {
		if got := baseName(in); got != want {
			t.Errorf("baseName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCleanSource(t *testing.T) {
	if got := cleanSource("b'/tmp/art.png'"); got != "/tmp/art.png" {
		t.Errorf("expected bytes wrapper to be stripped, got %q", got)
	}
	if got := cleanSource("  /tmp/art.png\n"); got != "/tmp/art.png" {
		t.Errorf("expected whitespace to be trimmed, got %q", got)
	}
	if got := cleanSource("b'"); got != "b'" {
		t.Errorf("short input must be left alone, got %q", got)
	}
}

func TestImportFile(t *testing.T) {
	srcDir := t.TempDir()
	workDir := t.TempDir()
	src := filepath.Join(srcDir, "art.png")
	if err := os.WriteFile(src, []byte("pixels"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Run("Copies Into Work Directory", func(t *testing.T) {
		name, err := importFile(workDir, "b'"+src+"'")
		if err != nil {
			t.Fatalf("importFile failed: %v", err)
		}
		if name != "art.png" {
			t.Errorf("expected art.png, got %q", name)
		}
		got, err := os.ReadFile(filepath.Join(workDir, "art.png"))
		if err != nil || string(got) != "pixels" {
			t.Errorf("copy mismatch: %q %v", got, err)
		}
	})

	t.Run("Unsupported Format", func(t *testing.T) {
		pdf := filepath.Join(srcDir, "doc.pdf")
		touch(t, pdf)
		if _, err := importFile(workDir, pdf); !errors.Is(err, core.ErrUnsupportedFormat) {
			t.Errorf("expected ErrUnsupportedFormat, got %v", err)
		}
		if _, err := os.Stat(filepath.Join(workDir, "doc.pdf")); !os.IsNotExist(err) {
			t.Error("unsupported file must not be copied")
		}
	})

	t.Run("Source Is Destination", func(t *testing.T) {
		inside := filepath.Join(workDir, "art.png")
		if _, err := importFile(workDir, inside); !errors.Is(err, core.ErrSourceIsDestination) {
			t.Errorf("expected ErrSourceIsDestination, got %v", err)
		}
	})

	t.Run("Missing Source", func(t *testing.T) {
		_, err := importFile(workDir, filepath.Join(srcDir, "missing.jpg"))
		if !errors.Is(err, core.ErrCopyFailed) {
			t.Errorf("expected ErrCopyFailed, got %v", err)
		}
		if _, err := os.Stat(filepath.Join(workDir, "missing.jpg")); !os.IsNotExist(err) {
			t.Error("failed copy must not leave a file behind")
		}
	})

	t.Run("Directory Source", func(t *testing.T) {
		dir := filepath.Join(srcDir, "album.jpg")
		if err := os.Mkdir(dir, 0755); err != nil {
			t.Fatal(err)
		}
		if _, err := importFile(workDir, dir); !errors.Is(err, core.ErrCopyFailed) {
			t.Errorf("expected ErrCopyFailed, got %v", err)
		}
	})
}
