package fs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/arty/pkg/core"
)

// DefaultSidecarName is the hidden metadata file kept in every managed directory.
const DefaultSidecarName = ".collection"

// Repository implements core.Repository on the local filesystem. The sidecar
// file is the only persisted state; the directory listing is reconciled
// against it on every Load.
type Repository struct {
	config Config

	mu            sync.RWMutex
	watcherActive bool
	saves         int
	lastLoad      *time.Time
	lastSave      *time.Time
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Logger       *slog.Logger
	SidecarName  string     // e.g. ".collection"
	Serializer   Serializer // defaults to JSON
	Locking      bool       // hold an advisory lock on <sidecar>.lock during Load/Save
	EventBuffer  int        // watcher channel size, defaults to 100
	ErrorHandler func(error)
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if config.SidecarName == "" {
		config.SidecarName = DefaultSidecarName
	}
	if config.Serializer == nil {
		config.Serializer = NewJSONSerializer()
	}
	if config.EventBuffer <= 0 {
		config.EventBuffer = 100
	}
	return &Repository{config: config}
}

var (
	_ core.Repository = (*Repository)(nil)
	_ core.Scanner    = (*Repository)(nil)
	_ core.Inspector  = (*Repository)(nil)
	_ core.Watchable  = (*Repository)(nil)
)

// SidecarPath returns the location of the sidecar file for dir.
func (r *Repository) SidecarPath(dir string) string {
	return filepath.Join(dir, r.config.SidecarName)
}

// Load opens the managed directory at path.
//
// Workflow:
//  1. Check the directory exists and has at least one entry.
//  2. Decode the sidecar, or create an empty one and start from the default collection.
//  3. Scan the directory and reconcile the image list against it.
//  4. Persist the reconciled collection before returning it.
func (r *Repository) Load(ctx context.Context, path string) (*core.Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", core.ErrEmptyOrMissingDirectory, path, err)
	}
	if err := checkDirectory(dir); err != nil {
		return nil, err
	}

	unlock, err := r.lockDir(ctx, dir)
	if err != nil {
		return nil, err
	}
	defer unlock()

	title, images, err := r.readSidecar(dir)
	if err != nil {
		return nil, err
	}

	files, err := Scan(ctx, dir)
	if err != nil {
		return nil, err
	}

	reconciled := core.Reconcile(images, files)
	if r.config.Logger != nil {
		r.config.Logger.Debug("reconciled collection",
			"dir", dir,
			"known", len(images),
			"on_disk", len(files),
			"added", len(reconciled)-len(images),
		)
	}

	c := core.NewCollection(dir, title, reconciled, r)
	if err := r.write(c); err != nil {
		return nil, err
	}

	r.mu.Lock()
	now := time.Now()
	r.lastLoad = &now
	r.mu.Unlock()

	return c, nil
}

// Inspect decodes the sidecar of the directory at path without scanning the
// directory, creating the sidecar or writing anything. A directory without a
// sidecar yields an empty collection with the default title.
func (r *Repository) Inspect(ctx context.Context, path string) (*core.Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", core.ErrEmptyOrMissingDirectory, path, err)
	}
	if err := checkDirectory(dir); err != nil {
		return nil, err
	}

	unlock, err := r.lockDir(ctx, dir)
	if err != nil {
		return nil, err
	}
	defer unlock()

	title, images := core.DefaultTitle, []core.Image(nil)
	data, err := os.ReadFile(r.SidecarPath(dir))
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("%w: %s: %v", core.ErrMalformedSidecar, r.SidecarPath(dir), err)
	case len(bytes.TrimSpace(data)) > 0:
		title, images, err = r.config.Serializer.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", r.SidecarPath(dir), err)
		}
	}

	return core.NewCollection(dir, title, images, r), nil
}

// Save encodes the collection and atomically replaces its sidecar file.
func (r *Repository) Save(ctx context.Context, c *core.Collection) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c == nil {
		return errors.New("collection cannot be nil")
	}

	unlock, err := r.lockDir(ctx, c.WorkDirectory())
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrWriteFailed, err)
	}
	defer unlock()

	return r.write(c)
}

// Import copies source into workDir and returns the stored filename.
func (r *Repository) Import(ctx context.Context, workDir, source string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	filename, err := importFile(workDir, source)
	if err != nil {
		return "", err
	}

	if r.config.Logger != nil {
		r.config.Logger.Debug("imported image", "source", source, "filename", filename, "dir", workDir)
	}
	return filename, nil
}

// Scan implements core.Scanner.
func (r *Repository) Scan(ctx context.Context, dir string) ([]string, error) {
	return Scan(ctx, dir)
}

// checkDirectory enforces the Load precondition: dir exists, is a directory
// and has at least one entry.
func checkDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", core.ErrEmptyOrMissingDirectory, dir)
		}
		return fmt.Errorf("%w: %s: %v", core.ErrDirectoryUnreadable, dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", core.ErrEmptyOrMissingDirectory, dir)
	}

	f, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", core.ErrDirectoryUnreadable, dir, err)
	}
	defer f.Close()

	if _, err := f.Readdirnames(1); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %s has no entries", core.ErrEmptyOrMissingDirectory, dir)
		}
		return fmt.Errorf("%w: %s: %v", core.ErrDirectoryUnreadable, dir, err)
	}
	return nil
}

// readSidecar returns the persisted title and images of dir. A missing
// sidecar is created empty; a missing or zero-length sidecar yields the
// default collection.
func (r *Repository) readSidecar(dir string) (string, []core.Image, error) {
	path := r.SidecarPath(dir)

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		if err := createEmpty(path); err != nil {
			return "", nil, fmt.Errorf("%w: %v", core.ErrWriteFailed, err)
		}
		if r.config.Logger != nil {
			r.config.Logger.Info("created collection sidecar", "path", path)
		}
		return core.DefaultTitle, nil, nil
	case err != nil:
		return "", nil, fmt.Errorf("%w: %s: %v", core.ErrMalformedSidecar, path, err)
	case len(bytes.TrimSpace(data)) == 0:
		if r.config.Logger != nil {
			r.config.Logger.Debug("empty sidecar, starting from default collection", "path", path)
		}
		return core.DefaultTitle, nil, nil
	}

	title, images, err := r.config.Serializer.Decode(data)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return title, images, nil
}

func createEmpty(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	return f.Close()
}

// write persists c without taking the directory lock; callers hold it.
func (r *Repository) write(c *core.Collection) error {
	data, err := r.config.Serializer.Encode(c.Title(), c.Images())
	if err != nil {
		return fmt.Errorf("%w: failed to serialize collection: %v", core.ErrWriteFailed, err)
	}

	path := r.SidecarPath(c.WorkDirectory())
	if err := writeFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", core.ErrWriteFailed, err)
	}

	if r.config.Logger != nil {
		r.config.Logger.Debug("saved collection", "path", path, "images", c.Len())
	}

	r.mu.Lock()
	now := time.Now()
	r.saves++
	r.lastSave = &now
	r.mu.Unlock()
	return nil
}
