package arty

import (
	"context"
	"log/slog"

	"github.com/aretw0/arty/internal/platform"
	"github.com/aretw0/arty/pkg/core"
)

// --- Types ---

// Collection is a public alias for the managed collection.
type Collection = core.Collection

// Image is a public alias for the image metadata record.
type Image = core.Image

// --- Configuration ---

// Option defines a functional option for configuring Arty.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithAdapter allows specifying the storage adapter to use by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithFormat selects the sidecar codec ("json" or "yaml").
func WithFormat(name string) Option {
	return platform.WithFormat(name)
}

// WithSerializer replaces the sidecar codec with a custom fs.Serializer.
func WithSerializer(s any) Option {
	return platform.WithSerializer(s)
}

// WithSidecarName overrides the hidden metadata filename (".collection").
func WithSidecarName(name string) Option {
	return platform.WithSidecarName(name)
}

// WithLocking enables the advisory lock around Load and Save.
func WithLocking(enabled bool) Option {
	return platform.WithLocking(enabled)
}

// WithEventBuffer allows specifying the size of the watcher event buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithWatcherErrorHandler registers a callback for runtime watcher failures.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates a new Arty Service.
func New(opts ...Option) (*core.Service, error) {
	return platform.New(opts...)
}

// Init initializes a repository explicitly.
func Init(opts ...Option) (core.Repository, error) {
	return platform.Init(opts...)
}

// --- Operations ---

// Load opens the managed directory at path, reconciling its sidecar with the
// files on disk.
func Load(ctx context.Context, path string, opts ...Option) (*Collection, error) {
	svc, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return svc.Load(ctx, path)
}

// Save persists c through the repository that loaded it.
func Save(ctx context.Context, c *Collection) error {
	if c == nil {
		return core.ErrDetached
	}
	return c.Save(ctx)
}

// --- Utils ---

// FindRoot recursively looks upwards for a managed directory.
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
