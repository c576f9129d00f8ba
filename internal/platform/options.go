package platform

import (
	"log/slog"

	"github.com/aretw0/arty/pkg/core"
)

// options holds the internal configuration for the Arty service.
type options struct {
	repository core.Repository
	logger     *slog.Logger
	adapter    string
	config     map[string]interface{}
	serializer any
}

// Option defines a functional option for configuring Arty.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		repository: nil,
		logger:     nil,
		adapter:    "fs",
		config:     make(map[string]interface{}),
	}
}

// WithSerializer replaces the sidecar codec.
// The serializer 's' must implement the adapter's Serializer interface (e.g. fs.Serializer).
// Using 'any' keeps the public API clean, but validation happens at runtime during Init.
func WithSerializer(s any) Option {
	return func(o *options) {
		o.serializer = s
	}
}

// WithFormat selects one of the built-in sidecar codecs by name ("json" or "yaml").
// Defaults to "json".
func WithFormat(name string) Option {
	return func(o *options) {
		o.config["format"] = name
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. mock).
// If provided, the default filesystem adapter will be skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithAdapter allows specifying the storage adapter to use by name (e.g. "fs").
// Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithSidecarName overrides the hidden metadata filename.
// Defaults to ".collection".
func WithSidecarName(name string) Option {
	return func(o *options) {
		o.config["sidecar_name"] = name
	}
}

// WithLocking makes Load and Save hold an advisory file lock next to the
// sidecar, so that several processes can share a managed directory.
func WithLocking(enabled bool) Option {
	return func(o *options) {
		o.config["locking"] = enabled
	}
}

// WithEventBuffer allows specifying the size of the watcher event buffer.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.config["event_buffer"] = size
	}
}

// WithWatcherErrorHandler registers a callback to handle errors occurring during the Watch loop.
// This allows applications to react to runtime watcher failures (e.g. permission denied)
// which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.config["watcher_error_handler"] = fn
	}
}
