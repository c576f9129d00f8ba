package platform

import (
	"fmt"
	"strings"

	"github.com/aretw0/arty/pkg/adapters/fs"
	"github.com/aretw0/arty/pkg/core"
)

// Init builds the storage adapter described by opts.
//
// It returns the configured core.Repository. No I/O happens here: directories
// are only touched when the repository loads or saves a collection.
func Init(opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	// 1. Check for injected repository
	if o.repository != nil {
		return o.repository, nil
	}

	// 2. Initialize based on Adapter
	switch o.adapter {
	case "fs":
		return initFS(o)
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
}

// initFS handles the initialization logic for the Filesystem adapter
func initFS(o *options) (core.Repository, error) {
	sidecarName, _ := o.config["sidecar_name"].(string)
	locking, _ := o.config["locking"].(bool)
	eventBuffer, _ := o.config["event_buffer"].(int)
	errorHandler, _ := o.config["watcher_error_handler"].(func(error))
	format, _ := o.config["format"].(string)

	serializer, err := resolveSerializer(format, o.serializer)
	if err != nil {
		if o.logger != nil {
			o.logger.Warn("invalid serializer configuration", "format", format, "error", err)
		}
		return nil, err
	}

	if strings.ContainsAny(sidecarName, `/\`) {
		return nil, fmt.Errorf("sidecar name must be a plain filename: %q", sidecarName)
	}

	repo := fs.NewRepository(fs.Config{
		Logger:       o.logger,
		SidecarName:  sidecarName,
		Serializer:   serializer,
		Locking:      locking,
		EventBuffer:  eventBuffer,
		ErrorHandler: errorHandler,
	})

	if o.logger != nil {
		o.logger.Debug("initialized filesystem adapter",
			"format", serializerName(serializer),
			"locking", locking,
		)
	}
	return repo, nil
}

// resolveSerializer picks the custom serializer if one was given, otherwise
// the built-in codec registered under format.
func resolveSerializer(format string, custom any) (fs.Serializer, error) {
	if custom != nil {
		s, ok := custom.(fs.Serializer)
		if !ok {
			return nil, fmt.Errorf("serializer must implement fs.Serializer, got %T", custom)
		}
		return s, nil
	}

	if format == "" {
		return nil, nil
	}
	s, ok := fs.DefaultSerializers()[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("unknown sidecar format: %s", format)
	}
	return s, nil
}

func serializerName(s fs.Serializer) string {
	if s == nil {
		return "json"
	}
	return s.Format()
}
