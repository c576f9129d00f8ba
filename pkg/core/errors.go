package core

import "errors"

// Common errors.
//
// Adapters wrap these with context (fmt.Errorf("%w: ...")), so callers should
// match them with errors.Is.
var (
	// ErrEmptyOrMissingDirectory is returned by Load when the managed directory
	// does not exist, is not a directory, or has no entries at all.
	ErrEmptyOrMissingDirectory = errors.New("collection directory is empty or missing")

	// ErrMalformedSidecar is returned when the sidecar file cannot be decoded
	// or lacks required fields.
	ErrMalformedSidecar = errors.New("malformed collection sidecar")

	// ErrDirectoryUnreadable is returned when the managed directory cannot be listed.
	ErrDirectoryUnreadable = errors.New("collection directory is unreadable")

	// ErrUnsupportedFormat is returned when a file's extension is not an authorized image format.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrSourceIsDestination is returned when an import source already is the
	// destination file inside the managed directory.
	ErrSourceIsDestination = errors.New("source and destination are the same file")

	// ErrCopyFailed is returned when copying an image into the managed directory fails.
	ErrCopyFailed = errors.New("failed to copy image")

	// ErrWriteFailed is returned when the sidecar cannot be persisted.
	ErrWriteFailed = errors.New("failed to write collection sidecar")

	ErrMissingReferenceField = errors.New("missing required field for reference")
	ErrImageNotFound         = errors.New("image not found in collection")
	ErrUnknownField          = errors.New("unknown image field")

	// ErrDetached is returned by mutating operations on a Collection that is
	// not bound to a Repository and therefore cannot persist itself.
	ErrDetached = errors.New("collection is not bound to a repository")
)
