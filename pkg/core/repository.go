package core

import "context"

// Repository defines the contract for loading and persisting collections.
// Adhering to this interface keeps the Collection independent of where and
// how the sidecar is stored.
type Repository interface {
	// Load opens the managed directory at path, reconciles the persisted
	// metadata with the files on disk and persists the result.
	Load(ctx context.Context, path string) (*Collection, error)

	// Save persists the collection's title and ordered image list.
	Save(ctx context.Context, c *Collection) error

	// Import copies the file at source into workDir and returns the filename
	// (relative to workDir) it was stored under.
	Import(ctx context.Context, workDir, source string) (string, error)
}

// Scanner lists the authorized image files of a directory.
type Scanner interface {
	Scan(ctx context.Context, dir string) ([]string, error)
}

// Inspector reads a collection as persisted, without reconciling it against
// the directory and without writing anything.
type Inspector interface {
	Inspect(ctx context.Context, path string) (*Collection, error)
}

// Watchable defines an interface for repositories that can observe a managed
// directory for file changes.
type Watchable interface {
	Watch(ctx context.Context, dir string) (<-chan Event, error)
}

// EventType represents the type of change in a managed directory.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to an authorized image file.
type Event struct {
	Type      EventType
	Filename  string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer.
func (e Event) String() string {
	return string(e.Type) + " " + e.Filename
}
