package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	SidecarName   string     `json:"sidecar_name"`
	Format        string     `json:"format"`
	Locking       bool       `json:"locking"`
	WatcherActive bool       `json:"watcher_active"`
	Saves         int        `json:"saves"`
	LastLoad      *time.Time `json:"last_load,omitempty"`
	LastSave      *time.Time `json:"last_save,omitempty"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return RepositoryState{
		SidecarName:   r.config.SidecarName,
		Format:        r.config.Serializer.Format(),
		Locking:       r.config.Locking,
		WatcherActive: r.watcherActive,
		Saves:         r.saves,
		LastLoad:      r.lastLoad,
		LastSave:      r.lastSave,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "fs-repository"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)

func (r *Repository) setWatcherActive(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watcherActive = active
}
