package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const lockRetryDelay = 10 * time.Millisecond

// lockDir acquires the advisory lock guarding the sidecar of dir. It blocks
// until the lock is held or ctx is done. When locking is disabled it returns
// a no-op unlock.
func (r *Repository) lockDir(ctx context.Context, dir string) (func(), error) {
	if !r.config.Locking {
		return func() {}, nil
	}

	path := filepath.Join(dir, r.config.SidecarName+".lock")
	fl := flock.New(path)

	ok, err := fl.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("failed to acquire lock: %s", path)
	}

	if r.config.Logger != nil {
		r.config.Logger.Debug("acquired sidecar lock", "path", path)
	}
	return func() {
		_ = fl.Unlock()
	}, nil
}
