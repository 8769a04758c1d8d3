package filesystem

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process holds the destination lock.
var ErrLocked = errors.New("destination is locked by another process")

// LockSuffix is appended to the destination path to name its lock file.
const LockSuffix = ".lock"

// LockedWriter serializes writers of the same destination with an exclusive
// lock on <path>.lock. The lock file is left in place after the write.
type LockedWriter struct {
	inner Writer
}

// NewLockedWriter wraps inner.
func NewLockedWriter(inner Writer) *LockedWriter {
	return &LockedWriter{inner: inner}
}

// WriteFile implements Writer.
func (w *LockedWriter) WriteFile(ctx context.Context, path string, data []byte) (string, error) {
	abs, err := GetAbsolutePath(path)
	if err != nil {
		return "", fmt.Errorf("resolve %v: %w", path, err)
	}
	fl := flock.New(abs + LockSuffix)
	locked, err := fl.TryLock()
	if err != nil {
		return "", fmt.Errorf("flock %s: %w", fl.Path(), err)
	} else if !locked {
		return "", fmt.Errorf("%w (locking file %s)", ErrLocked, fl.Path())
	}
	defer fl.Unlock()
	return w.inner.WriteFile(ctx, abs, data)
}
