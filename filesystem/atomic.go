package filesystem

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/natefinch/atomic"
)

// AtomicWriter writes to a temporary file next to the destination and renames
// it into place, so the destination is either untouched or complete.
// It always works on the OS filesystem.
type AtomicWriter struct {
	mode os.FileMode
}

// NewAtomicWriter creates an AtomicWriter. New files get mode, replaced files
// keep the mode of the file they replace.
func NewAtomicWriter(mode os.FileMode) *AtomicWriter {
	return &AtomicWriter{mode: mode}
}

// WriteFile implements Writer.
func (w *AtomicWriter) WriteFile(_ context.Context, path string, data []byte) (string, error) {
	abs, err := GetAbsolutePath(path)
	if err != nil {
		return "", fmt.Errorf("resolve %v: %w", path, err)
	}
	_, err = os.Stat(abs)
	existed := err == nil
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("stat %v: %w", abs, err)
	}
	if err := atomic.WriteFile(abs, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("write %v: %w", abs, err)
	}
	if !existed {
		if err := os.Chmod(abs, w.mode); err != nil {
			return "", fmt.Errorf("chmod %v: %w", abs, err)
		}
	}
	return abs, nil
}
