package filesystem

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// Writer persists data at path and returns the location it was written to.
type Writer interface {
	WriteFile(ctx context.Context, path string, data []byte) (string, error)
}

// FsWriter writes straight into the destination, creating or truncating it.
// A failure in the middle of a write leaves a truncated file behind.
type FsWriter struct {
	fs   afero.Fs
	mode os.FileMode
}

// NewFsWriter creates a writer on top of fs. Files it creates get mode.
func NewFsWriter(fs afero.Fs, mode os.FileMode) *FsWriter {
	return &FsWriter{fs: fs, mode: mode}
}

// WriteFile implements Writer.
func (w *FsWriter) WriteFile(_ context.Context, path string, data []byte) (string, error) {
	abs, err := GetAbsolutePath(path)
	if err != nil {
		return "", fmt.Errorf("resolve %v: %w", path, err)
	}
	f, err := w.fs.OpenFile(abs, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, w.mode)
	if err != nil {
		return "", fmt.Errorf("open %v: %w", abs, err)
	}
	defer f.Close()
	if _, err := f.Write(data); err != nil {
		return "", fmt.Errorf("write %v: %w", abs, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %v: %w", abs, err)
	}
	return abs, nil
}
