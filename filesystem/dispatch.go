package filesystem

import "context"

// Dispatcher sends gs:// destinations to remote and everything else to local.
type Dispatcher struct {
	local  Writer
	remote Writer
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(local, remote Writer) *Dispatcher {
	return &Dispatcher{local: local, remote: remote}
}

// WriteFile implements Writer.
func (d *Dispatcher) WriteFile(ctx context.Context, path string, data []byte) (string, error) {
	if IsGSURI(path) {
		return d.remote.WriteFile(ctx, path, data)
	}
	return d.local.WriteFile(ctx, path, data)
}
