package filesystem

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	paths []string
}

func (r *recordingWriter) WriteFile(_ context.Context, path string, _ []byte) (string, error) {
	r.paths = append(r.paths, path)
	return path, nil
}

func TestDispatcher(t *testing.T) {
	local, remote := &recordingWriter{}, &recordingWriter{}
	d := NewDispatcher(local, remote)

	_, err := d.WriteFile(context.Background(), "out.dcm", nil)
	require.NoError(t, err)
	_, err = d.WriteFile(context.Background(), "gs://studies/out.dcm", nil)
	require.NoError(t, err)

	require.Equal(t, []string{"out.dcm"}, local.paths)
	require.Equal(t, []string{"gs://studies/out.dcm"}, remote.paths)
}
