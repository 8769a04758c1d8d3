package filesystem

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GSScheme is the URI scheme of Google Cloud Storage destinations.
const GSScheme = "gs"

// IsGSURI reports whether path names a Google Cloud Storage object.
func IsGSURI(path string) bool {
	return strings.HasPrefix(path, GSScheme+"://")
}

// ParseGSURI splits gs://bucket/object into its bucket and object name.
func ParseGSURI(gsPath string) (bucket, object string, err error) {
	parsed, err := url.Parse(gsPath)
	if err != nil {
		return "", "", err
	}
	if parsed.Scheme != GSScheme {
		return "", "", fmt.Errorf("path %s must have 'gs' scheme", gsPath)
	}
	if parsed.Host == "" {
		return "", "", fmt.Errorf("path %s must have bucket", gsPath)
	}
	// remove leading "/" in URL path
	object = strings.TrimPrefix(parsed.Path, "/")
	if object == "" || strings.HasSuffix(object, "/") {
		return "", "", fmt.Errorf("path %s must name an object", gsPath)
	}
	return parsed.Host, object, nil
}

// GCSWriter uploads data to Google Cloud Storage. The client is created on
// first use so runs writing local files never need credentials.
type GCSWriter struct {
	creds string

	once   sync.Once
	client *storage.Client
	err    error
}

// NewGCSWriter creates a GCSWriter. An empty creds uses application default
// credentials.
func NewGCSWriter(creds string) *GCSWriter {
	return &GCSWriter{creds: creds}
}

func (w *GCSWriter) getClient(ctx context.Context) (*storage.Client, error) {
	w.once.Do(func() {
		var opts []option.ClientOption
		if w.creds != "" {
			opts = append(opts, option.WithCredentialsFile(w.creds))
		}
		w.client, w.err = storage.NewClient(ctx, opts...)
		if w.err != nil {
			w.err = fmt.Errorf("create gs client: %w", w.err)
		}
	})
	return w.client, w.err
}

// WriteFile implements Writer.
func (w *GCSWriter) WriteFile(ctx context.Context, path string, data []byte) (string, error) {
	bucket, object, err := ParseGSURI(path)
	if err != nil {
		return "", fmt.Errorf("parse output uri %v: %w", path, err)
	}
	client, err := w.getClient(ctx)
	if err != nil {
		return "", err
	}
	ow := client.Bucket(bucket).Object(object).NewWriter(ctx)
	if _, err := ow.Write(data); err != nil {
		ow.Close()
		return "", fmt.Errorf("upload %v: %w", path, err)
	}
	if err := ow.Close(); err != nil {
		return "", fmt.Errorf("upload %v: %w", path, err)
	}
	return fmt.Sprintf("%s://%s/%s", GSScheme, bucket, object), nil
}

// Close releases the client if one was created.
func (w *GCSWriter) Close() error {
	if w.client == nil {
		return nil
	}
	return w.client.Close()
}
