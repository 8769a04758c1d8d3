// Package filesystem persists decoded payloads to local files or to Google
// Cloud Storage objects.
package filesystem

import "path/filepath"

// GetAbsolutePath makes p absolute against the working directory. The name
// itself is taken literally: no ~ or environment variable expansion happens.
func GetAbsolutePath(p string) (string, error) {
	return filepath.Abs(p)
}
