package converter

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/spf13/afero"
)

// StdinPath as Source.File reads the payload from standard input.
const StdinPath = "-"

// Source tells where the base64 payload comes from. File wins over Inline.
type Source struct {
	Inline string
	File   string
}

// FromFile reports whether the payload is read from a file or stdin.
func (s Source) FromFile() bool {
	return s.File != ""
}

// ResolveInput returns the base64 text described by src. File contents are
// trimmed of surrounding whitespace, inline text is returned as is.
func ResolveInput(fsys afero.Fs, stdin io.Reader, src Source) (string, error) {
	switch src.File {
	case "":
		return src.Inline, nil
	case StdinPath:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", &Error{Kind: KindSourceRead, Path: src.File, Err: fmt.Errorf("read stdin: %w", err)}
		}
		return strings.TrimSpace(string(data)), nil
	}
	data, err := afero.ReadFile(fsys, src.File)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", &Error{Kind: KindSourceNotFound, Path: src.File, Err: err}
	case err != nil:
		return "", &Error{Kind: KindSourceRead, Path: src.File, Err: err}
	}
	return strings.TrimSpace(string(data)), nil
}
