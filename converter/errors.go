package converter

import (
	"errors"
	"fmt"
)

// Kind classifies why a conversion failed.
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindSourceNotFound: the file given with --from-file does not exist.
	KindSourceNotFound
	// KindSourceRead: the source file exists but could not be read.
	KindSourceRead
	// KindDecode: the payload is not valid base64.
	KindDecode
	// KindFormat: the decoded bytes failed the DICOM preamble check.
	KindFormat
	// KindWrite: the output could not be written.
	KindWrite
)

// Sentinels matched by *Error of the corresponding kind through errors.Is.
var (
	ErrSourceNotFound = errors.New("source file not found")
	ErrSourceRead     = errors.New("read source file")
	ErrDecode         = errors.New("decode base64")
	ErrFormat         = errors.New("dicom check")
	ErrWrite          = errors.New("write output")
)

func (k Kind) String() string {
	switch k {
	case KindSourceNotFound:
		return "source_not_found"
	case KindSourceRead:
		return "source_read"
	case KindDecode:
		return "decode"
	case KindFormat:
		return "format"
	case KindWrite:
		return "write"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindSourceNotFound:
		return ErrSourceNotFound
	case KindSourceRead:
		return ErrSourceRead
	case KindDecode:
		return ErrDecode
	case KindFormat:
		return ErrFormat
	case KindWrite:
		return ErrWrite
	default:
		return nil
	}
}

// Error is returned by every failing operation of this package.
type Error struct {
	Kind Kind
	// Path is the source file or the output, depending on Kind.
	Path string
	Err  error
}

func (e *Error) Error() string {
	prefix := "conversion failed"
	if s := e.Kind.sentinel(); s != nil {
		prefix = s.Error()
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", prefix, e.Path)
	}
	return fmt.Sprintf("%s: %v", prefix, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel of the error kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the Kind of err, KindUnknown if err is not an *Error.
func KindOf(err error) Kind {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Kind
	}
	return KindUnknown
}
