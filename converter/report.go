package converter

import (
	"errors"
	"fmt"
	"io"
)

// Reporter prints the human readable progress of a conversion. Write errors
// are ignored, the lines are informational only.
type Reporter struct {
	w io.Writer
}

// NewReporter creates a Reporter printing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

func (r *Reporter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.w, format, args...)
}

// Reading announces that the payload is read from path.
func (r *Reporter) Reading(path string) {
	if path == StdinPath {
		r.printf("reading base64 payload from stdin\n")
		return
	}
	r.printf("reading base64 payload from %s\n", path)
}

// Decoding announces the start of decoding.
func (r *Reporter) Decoding(chars int) {
	r.printf("decoding base64 payload (length: %d chars)\n", chars)
}

// Decoded reports the decoded byte count.
func (r *Reporter) Decoded(size int) {
	r.printf("decoded %d bytes\n", size)
}

// Written reports the output location and size.
func (r *Reporter) Written(location string, size int) {
	r.printf("✅ file written: %s\n", location)
	r.printf("📁 file size: %d bytes\n", size)
}

// Failed reports err. A missing source file gets its own message.
func (r *Reporter) Failed(err error) {
	var cerr *Error
	if errors.As(err, &cerr) && cerr.Kind == KindSourceNotFound {
		r.printf("❌ file not found: %s\n", cerr.Path)
		return
	}
	r.printf("❌ error: %v\n", err)
}
