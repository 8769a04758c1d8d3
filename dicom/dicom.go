// Package dicom recognizes DICOM Part 10 files by their preamble.
//
// A Part 10 file starts with a 128 byte preamble, usually zeroed, followed by
// the four byte magic "DICM" and the file meta information group.
package dicom

import (
	"bytes"
	"errors"
	"fmt"
)

const (
	// PreambleSize is the length of the preamble preceding the magic.
	PreambleSize = 128
	// Magic follows the preamble.
	Magic = "DICM"
	// HeaderSize is the minimum size of a Part 10 file.
	HeaderSize = PreambleSize + len(Magic)
)

var (
	// ErrTooShort is returned for payloads smaller than HeaderSize.
	ErrTooShort = errors.New("dicom: payload shorter than preamble")
	// ErrNoMagic is returned when the magic is missing after the preamble.
	ErrNoMagic = errors.New("dicom: missing DICM magic")
)

// Check returns nil if data starts with a Part 10 preamble.
func Check(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: %d bytes", ErrTooShort, len(data))
	}
	if magic := data[PreambleSize:HeaderSize]; !bytes.Equal(magic, []byte(Magic)) {
		return fmt.Errorf("%w: found %q at offset %d", ErrNoMagic, magic, PreambleSize)
	}
	return nil
}

// HasPreamble reports whether data starts with a Part 10 preamble.
func HasPreamble(data []byte) bool {
	return Check(data) == nil
}
