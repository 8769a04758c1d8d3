package converter

import (
	"encoding/base64"
	"strings"
)

// Decode decodes text with the standard base64 alphabet. ASCII whitespace
// anywhere in text is dropped, so line-wrapped payloads decode, and trailing
// padding is optional. Any other character outside the alphabet is an error.
func Decode(text string) ([]byte, error) {
	compact := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			return -1
		}
		return r
	}, text)
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(compact, "="))
}
