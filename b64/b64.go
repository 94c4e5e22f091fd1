// Package b64 encodes blobs for YAML documents with the standard Base64
// alphabet and padding.
package b64

import (
	"encoding/base64"
	"strings"
)

// Encode returns the padded standard Base64 encoding of d.
func Encode(d []byte) string {
	return base64.StdEncoding.EncodeToString(d)
}

// Decode decodes the Base64 text at the start of s. Decoding stops at the
// first character that is neither in the alphabet nor padding, and at the
// first padding character; a trailing group of a single character carries
// less than a byte and is dropped.
func Decode(s string) []byte {
	end := strings.IndexFunc(s, func(r rune) bool { return !inAlphabet(r) })
	if end >= 0 {
		s = s[:end]
	}
	if len(s)%4 == 1 {
		s = s[:len(s)-1]
	}
	d, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		return nil
	}
	return d
}

// Valid reports whether s is entirely well-formed padded Base64.
func Valid(s string) bool {
	_, err := base64.StdEncoding.Strict().DecodeString(s)
	return err == nil
}

func inAlphabet(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	case r == '+', r == '/':
		return true
	}
	return false
}
